// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/notekeeper/internal/utils"
	"github.com/MKhiriev/notekeeper/models"
)

// identify puts the caller's principal into the request context. Without an
// Authorization header the caller is anonymous; a header that does not hold
// a valid bearer token is rejected with 401.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, models.AnonymousPrincipal)))
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, "*Handler.identify", err)
			return
		}

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, "*Handler.identify", err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, token.Principal)))
	})
}
