// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/internal/service"
	"github.com/MKhiriev/notekeeper/internal/store"
	"github.com/MKhiriev/notekeeper/internal/utils"
	"github.com/MKhiriev/notekeeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrAnonymousPrincipal:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrPrincipalNotRegistered:  http.StatusForbidden,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,

	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,

	store.ErrNoteNotFound:   http.StatusNotFound,
	store.ErrAnonymousOwner: http.StatusUnauthorized,

	models.ErrInvalidNoteID: http.StatusBadRequest,
	ErrInvalidJSON:          http.StatusBadRequest,
	ErrInvalidNoteIDParam:   http.StatusBadRequest,
	ErrInvalidAliasParam:    http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Internal errors
// are not echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
