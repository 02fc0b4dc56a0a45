// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/internal/service"
	"github.com/MKhiriev/notekeeper/internal/store"
	"github.com/MKhiriev/notekeeper/internal/utils"
	"github.com/MKhiriev/notekeeper/models"
)

var errorCodeMap = map[error]codes.Code{
	service.ErrAnonymousPrincipal:       codes.Unauthenticated,
	service.ErrTokenIsExpiredOrInvalid:  codes.Unauthenticated,
	utils.ErrInvalidAuthorizationHeader: codes.Unauthenticated,
	store.ErrAnonymousOwner:             codes.Unauthenticated,

	service.ErrPrincipalNotRegistered: codes.PermissionDenied,

	store.ErrNoteNotFound: codes.NotFound,

	service.ErrInvalidDataProvided: codes.InvalidArgument,
	models.ErrInvalidNoteID:        codes.InvalidArgument,
}

func codeFromError(err error) codes.Code {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return codes.Internal
}

// statusFromError logs err and converts it to a gRPC status error. Internal
// errors are not echoed to the client.
func statusFromError(ctx context.Context, funcName string, err error) error {
	code := codeFromError(err)

	log := logger.FromContext(ctx)
	if code == codes.Internal {
		log.Err(err).Str("func", funcName).Msg("call failed")
		return status.Error(code, "internal error")
	}

	log.Warn().Err(err).Str("func", funcName).Str("code", code.String()).Msg("call rejected")
	return status.Error(code, err.Error())
}
