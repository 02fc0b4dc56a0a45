// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/internal/utils"
	"github.com/MKhiriev/notekeeper/models"
)

const (
	traceIDMetadataKey       = "x-trace-id"
	authorizationMetadataKey = "authorization"
)

func firstMetadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// withTraceID attaches a child logger carrying trace_id and echoes the id in
// the response header.
func (h *Handler) withTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := firstMetadataValue(ctx, traceIDMetadataKey)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDMetadataKey, traceID))

	return handler(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// identify resolves the caller's principal from the authorization metadata.
// Without it the call runs as the anonymous principal.
func (h *Handler) identify(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	authorization := firstMetadataValue(ctx, authorizationMetadataKey)
	if authorization == "" {
		return handler(utils.WithPrincipal(ctx, models.AnonymousPrincipal), req)
	}

	tokenString, err := utils.ParseBearerToken(authorization)
	if err != nil {
		return nil, statusFromError(ctx, "*Handler.identify", err)
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return nil, statusFromError(ctx, "*Handler.identify", err)
	}

	return handler(utils.WithPrincipal(ctx, token.Principal), req)
}
