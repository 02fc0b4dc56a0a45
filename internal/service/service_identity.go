// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/notekeeper/internal/config"
	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/internal/store"
	"github.com/MKhiriev/notekeeper/internal/utils"
	"github.com/MKhiriev/notekeeper/models"
)

type identityGate struct {
	devices store.DeviceStorage

	// strict enables the registration check.
	strict bool

	logger *logger.Logger
}

// NewIdentityGate builds the gate for the configured registration mode.
func NewIdentityGate(devices store.DeviceStorage, cfg config.App, logger *logger.Logger) (IdentityGate, error) {
	gate := &identityGate{
		devices: devices,
		logger:  logger,
	}

	switch cfg.RegistrationMode {
	case config.RegistrationModeStrict, "":
		gate.strict = true
	case config.RegistrationModeOpen:
		gate.strict = false
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegistrationMode, cfg.RegistrationMode)
	}

	logger.Info().Bool("strict", gate.strict).Msg("identity gate created")

	return gate, nil
}

func (g *identityGate) Resolve(ctx context.Context) (models.Principal, error) {
	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok || principal.IsAnonymous() {
		logger.FromContext(ctx).Warn().Str("func", "*identityGate.Resolve").Msg("anonymous caller rejected")
		return "", ErrAnonymousPrincipal
	}

	return principal, nil
}

func (g *identityGate) RequireRegistered(ctx context.Context, principal models.Principal) error {
	if !g.strict {
		return nil
	}

	if !g.devices.IsRegistered(ctx, principal) {
		logger.FromContext(ctx).Warn().
			Str("func", "*identityGate.RequireRegistered").
			Str("principal", principal.String()).
			Msg("unregistered caller rejected")
		return ErrPrincipalNotRegistered
	}

	return nil
}

func (g *identityGate) Authorize(ctx context.Context, requireRegistration bool) (models.Principal, error) {
	principal, err := g.Resolve(ctx)
	if err != nil {
		return "", err
	}

	if requireRegistration {
		if err = g.RequireRegistered(ctx, principal); err != nil {
			return "", err
		}
	}

	return principal, nil
}
