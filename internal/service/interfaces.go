// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/notekeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// IdentityGate decides whether the caller found in a request context may
// proceed.
type IdentityGate interface {
	// Resolve returns the caller's principal or ErrAnonymousPrincipal.
	Resolve(ctx context.Context) (models.Principal, error)

	// RequireRegistered fails with ErrPrincipalNotRegistered when strict
	// registration is on and principal has never registered a device.
	RequireRegistered(ctx context.Context, principal models.Principal) error

	// Authorize runs Resolve and, when requireRegistration is set,
	// RequireRegistered.
	Authorize(ctx context.Context, requireRegistration bool) (models.Principal, error)
}

// NoteService manages the caller's encrypted notes. The caller is taken from
// the context.
type NoteService interface {
	GetNotes(ctx context.Context) ([]models.EncryptedNote, error)
	AddNote(ctx context.Context, data string) (models.EncryptedNote, error)
	UpdateNote(ctx context.Context, note models.EncryptedNote) error
	DeleteNote(ctx context.Context, id models.NoteID) error
}

// DeviceService manages the caller's device registry.
type DeviceService interface {
	RegisterDevice(ctx context.Context, device models.Device) error
	GetDeviceAliases(ctx context.Context) ([]models.DeviceAlias, error)
	GetDevices(ctx context.Context) ([]models.Device, error)
	DeleteDevice(ctx context.Context, alias models.DeviceAlias) error
}

// AuthService issues and verifies caller tokens.
type AuthService interface {
	CreateToken(ctx context.Context, principal models.Principal) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
