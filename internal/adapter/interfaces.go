// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/notekeeper/models"
)

// ServerAdapter talks to a notekeeper server on behalf of one caller. Every
// call except GetServerVersion sends the token set with SetToken.
type ServerAdapter interface {
	SetToken(token string)
	Token() string

	RegisterDevice(ctx context.Context, device models.Device) error
	GetDeviceAliases(ctx context.Context) ([]models.DeviceAlias, error)
	GetDevices(ctx context.Context) ([]models.Device, error)
	DeleteDevice(ctx context.Context, alias models.DeviceAlias) error

	GetNotes(ctx context.Context) ([]models.EncryptedNote, error)
	AddNote(ctx context.Context, data string) (models.EncryptedNote, error)
	UpdateNote(ctx context.Context, note models.EncryptedNote) error
	DeleteNote(ctx context.Context, id models.NoteID) error

	GetServerVersion(ctx context.Context) (string, error)
}
