// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/notekeeper/models"
)

// NoteStorage is the per-tenant encrypted note collection.
type NoteStorage interface {
	// GetNotes returns the owner's notes in collection order. The result is
	// a copy; an unknown owner yields an empty slice.
	GetNotes(ctx context.Context, owner models.Principal) []models.EncryptedNote

	// AddNote appends a note with a fresh id, unique within the owner's
	// collection and never reused after deletion.
	AddNote(ctx context.Context, owner models.Principal, data string) (models.EncryptedNote, error)

	// UpdateNote replaces the data of the note with note.ID. It returns
	// [ErrNoteNotFound] if no such note exists.
	UpdateNote(ctx context.Context, owner models.Principal, note models.EncryptedNote) error

	// DeleteNote removes the note with id. Absent ids are a no-op.
	DeleteNote(ctx context.Context, owner models.Principal, id models.NoteID)
}

// DeviceStorage is the per-tenant registry of device public keys.
type DeviceStorage interface {
	// RegisterDevice inserts or overwrites the alias → key pair.
	RegisterDevice(ctx context.Context, owner models.Principal, alias models.DeviceAlias, key models.PublicKey) error

	// GetDeviceAliases returns the owner's aliases in registration order.
	GetDeviceAliases(ctx context.Context, owner models.Principal) []models.DeviceAlias

	// GetDevices returns the owner's alias/key pairs in registration order.
	GetDevices(ctx context.Context, owner models.Principal) []models.Device

	// DeleteDevice removes alias. Absent aliases are a no-op.
	DeleteDevice(ctx context.Context, owner models.Principal, alias models.DeviceAlias)

	// IsRegistered reports whether owner has ever registered a device.
	IsRegistered(ctx context.Context, owner models.Principal) bool
}

// Snapshotter exports and imports the complete tenant state.
type Snapshotter interface {
	Export(ctx context.Context) models.Snapshot
	Import(ctx context.Context, snapshot models.Snapshot) error
}

// TenantStorage is the complete in-memory store.
type TenantStorage interface {
	NoteStorage
	DeviceStorage
	Snapshotter
}

// SnapshotStorage persists snapshots outside the process.
type SnapshotStorage interface {
	// Save persists snapshot, replacing the previously latest one.
	Save(ctx context.Context, snapshot models.Snapshot) error

	// Load returns the latest snapshot or [ErrSnapshotNotFound].
	Load(ctx context.Context) (models.Snapshot, error)

	// Close releases underlying resources.
	Close() error
}

// ErrorClassificator decides whether a persistence error is transient.
// SQL-backed [SnapshotStorage] implementations also implement it.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
