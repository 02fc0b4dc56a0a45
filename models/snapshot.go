// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Snapshot is a point-in-time copy of the whole tenant store. It is produced
// by the store's export hook and consumed by its import hook, so that state
// survives process restarts.
type Snapshot struct {
	// CreatedAt is the moment the snapshot was exported.
	CreatedAt time.Time `json:"created_at"`

	// Tenants holds one entry per principal that owns any state.
	Tenants []TenantSnapshot `json:"tenants"`
}

// TenantSnapshot is the exported state of a single tenant.
type TenantSnapshot struct {
	Owner Principal `json:"owner"`

	// Registered is set once the owner registers its first device and stays
	// set after the devices are deleted.
	Registered bool `json:"registered"`

	// Devices are listed in the tenant's enumeration order.
	Devices []Device `json:"devices"`

	// Notes are listed in collection order.
	Notes []EncryptedNote `json:"notes"`

	// NextNoteID is the id the next added note will receive.
	NextNoteID NoteID `json:"next_note_id"`
}
