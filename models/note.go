// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedNote is one ciphertext blob owned by a tenant.
type EncryptedNote struct {
	// ID is unique within the owner's collection only.
	ID NoteID `json:"id"`

	// Data is opaque ciphertext produced on the client.
	Data string `json:"data"`
}

// AddNoteRequest is the body of an add-note call.
type AddNoteRequest struct {
	Data string `json:"data"`
}
