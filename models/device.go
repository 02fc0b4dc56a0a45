// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DeviceAlias is a caller-chosen label of a device. Unique within one tenant.
type DeviceAlias string

// PublicKey is a device public key. It is stored verbatim and never parsed.
type PublicKey string

// Device is one registered (alias, public key) pair of a tenant.
type Device struct {
	// Alias identifies the device within its owner's device set.
	Alias DeviceAlias `json:"alias"`

	// PublicKey is used by other devices of the same owner to wrap
	// the note encryption key for this device.
	PublicKey PublicKey `json:"public_key"`
}

// RegisterDeviceRequest is the body of a device registration call.
type RegisterDeviceRequest struct {
	Alias     DeviceAlias `json:"alias"`
	PublicKey PublicKey   `json:"public_key"`
}
