// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import "github.com/MKhiriev/notekeeper/models"

// Empty is the request or response of calls that carry no data.
type Empty struct{}

type GetDeviceAliasesResponse struct {
	Aliases []models.DeviceAlias `json:"aliases"`
}

type GetDevicesResponse struct {
	Devices []models.Device `json:"devices"`
}

type DeleteDeviceRequest struct {
	Alias models.DeviceAlias `json:"alias"`
}

type GetNotesResponse struct {
	Notes []models.EncryptedNote `json:"notes"`
}

type DeleteNoteRequest struct {
	ID models.NoteID `json:"id"`
}

type GetVersionResponse struct {
	Version string `json:"version"`
}
