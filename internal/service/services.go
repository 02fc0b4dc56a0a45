// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/notekeeper/internal/config"
	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/internal/store"
)

type Services struct {
	IdentityGate   IdentityGate
	NoteService    NoteService
	DeviceService  DeviceService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires every service around one shared tenant store.
func NewServices(tenants store.TenantStorage, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	gate, err := NewIdentityGate(tenants, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		IdentityGate:   gate,
		NoteService:    NewNoteService(gate, tenants, logger),
		DeviceService:  NewDeviceService(gate, tenants, logger),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfo,
	}, nil
}
