// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/internal/store"
	"github.com/MKhiriev/notekeeper/models"
)

// deviceService runs device registry operations behind the identity gate.
// Registration only needs a non-anonymous caller; listing and deletion need
// a registered one.
type deviceService struct {
	gate    IdentityGate
	devices store.DeviceStorage

	logger *logger.Logger
}

func NewDeviceService(gate IdentityGate, devices store.DeviceStorage, logger *logger.Logger) DeviceService {
	return &deviceService{
		gate:    gate,
		devices: devices,
		logger:  logger,
	}
}

func (s *deviceService) RegisterDevice(ctx context.Context, device models.Device) error {
	owner, err := s.gate.Authorize(ctx, false)
	if err != nil {
		return err
	}

	if err = s.devices.RegisterDevice(ctx, owner, device.Alias, device.PublicKey); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*deviceService.RegisterDevice").
			Str("alias", string(device.Alias)).
			Msg("device was not registered")
		return fmt.Errorf("device was not registered: %w", err)
	}

	return nil
}

func (s *deviceService) GetDeviceAliases(ctx context.Context) ([]models.DeviceAlias, error) {
	owner, err := s.gate.Authorize(ctx, true)
	if err != nil {
		return nil, err
	}

	return s.devices.GetDeviceAliases(ctx, owner), nil
}

func (s *deviceService) GetDevices(ctx context.Context) ([]models.Device, error) {
	owner, err := s.gate.Authorize(ctx, true)
	if err != nil {
		return nil, err
	}

	return s.devices.GetDevices(ctx, owner), nil
}

func (s *deviceService) DeleteDevice(ctx context.Context, alias models.DeviceAlias) error {
	owner, err := s.gate.Authorize(ctx, true)
	if err != nil {
		return err
	}

	s.devices.DeleteDevice(ctx, owner, alias)

	return nil
}
