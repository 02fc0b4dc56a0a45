// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/models"
)

// RegisterDevice implements [DeviceStorage]. Re-registering an alias
// overwrites its key and keeps its position.
func (s *Storage) RegisterDevice(ctx context.Context, owner models.Principal, alias models.DeviceAlias, key models.PublicKey) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.lookupOrCreate(owner)
	if err != nil {
		log.Err(err).Str("func", "*Storage.RegisterDevice").Msg("device rejected")
		return err
	}

	t.registered = true
	if i, ok := t.deviceIndex[alias]; ok {
		t.devices[i].PublicKey = key
		log.Debug().Str("owner", owner.String()).Str("alias", string(alias)).Msg("device key replaced")
		return nil
	}

	t.deviceIndex[alias] = len(t.devices)
	t.devices = append(t.devices, models.Device{Alias: alias, PublicKey: key})
	log.Debug().Str("owner", owner.String()).Str("alias", string(alias)).Msg("device registered")

	return nil
}

// GetDeviceAliases implements [DeviceStorage].
func (s *Storage) GetDeviceAliases(ctx context.Context, owner models.Principal) []models.DeviceAlias {
	s.mu.RLock()
	defer s.mu.RUnlock()

	aliases := []models.DeviceAlias{}
	if t := s.lookup(owner); t != nil {
		for _, d := range t.devices {
			aliases = append(aliases, d.Alias)
		}
	}

	return aliases
}

// GetDevices implements [DeviceStorage].
func (s *Storage) GetDevices(ctx context.Context, owner models.Principal) []models.Device {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.lookup(owner)
	if t == nil {
		return []models.Device{}
	}

	devices := make([]models.Device, len(t.devices))
	copy(devices, t.devices)

	return devices
}

// DeleteDevice implements [DeviceStorage].
func (s *Storage) DeleteDevice(ctx context.Context, owner models.Principal, alias models.DeviceAlias) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.lookup(owner)
	if t == nil {
		return
	}

	i, ok := t.deviceIndex[alias]
	if !ok {
		return
	}

	t.devices = append(t.devices[:i], t.devices[i+1:]...)
	delete(t.deviceIndex, alias)
	for j := i; j < len(t.devices); j++ {
		t.deviceIndex[t.devices[j].Alias] = j
	}
}

// IsRegistered implements [DeviceStorage].
func (s *Storage) IsRegistered(ctx context.Context, owner models.Principal) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.lookup(owner)
	return t != nil && t.registered
}
