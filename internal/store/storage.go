// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"

	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/internal/validators"
	"github.com/MKhiriev/notekeeper/models"
)

// tenant is the state owned by one principal.
type tenant struct {
	// registered is set by the first RegisterDevice call.
	registered bool

	// devices keeps registration order; deviceIndex maps alias → position.
	devices     []models.Device
	deviceIndex map[models.DeviceAlias]int

	notes []models.EncryptedNote

	// nextNoteID only grows, so deleted ids are never handed out again.
	nextNoteID models.NoteID
}

func newTenant() *tenant {
	return &tenant{
		deviceIndex: make(map[models.DeviceAlias]int),
		nextNoteID:  models.NewNoteID(1),
	}
}

// Storage is the in-memory implementation of [TenantStorage].
//
// A single RWMutex serializes all calls: a mutation holds the write lock for
// its whole duration, so no caller ever observes a partially applied change.
type Storage struct {
	mu      sync.RWMutex
	tenants map[models.Principal]*tenant

	validator validators.Validator
	logger    *logger.Logger
}

// NewStorage returns an empty store.
func NewStorage(logger *logger.Logger) *Storage {
	logger.Debug().Msg("creating tenant storage")

	return &Storage{
		tenants:   make(map[models.Principal]*tenant),
		validator: validators.NewSnapshotValidator(),
		logger:    logger,
	}
}

// lookup returns the owner's tenant or nil. Caller holds mu.
func (s *Storage) lookup(owner models.Principal) *tenant {
	if owner.IsAnonymous() {
		return nil
	}
	return s.tenants[owner]
}

// lookupOrCreate returns the owner's tenant, creating it on first use.
// Caller holds mu for writing.
func (s *Storage) lookupOrCreate(owner models.Principal) (*tenant, error) {
	if owner.IsAnonymous() {
		return nil, ErrAnonymousOwner
	}

	t, ok := s.tenants[owner]
	if !ok {
		t = newTenant()
		s.tenants[owner] = t
	}

	return t, nil
}
