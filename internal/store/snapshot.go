// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/models"
)

// Export implements [Snapshotter]. Tenants are ordered by owner so that equal
// states produce equal snapshots.
func (s *Storage) Export(ctx context.Context) models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := models.Snapshot{
		CreatedAt: time.Now().UTC(),
		Tenants:   make([]models.TenantSnapshot, 0, len(s.tenants)),
	}

	for owner, t := range s.tenants {
		ts := models.TenantSnapshot{
			Owner:      owner,
			Registered: t.registered,
			Devices:    make([]models.Device, len(t.devices)),
			Notes:      make([]models.EncryptedNote, len(t.notes)),
			NextNoteID: t.nextNoteID,
		}
		copy(ts.Devices, t.devices)
		copy(ts.Notes, t.notes)

		snapshot.Tenants = append(snapshot.Tenants, ts)
	}

	sort.Slice(snapshot.Tenants, func(i, j int) bool {
		return snapshot.Tenants[i].Owner < snapshot.Tenants[j].Owner
	})

	return snapshot
}

// Import implements [Snapshotter]. The snapshot is validated first; on
// failure the current state is kept and an error wrapping
// [ErrInvalidSnapshot] is returned.
func (s *Storage) Import(ctx context.Context, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, snapshot); err != nil {
		log.Err(err).Str("func", "*Storage.Import").Msg("snapshot rejected")
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	tenants := make(map[models.Principal]*tenant, len(snapshot.Tenants))
	for _, ts := range snapshot.Tenants {
		t := newTenant()
		t.registered = ts.Registered
		t.nextNoteID = ts.NextNoteID
		t.notes = append(t.notes, ts.Notes...)
		for _, d := range ts.Devices {
			t.deviceIndex[d.Alias] = len(t.devices)
			t.devices = append(t.devices, d)
		}
		tenants[ts.Owner] = t
	}

	s.mu.Lock()
	s.tenants = tenants
	s.mu.Unlock()

	log.Info().Int("tenants", len(tenants)).Time("created_at", snapshot.CreatedAt).Msg("snapshot imported")

	return nil
}
