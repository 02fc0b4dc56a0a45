// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/notekeeper/models"
)

// Field names accepted by [SnapshotValidator].
const (
	// FieldOwners checks that every owner is non-anonymous and listed once.
	FieldOwners = "owners"

	// FieldDevices checks that aliases are unique within each tenant.
	FieldDevices = "devices"

	// FieldNotes checks that note ids are unique within each tenant and were
	// all handed out before NextNoteID.
	FieldNotes = "notes"
)

// SnapshotValidator checks that a [models.Snapshot] describes a state the
// tenant store could have produced itself.
type SnapshotValidator struct{}

// NewSnapshotValidator returns a SnapshotValidator as a Validator.
func NewSnapshotValidator() Validator {
	return &SnapshotValidator{}
}

// Validate accepts models.Snapshot, *models.Snapshot, models.TenantSnapshot
// and *models.TenantSnapshot. With no fields every check runs.
func (v *SnapshotValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Snapshot:
		return v.validateSnapshot(ctx, value, fields...)
	case *models.Snapshot:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSnapshot(ctx, *value, fields...)
	case models.TenantSnapshot:
		return v.validateTenant(ctx, value, fields...)
	case *models.TenantSnapshot:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTenant(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SnapshotValidator) validateSnapshot(ctx context.Context, snapshot models.Snapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwners, FieldDevices, FieldNotes}
	}

	seen := make(map[models.Principal]struct{}, len(snapshot.Tenants))
	for i, tenant := range snapshot.Tenants {
		if containsField(fields, FieldOwners) {
			if _, ok := seen[tenant.Owner]; ok {
				return fmt.Errorf("validation error at tenant %d: %w", i, ErrDuplicateOwner)
			}
			seen[tenant.Owner] = struct{}{}
		}

		if err := v.validateTenant(ctx, tenant, fields...); err != nil {
			return fmt.Errorf("validation error at tenant %d: %w", i, err)
		}
	}

	return nil
}

func (v *SnapshotValidator) validateTenant(ctx context.Context, tenant models.TenantSnapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwners, FieldDevices, FieldNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldOwners:
			if tenant.Owner.IsAnonymous() {
				return ErrAnonymousOwner
			}
		case FieldDevices:
			aliases := make(map[models.DeviceAlias]struct{}, len(tenant.Devices))
			for _, d := range tenant.Devices {
				if _, ok := aliases[d.Alias]; ok {
					return fmt.Errorf("%w: %q", ErrDuplicateAlias, d.Alias)
				}
				aliases[d.Alias] = struct{}{}
			}
		case FieldNotes:
			if tenant.NextNoteID.IsZero() {
				return ErrZeroNextNoteID
			}
			ids := make(map[models.NoteID]struct{}, len(tenant.Notes))
			for _, n := range tenant.Notes {
				if _, ok := ids[n.ID]; ok {
					return fmt.Errorf("%w: %s", ErrDuplicateNoteID, n.ID)
				}
				if !n.ID.Less(tenant.NextNoteID) {
					return fmt.Errorf("%w: %s", ErrNoteIDNotAllocated, n.ID)
				}
				ids[n.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func containsField(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
