// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/notekeeper/internal/config"
	"github.com/MKhiriev/notekeeper/internal/logger"
)

// ErrSnapshotsDisabled is returned by NewSnapshotStorage when no backend is
// configured.
var ErrSnapshotsDisabled = errors.New("snapshot storage is not configured")

// Storages bundles the tenant state with its optional snapshot backend.
type Storages struct {
	TenantStorage   TenantStorage
	SnapshotStorage SnapshotStorage
}

// NewStorages builds the in-memory tenant store and, when cfg names one, the
// snapshot backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{
		TenantStorage: NewStorage(log),
	}

	if !cfg.SnapshotsEnabled() {
		log.Info().Msg("snapshot storage disabled; state is kept in memory only")
		return storages, nil
	}

	snapshotStorage, err := NewSnapshotStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	storages.SnapshotStorage = snapshotStorage

	return storages, nil
}

// NewSnapshotStorage returns the SQL backend when a DSN is configured and the
// JSON file backend otherwise.
func NewSnapshotStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (SnapshotStorage, error) {
	switch {
	case cfg.Snapshot.DSN != "":
		db, err := NewConnectDB(ctx, cfg.Snapshot.DSN, log)
		if err != nil {
			return nil, err
		}
		return NewSQLSnapshotStorage(db), nil
	case cfg.Snapshot.FilePath != "":
		return NewFileSnapshotStorage(cfg.Snapshot.FilePath, log), nil
	}

	return nil, ErrSnapshotsDisabled
}

// Restore loads the latest snapshot from snapshots and imports it into
// tenants. A backend with nothing saved yet is not an error.
func Restore(ctx context.Context, tenants Snapshotter, snapshots SnapshotStorage) error {
	snapshot, err := snapshots.Load(ctx)
	if errors.Is(err, ErrSnapshotNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return tenants.Import(ctx, snapshot)
}
