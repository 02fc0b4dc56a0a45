// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/models"
)

// fileSnapshotStorage keeps the latest snapshot as a JSON document on the
// local filesystem.
type fileSnapshotStorage struct {
	path   string
	logger *logger.Logger
}

// NewFileSnapshotStorage returns a [SnapshotStorage] writing to path.
func NewFileSnapshotStorage(path string, log *logger.Logger) SnapshotStorage {
	return &fileSnapshotStorage{
		path:   path,
		logger: log,
	}
}

// Save writes the snapshot to a temporary file next to the target and then
// renames it over the target, so a reader never sees a half-written file.
func (f *fileSnapshotStorage) Save(ctx context.Context, snapshot models.Snapshot) error {
	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingSnapshot, err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		f.logger.Err(err).Str("func", "*fileSnapshotStorage.Save").Msg("error creating temporary snapshot file")
		return fmt.Errorf("error creating temporary snapshot file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error writing snapshot file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error closing snapshot file: %w", err)
	}

	if err = os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		f.logger.Err(err).Str("func", "*fileSnapshotStorage.Save").Msg("error replacing snapshot file")
		return fmt.Errorf("error replacing snapshot file: %w", err)
	}

	f.logger.Debug().Str("path", f.path).Int("tenants", len(snapshot.Tenants)).Msg("snapshot saved to file")

	return nil
}

// Load reads the snapshot file. A missing file yields [ErrSnapshotNotFound].
func (f *fileSnapshotStorage) Load(ctx context.Context) (models.Snapshot, error) {
	payload, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("error reading snapshot file: %w", err)
	}

	var snapshot models.Snapshot
	if err = json.Unmarshal(payload, &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrDecodingSnapshot, err)
	}

	return snapshot, nil
}

func (f *fileSnapshotStorage) Close() error {
	return nil
}
