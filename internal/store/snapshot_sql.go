// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/notekeeper/models"
)

const snapshotsTable = "snapshots"

// sqlSnapshotStorage keeps snapshots in the snapshots table. Only the latest
// row is retained.
type sqlSnapshotStorage struct {
	db *DB
}

// NewSQLSnapshotStorage returns a [SnapshotStorage] backed by db.
func NewSQLSnapshotStorage(db *DB) SnapshotStorage {
	return &sqlSnapshotStorage{db: db}
}

func (s *sqlSnapshotStorage) Save(ctx context.Context, snapshot models.Snapshot) error {
	log := s.db.logger

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingSnapshot, err)
	}

	insertQuery, insertArgs, err := sq.Insert(snapshotsTable).
		Columns("payload", "created_at").
		Values(string(payload), snapshot.CreatedAt).
		PlaceholderFormat(s.db.placeholder).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	pruneQuery, pruneArgs, err := sq.Delete(snapshotsTable).
		Where(sq.Expr("id < (SELECT MAX(id) FROM " + snapshotsTable + ")")).
		PlaceholderFormat(s.db.placeholder).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sqlSnapshotStorage.Save").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		log.Err(err).Str("func", "*sqlSnapshotStorage.Save").Msg("error inserting snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, pruneQuery, pruneArgs...); err != nil {
		log.Err(err).Str("func", "*sqlSnapshotStorage.Save").Msg("error pruning old snapshots")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*sqlSnapshotStorage.Save").Msg("error committing snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Int("tenants", len(snapshot.Tenants)).Msg("snapshot saved to database")

	return nil
}

func (s *sqlSnapshotStorage) Load(ctx context.Context) (models.Snapshot, error) {
	query, args, err := sq.Select("payload").
		From(snapshotsTable).
		OrderBy("id DESC").
		Limit(1).
		PlaceholderFormat(s.db.placeholder).
		ToSql()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		s.db.logger.Err(err).Str("func", "*sqlSnapshotStorage.Load").Msg("error loading snapshot")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var snapshot models.Snapshot
	if err = json.Unmarshal([]byte(payload), &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrDecodingSnapshot, err)
	}

	return snapshot, nil
}

// Classify reports whether a failed Save is worth retrying.
func (s *sqlSnapshotStorage) Classify(err error) ErrorClassification {
	return s.db.errorClassificator.Classify(err)
}

func (s *sqlSnapshotStorage) Close() error {
	return s.db.Close()
}
