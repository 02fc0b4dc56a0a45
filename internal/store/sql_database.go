// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/migrations"
)

// DB is a migrated snapshot database together with the dialect details the
// query builder and the error classifier need.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// parseDSN resolves the database/sql driver, goose dialect and driver DSN of
// a snapshot DSN.
func parseDSN(dsn string) (driver, dialect, source string, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "pgx", migrations.DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite3://"):
		return "sqlite3", migrations.DialectSQLite, strings.TrimPrefix(dsn, "sqlite3://"), nil
	case strings.HasPrefix(dsn, "file:"), strings.HasSuffix(dsn, ".db"), strings.HasSuffix(dsn, ".sqlite"):
		return "sqlite3", migrations.DialectSQLite, dsn, nil
	}

	return "", "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}

// NewConnectDB opens the database named by dsn, pings it and applies the
// snapshot migrations.
func NewConnectDB(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	driver, dialect, source, err := parseDSN(dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("error parsing snapshot DSN")
		return nil, err
	}

	conn, err := sql.Open(driver, source)
	if err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectDB").Msg("error connecting database (ping)")
		return nil, err
	}

	db := newDB(conn, dialect, log)
	if err = db.Migrate(); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectDB").Msg("error migrating snapshot database")
		return nil, err
	}
	log.Info().Str("func", "NewConnectDB").Str("dialect", dialect).Msg("connected to snapshot database successfully")

	return db, nil
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectPostgres:
		conn.SetMaxOpenConns(4)
		db.placeholder = sq.Dollar
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		// SQLite allows one writer at a time.
		conn.SetMaxOpenConns(1)
		db.placeholder = sq.Question
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Migrate applies the embedded migrations for the database's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
