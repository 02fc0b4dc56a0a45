// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Registration modes accepted by [App.RegistrationMode].
const (
	// RegistrationModeStrict requires a caller to own at least one registered
	// device before it may touch notes or manage devices.
	RegistrationModeStrict = "strict"

	// RegistrationModeOpen lets every non-anonymous caller use the note
	// operations without registering a device first.
	RegistrationModeOpen = "open"
)

// StructuredConfig is the top-level configuration container for the
// notekeeper server. It aggregates all sub-configurations and is populated by
// merging defaults, environment variables, command-line flags and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, identity gate mode,
	// logging and token verification parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the snapshot persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the HTTP client adapter.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// RegistrationMode selects the identity gate mode: "strict" or "open".
	// Env: APP_REGISTRATION_MODE
	RegistrationMode string `env:"REGISTRATION_MODE"`

	// LogLevel is a zerolog level name (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSignKey is the secret used to verify caller tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of caller tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens issued by the server.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC server ("host:port").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the snapshot backends.
type Storage struct {
	Snapshot Snapshot `envPrefix:"SNAPSHOT_"`
}

// Snapshot selects where store snapshots are persisted. At most one of
// FilePath and DSN may be set; with neither the store is memory-only.
type Snapshot struct {
	// FilePath is the JSON snapshot file.
	// Env: STORAGE_SNAPSHOT_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// DSN is a PostgreSQL URL ("postgres://...") or a SQLite DSN
	// ("file:notes.db", "sqlite3://notes.db").
	// Env: STORAGE_SNAPSHOT_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds settings of the outbound HTTP client adapter.
type Adapter struct {
	// HTTPAddress is the base address of the notekeeper server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SnapshotInterval is the period of the snapshot worker.
	// Env: WORKERS_SNAPSHOT_INTERVAL
	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL"`
}

// SnapshotsEnabled reports whether a snapshot backend is configured.
func (s Storage) SnapshotsEnabled() bool {
	return s.Snapshot.FilePath != "" || s.Snapshot.DSN != ""
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources (last source wins for non-zero fields):
//  0. Defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetEnvConfig returns the defaults overlaid by environment variables only.
// Command-line tools that define their own flags use it instead of
// [GetStructuredConfig].
func GetEnvConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		buildUnvalidated()
}
