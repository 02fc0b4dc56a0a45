// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid defaults", mutate: func(*StructuredConfig) {}},
		{name: "open mode", mutate: func(cfg *StructuredConfig) { cfg.App.RegistrationMode = RegistrationModeOpen }},
		{
			name:    "unknown mode",
			mutate:  func(cfg *StructuredConfig) { cfg.App.RegistrationMode = "lenient" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "bad log level",
			mutate:  func(cfg *StructuredConfig) { cfg.App.LogLevel = "loud" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "no transports",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "both snapshot backends",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Snapshot.FilePath = "/tmp/s.json"
				cfg.Storage.Snapshot.DSN = "file:s.db"
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "snapshot without interval",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Snapshot.FilePath = "/tmp/s.json"
				cfg.Workers.SnapshotInterval = 0
			},
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:   "no snapshot, no interval",
			mutate: func(cfg *StructuredConfig) { cfg.Workers.SnapshotInterval = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
