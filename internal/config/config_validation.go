// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable at
// startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.RegistrationMode {
	case RegistrationModeStrict, RegistrationModeOpen:
	default:
		return fmt.Errorf("%w: unknown registration mode %q", ErrInvalidAppConfigs, cfg.App.RegistrationMode)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no transport address", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Storage.Snapshot.FilePath != "" && cfg.Storage.Snapshot.DSN != "" {
		return fmt.Errorf("%w: snapshot file and DSN are mutually exclusive", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.SnapshotsEnabled() && cfg.Workers.SnapshotInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
