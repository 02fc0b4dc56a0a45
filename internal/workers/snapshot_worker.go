// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/internal/store"
)

const finalSaveTimeout = 10 * time.Second

var defaultRetryDelays = []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}

// SnapshotWorker periodically exports the tenant store and persists it. A
// last snapshot is written when the worker stops.
type SnapshotWorker struct {
	tenants   store.Snapshotter
	snapshots store.SnapshotStorage
	interval  time.Duration

	// retryDelays are the pauses before each retry of a failed save.
	retryDelays []time.Duration

	logger *logger.Logger
}

func NewSnapshotWorker(tenants store.Snapshotter, snapshots store.SnapshotStorage, interval time.Duration, logger *logger.Logger) (*SnapshotWorker, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshotInterval, interval)
	}

	return &SnapshotWorker{
		tenants:     tenants,
		snapshots:   snapshots,
		interval:    interval,
		retryDelays: defaultRetryDelays,
		logger:      logger,
	}, nil
}

func (w *SnapshotWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("snapshot worker started")

	for {
		select {
		case <-ctx.Done():
			finalCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalSaveTimeout)
			if err := w.Save(finalCtx); err != nil {
				w.logger.Err(err).Msg("final snapshot failed")
			}
			cancel()
			w.logger.Info().Msg("snapshot worker stopped")
			return
		case <-ticker.C:
			if err := w.Save(ctx); err != nil {
				w.logger.Err(err).Msg("periodic snapshot failed")
			}
		}
	}
}

// Save exports the store once and writes it, retrying failures the
// snapshot storage classifies as retryable.
func (w *SnapshotWorker) Save(ctx context.Context) error {
	snapshot := w.tenants.Export(ctx)

	var err error
	for attempt := 0; ; attempt++ {
		err = w.snapshots.Save(ctx, snapshot)
		if err == nil {
			w.logger.Debug().Int("tenants", len(snapshot.Tenants)).Msg("snapshot saved")
			return nil
		}

		if attempt >= len(w.retryDelays) || !w.isRetryable(err) {
			break
		}

		w.logger.Warn().Err(err).Int("attempt", attempt+1).Msg("snapshot save failed, retrying")
		select {
		case <-ctx.Done():
			return fmt.Errorf("error saving snapshot: %w", ctx.Err())
		case <-time.After(w.retryDelays[attempt]):
		}
	}

	return fmt.Errorf("error saving snapshot: %w", err)
}

func (w *SnapshotWorker) isRetryable(err error) bool {
	classifier, ok := w.snapshots.(store.ErrorClassificator)
	if !ok {
		return false
	}
	return classifier.Classify(err) == store.Retryable
}
