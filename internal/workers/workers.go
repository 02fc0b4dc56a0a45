// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/notekeeper/internal/config"
	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. The snapshot worker is
// created only when snapshots is not nil.
func NewWorkers(tenants store.Snapshotter, snapshots store.SnapshotStorage, cfg config.Workers, logger *logger.Logger) (*Workers, error) {
	w := &Workers{}

	if snapshots != nil {
		snapshotWorker, err := NewSnapshotWorker(tenants, snapshots, cfg.SnapshotInterval, logger)
		if err != nil {
			return nil, err
		}
		w.workers = append(w.workers, snapshotWorker)
	}

	logger.Info().Int("count", len(w.workers)).Msg("workers created")

	return w, nil
}

// Run starts every worker and blocks until all of them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
