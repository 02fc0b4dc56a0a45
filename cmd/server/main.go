// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/notekeeper/internal/config"
	"github.com/MKhiriev/notekeeper/internal/handler"
	"github.com/MKhiriev/notekeeper/internal/logger"
	"github.com/MKhiriev/notekeeper/internal/server"
	"github.com/MKhiriev/notekeeper/internal/service"
	"github.com/MKhiriev/notekeeper/internal/store"
	"github.com/MKhiriev/notekeeper/internal/workers"
	"github.com/MKhiriev/notekeeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("notekeeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).
		Str("registration_mode", cfg.App.RegistrationMode).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer closeSnapshots(storages, log)

	if storages.SnapshotStorage != nil {
		if err = store.Restore(ctx, storages.TenantStorage, storages.SnapshotStorage); err != nil {
			log.Fatal().Err(err).Msg("error restoring snapshot")
		}
	}

	services, err := service.NewServices(storages.TenantStorage, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bgWorkers, err := workers.NewWorkers(storages.TenantStorage, storages.SnapshotStorage, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}

	// The server and the workers share one lifetime: a failing server stops
	// the workers, which then write their final snapshot.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Go(func() {
		bgWorkers.Run(runCtx)
	})

	if err = srv.RunServer(runCtx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
	cancel()
	wg.Wait()

	log.Info().Msg("notekeeper server stopped")
}

func closeSnapshots(storages *store.Storages, log *logger.Logger) {
	if storages.SnapshotStorage == nil {
		return
	}
	if err := storages.SnapshotStorage.Close(); err != nil {
		log.Err(err).Msg("error closing snapshot storage")
	}
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
