// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/notekeeper/internal/config"
	"github.com/MKhiriev/notekeeper/internal/handler"
	"github.com/MKhiriev/notekeeper/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	transports []transport
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" {
		if handlers.HTTP == nil {
			return nil, fmt.Errorf("%w: %s", errNoHandler, cfg.HTTPAddress)
		}
		servers.transports = append(servers.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" {
		if handlers.GRPC == nil {
			return nil, fmt.Errorf("%w: %s", errNoHandler, cfg.GRPCAddress)
		}
		servers.transports = append(servers.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	for i, t := range s.transports {
		if err := t.listen(); err != nil {
			s.shutdown(s.transports[:i])
			return fmt.Errorf("error starting %s server: %w", t.name(), err)
		}
	}

	serveErrs := make(chan error, len(s.transports))
	for _, t := range s.transports {
		s.logger.Info().Msgf("Launching %s server", t.name())
		go func() {
			if err := t.serve(); err != nil {
				serveErrs <- fmt.Errorf("%s server stopped: %w", t.name(), err)
			}
		}()
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErrs:
		s.logger.Err(err).Msg("transport failed")
	}

	s.shutdown(s.transports)
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) shutdown(transports []transport) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	for _, t := range transports {
		errs = append(errs, t.shutdown(ctx))
	}
	if err := errors.Join(errs...); err != nil {
		s.logger.Err(err).Msg("error shutting down servers")
	}
}
