// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/notekeeper/internal/config"
	myGRPC "github.com/MKhiriev/notekeeper/internal/handler/grpc"
	"github.com/MKhiriev/notekeeper/internal/logger"
)

type grpcServer struct {
	address string

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(server)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) name() string {
	return "gRPC"
}

func (g *grpcServer) listen() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}
	g.gRPCNetListener = lis
	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")

	return nil
}

func (g *grpcServer) serve() error {
	if err := g.server.Serve(g.gRPCNetListener); !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// shutdown waits for in-flight calls and forces the stop once ctx is done.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	defer func() {
		if g.gRPCNetListener != nil {
			_ = g.gRPCNetListener.Close()
		}
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
