// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer binds every configured listener and serves requests until
	// ctx is cancelled or a transport fails. It returns after all transports
	// have been shut down.
	RunServer(ctx context.Context) error
}

// transport is one listener managed by [Server].
type transport interface {
	name() string
	listen() error
	serve() error
	shutdown(ctx context.Context) error
}
