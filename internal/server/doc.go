// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's transport servers.
//
// It binds the HTTP and gRPC listeners, serves them until the run context is
// cancelled or one of them fails, and then shuts every transport down
// gracefully.
package server
