// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the note and device operations as the unary gRPC
// service notekeeper.Notes.
//
// Messages are plain Go structs carried by a JSON codec registered under the
// "json" content subtype, so no generated protobuf code is involved. Clients
// must call with grpc.CallContentSubtype("json"); [NotesClient] does that.
// The caller's principal travels as a bearer token in the "authorization"
// metadata entry; a call without one runs as the anonymous principal.
package grpc
