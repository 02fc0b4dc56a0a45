// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors of the tenant store. Callers should use [errors.Is].
var (
	// ErrNoteNotFound is returned by UpdateNote when the owner has no note
	// with the given id. No note is created implicitly.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrAnonymousOwner is returned when a mutation is attempted on behalf of
	// the anonymous principal. The anonymous principal never owns state.
	ErrAnonymousOwner = errors.New("anonymous principal cannot own data")

	// ErrNoteIDsExhausted is returned by AddNote when the owner's id counter
	// has reached 2^128-1. Ids are never reused, so no note can be added.
	ErrNoteIDsExhausted = errors.New("note ids are exhausted")

	// ErrInvalidSnapshot is returned by Import when the snapshot violates a
	// store invariant. The current state is left untouched.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrSnapshotNotFound is returned by a [SnapshotStorage] when nothing has
	// been saved yet.
	ErrSnapshotNotFound = errors.New("snapshot was not found")

	// ErrUnsupportedDSN is returned when a snapshot DSN matches neither the
	// PostgreSQL nor the SQLite form.
	ErrUnsupportedDSN = errors.New("unsupported snapshot DSN")
)

// Low-level persistence errors. They wrap the driver error.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan snapshot row")

	// ErrEncodingSnapshot is returned when a snapshot cannot be serialized.
	ErrEncodingSnapshot = errors.New("failed to encode snapshot")

	// ErrDecodingSnapshot is returned when stored bytes are not a snapshot.
	ErrDecodingSnapshot = errors.New("failed to decode snapshot")
)
