// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidNoteIDParam is returned when the {id} path parameter is not
	// a decimal 128-bit unsigned integer.
	ErrInvalidNoteIDParam = errors.New("invalid note id in path")

	// ErrInvalidAliasParam is returned when the {alias} path parameter is
	// not a valid percent-encoded segment.
	ErrInvalidAliasParam = errors.New("invalid device alias in path")
)
