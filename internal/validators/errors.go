// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrAnonymousOwner     = errors.New("tenant owner is anonymous")
	ErrDuplicateOwner     = errors.New("tenant owner is listed twice")
	ErrDuplicateAlias     = errors.New("device alias is listed twice")
	ErrDuplicateNoteID    = errors.New("note id is listed twice")
	ErrNoteIDNotAllocated = errors.New("note id is not below the next note id")
	ErrZeroNextNoteID     = errors.New("next note id must be positive")
)
