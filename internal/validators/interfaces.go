// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds integrity checks for data entering the server
// from outside a request path, such as snapshots restored at startup.
//
// A [Validator] may be scoped to a subset of checks by passing field names;
// with no field names every check runs.
package validators

import "context"

// Validator validates obj, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
