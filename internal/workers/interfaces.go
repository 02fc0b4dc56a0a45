// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers of the server and a
// Workers aggregate that runs them together.
package workers

import "context"

// Worker is a background process. Run blocks until ctx is cancelled and the
// worker has finished its shutdown work.
type Worker interface {
	Run(ctx context.Context)
}
