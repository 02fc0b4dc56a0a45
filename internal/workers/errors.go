// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

var ErrInvalidSnapshotInterval = errors.New("snapshot interval must be positive")
