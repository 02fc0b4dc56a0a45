// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http exposes the note and device operations as a JSON REST API.
//
// Every request gets a trace id and an access log line. The caller's
// principal is taken from an optional "Authorization: Bearer <jwt>" header;
// a request without one runs as the anonymous principal and is rejected by
// the service layer for every tenant operation.
package http
