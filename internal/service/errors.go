// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrAnonymousPrincipal is returned when the caller carries no identity or
	// the anonymous one. The call is aborted before any state is touched.
	ErrAnonymousPrincipal = errors.New("anonymous principal is not allowed")

	// ErrPrincipalNotRegistered is returned in strict mode when the caller has
	// never registered a device.
	ErrPrincipalNotRegistered = errors.New("principal has no registered device")

	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrUnknownRegistrationMode = errors.New("unknown registration mode")
)
