// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Principal is an opaque, already verified caller identity handed over by the
// transport layer. The store only compares principals for equality.
type Principal string

// AnonymousPrincipal is the textual form of the reserved anonymous identity.
// It is never a valid tenant.
const AnonymousPrincipal Principal = "2vxsx-fae"

// IsAnonymous reports whether p is the anonymous identity. An empty principal
// is treated as anonymous as well.
func (p Principal) IsAnonymous() bool {
	return p == "" || p == AnonymousPrincipal
}

// String implements [fmt.Stringer].
func (p Principal) String() string {
	return string(p)
}
