// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT whose "sub" claim carries the caller [Principal].
//
// It embeds [jwt.Token] for signing and claim inspection and
// [jwt.RegisteredClaims] for standard claim access.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Principal is a cached copy of the subject claim.
	Principal Principal `json:"-"`
}

// GetPrincipal extracts the principal from the token's subject claim.
func (t *Token) GetPrincipal() (Principal, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting principal from token: %w", err)
	}

	return Principal(subject), nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
