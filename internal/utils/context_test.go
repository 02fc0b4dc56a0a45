// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/notekeeper/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestPrincipalCtxKey(t *testing.T) {
	if PrincipalCtxKey.String() != "principal" {
		t.Errorf("expected 'principal', got '%s'", PrincipalCtxKey.String())
	}
}

func TestGetPrincipalFromContext_Success(t *testing.T) {
	ctx := WithPrincipal(context.Background(), models.Principal("aaaaa-aa"))
	principal, ok := GetPrincipalFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if principal != "aaaaa-aa" {
		t.Errorf("expected principal=aaaaa-aa, got %s", principal)
	}
}

func TestGetPrincipalFromContext_Missing(t *testing.T) {
	principal, ok := GetPrincipalFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if principal != "" {
		t.Errorf("expected empty principal, got %s", principal)
	}
}

func TestGetPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "plain-string")
	if _, ok := GetPrincipalFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetPrincipalFromContext_Anonymous(t *testing.T) {
	ctx := WithPrincipal(context.Background(), models.AnonymousPrincipal)
	principal, ok := GetPrincipalFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true for anonymous principal, got false")
	}
	if !principal.IsAnonymous() {
		t.Errorf("expected anonymous principal, got %s", principal)
	}
}
