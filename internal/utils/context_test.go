// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserIDCtxKey(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != 42 {
		t.Errorf("expected userID=42, got %d", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	userID, ok := GetUserIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if userID != 0 {
		t.Errorf("expected userID=0, got %d", userID)
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "not-an-int64")

	userID, ok := GetUserIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
	if userID != 0 {
		t.Errorf("expected userID=0, got %d", userID)
	}
}

func TestGetUserIDFromContext_ZeroValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(0))

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true for zero value, got false")
	}
	if userID != 0 {
		t.Errorf("expected userID=0, got %d", userID)
	}
}

func TestGetUserIDFromContext_NegativeValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(-1))

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != -1 {
		t.Errorf("expected userID=-1, got %d", userID)
	}
}

func TestGetUserIDFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, int64(99))

	userID, ok := GetUserIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
	if userID != 0 {
		t.Errorf("expected userID=0, got %d", userID)
	}
}

func TestWithUser(t *testing.T) {
	ctx := WithUser(context.Background(), 7, "a@b.c")

	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID != 7 {
		t.Errorf("expected userID=7, got %d (ok=%v)", userID, ok)
	}

	email, ok := GetEmailFromContext(ctx)
	if !ok || email != "a@b.c" {
		t.Errorf("expected email a@b.c, got %q (ok=%v)", email, ok)
	}
}

func TestGetEmailFromContext_Missing(t *testing.T) {
	email, ok := GetEmailFromContext(context.Background())
	if ok || email != "" {
		t.Errorf("expected empty email, got %q (ok=%v)", email, ok)
	}
}
