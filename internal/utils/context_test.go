// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Able Wong

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

func TestSubjectIDCtxKey(t *testing.T) {
	if SubjectIDCtxKey.String() != "subjectID" {
		t.Errorf("expected 'subjectID', got '%s'", SubjectIDCtxKey.String())
	}
}

func TestGetSubjectIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectIDCtxKey, "uid-42")

	subjectID, ok := GetSubjectIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if subjectID != "uid-42" {
		t.Errorf("expected 'uid-42', got '%s'", subjectID)
	}
}

func TestGetSubjectIDFromContext_Missing(t *testing.T) {
	_, ok := GetSubjectIDFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetSubjectIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectIDCtxKey, 12345)

	_, ok := GetSubjectIDFromContext(ctx)
	if ok {
		t.Error("expected ok=false for non-string value")
	}
}
