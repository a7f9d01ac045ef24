// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Able Wong

// Package docstore translates generic query descriptors into the
// document database's REST wire protocol and back.
//
// The primary abstraction is [Store], which decouples the handler layer
// from the wire encoding. The package ships an HTTP implementation
// ([NewClient]) that speaks the store's typed field-value format:
// reads decode wire documents into plain field maps, writes encode
// plain maps into typed values via a fixed tagged-union mapping.
//
// Error values defined in errors.go are mapped from HTTP status codes
// by mapRemoteError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrNotFound] for 404).
package docstore

import (
	"context"

	"github.com/able-wong/firekit/models"
)

// Store defines wire-agnostic access to the remote document database.
// Implementations are responsible for serialisation, authorization
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type Store interface {
	// SetToken stores the bearer credential attached to all subsequent
	// requests. An empty token switches the client to anonymous access;
	// the store's own access rules then gate every operation.
	SetToken(token string)

	// Token returns the bearer credential currently stored, or an
	// empty string if none has been set.
	Token() string

	// FetchCollection lists the named collection. A zero query issues
	// the plain listing request; any populated query field switches to
	// exactly one structured-query request encoding the descriptor.
	// An empty result is an empty slice, not an error.
	FetchCollection(ctx context.Context, name string, query models.Query) ([]models.Document, error)

	// FetchDocument retrieves one document by its collection/document
	// path (even number of non-empty segments).
	FetchDocument(ctx context.Context, path string) (models.Document, error)

	// CreateDocument inserts a new document into the named collection.
	// A payload already carrying a "fields" map is passed through
	// unchanged; a plain map is wire-encoded first. Returns the stored
	// document as the remote reports it.
	CreateDocument(ctx context.Context, collection string, payload map[string]any) (models.Document, error)

	// UpdateDocument patches the document at path, updating only the
	// top-level fields named in the payload. Same payload rules as
	// CreateDocument.
	UpdateDocument(ctx context.Context, path string, payload map[string]any) (models.Document, error)

	// DeleteDocument removes the document at path.
	DeleteDocument(ctx context.Context, path string) error
}
