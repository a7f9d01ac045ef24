package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/able-wong/firekit/internal/ai"
	"github.com/able-wong/firekit/internal/docstore"
	"github.com/able-wong/firekit/internal/identity"
	"github.com/able-wong/firekit/internal/logger"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(Dependencies{Store: &mockStore{}}, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	store := &mockStore{}
	verifier := &mockVerifier{}
	completer := &mockCompleter{}

	h := NewHandler(Dependencies{
		Store:     store,
		Verifier:  verifier,
		Completer: completer,
		Version:   "1.0.0",
	}, logger.Nop())

	assert.Equal(t, store, h.store)
	assert.Equal(t, verifier, h.verifier)
	assert.Equal(t, completer, h.completer)
	assert.Equal(t, "1.0.0", h.version)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(Dependencies{Store: &mockStore{}}, logger.Nop())
	h2 := NewHandler(Dependencies{Store: &mockStore{}}, logger.Nop())

	assert.NotSame(t, h1, h2)
}

// ─────────────────────────────────────────────
// statusFromError
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid name", docstore.ErrInvalidName, http.StatusBadRequest},
		{"invalid path", docstore.ErrInvalidPath, http.StatusBadRequest},
		{"invalid query", docstore.ErrInvalidQuery, http.StatusBadRequest},
		{"store unauthorized", docstore.ErrUnauthorized, http.StatusUnauthorized},
		{"store not found", docstore.ErrNotFound, http.StatusNotFound},
		{"store remote failure", docstore.ErrRemoteOperation, http.StatusBadGateway},
		{"invalid credential", identity.ErrInvalidCredential, http.StatusUnauthorized},
		{"credential not validated", identity.ErrNotValidated, http.StatusUnauthorized},
		{"completion provider", ai.ErrCompletionProvider, http.StatusBadGateway},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"nil-safe default", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("fetch %q: http 404: %w", "books/missing", docstore.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, statusFromError(wrapped))

	doubleWrapped := fmt.Errorf("handler: %w", wrapped)
	assert.Equal(t, http.StatusNotFound, statusFromError(doubleWrapped))
}

// ─────────────────────────────────────────────
// Unknown routes
// ─────────────────────────────────────────────

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t, Dependencies{})

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
