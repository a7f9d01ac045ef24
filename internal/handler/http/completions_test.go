package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/able-wong/firekit/internal/ai"
)

// ─────────────────────────────────────────────
// complete: streaming
// ─────────────────────────────────────────────

func TestComplete_StreamsDeltas(t *testing.T) {
	completer := &mockCompleter{
		streamFn: func(_ context.Context, prompt string, fn func(delta string) error) error {
			assert.Equal(t, "Say hello", prompt)
			for _, delta := range []string{"Hel", "lo", " there"} {
				if err := fn(delta); err != nil {
					return err
				}
			}
			return nil
		},
	}
	h := newTestHandler(t, Dependencies{Completer: completer})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/complete",
		strings.NewReader(`{"prompt":"Say hello"}`))
	rec := httptest.NewRecorder()

	h.complete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t,
		"data: Hel\n\ndata: lo\n\ndata:  there\n\ndata: [DONE]\n\n",
		rec.Body.String())
}

func TestComplete_MultiLineDelta(t *testing.T) {
	completer := &mockCompleter{
		streamFn: func(_ context.Context, _ string, fn func(delta string) error) error {
			return fn("first line\nsecond line")
		},
	}
	h := newTestHandler(t, Dependencies{Completer: completer})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/complete",
		strings.NewReader(`{"prompt":"multi"}`))
	rec := httptest.NewRecorder()

	h.complete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"data: first line\ndata: second line\n\ndata: [DONE]\n\n",
		rec.Body.String())
}

func TestComplete_EmptyStreamStillTerminates(t *testing.T) {
	h := newTestHandler(t, Dependencies{Completer: &mockCompleter{}})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/complete",
		strings.NewReader(`{"prompt":"quiet"}`))
	rec := httptest.NewRecorder()

	h.complete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "data: [DONE]\n\n", rec.Body.String())
}

func TestComplete_ProviderErrorBeforeFirstDelta(t *testing.T) {
	completer := &mockCompleter{
		streamFn: func(_ context.Context, _ string, _ func(delta string) error) error {
			return fmt.Errorf("completion API error 429: rate limited: %w", ai.ErrCompletionProvider)
		},
	}
	h := newTestHandler(t, Dependencies{Completer: completer})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/complete",
		strings.NewReader(`{"prompt":"fail"}`))
	rec := httptest.NewRecorder()

	h.complete(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate limited")
}

func TestComplete_ProviderErrorMidStream(t *testing.T) {
	completer := &mockCompleter{
		streamFn: func(_ context.Context, _ string, fn func(delta string) error) error {
			if err := fn("partial"); err != nil {
				return err
			}
			return fmt.Errorf("connection dropped: %w", ai.ErrCompletionProvider)
		},
	}
	h := newTestHandler(t, Dependencies{Completer: completer})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/complete",
		strings.NewReader(`{"prompt":"drop"}`))
	rec := httptest.NewRecorder()

	h.complete(rec, req)

	// status was committed when the first delta went out
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "data: partial\n\n")
	assert.NotContains(t, rec.Body.String(), "[DONE]")
}

// ─────────────────────────────────────────────
// complete: single-shot
// ─────────────────────────────────────────────

func TestComplete_SingleShot(t *testing.T) {
	completer := &mockCompleter{
		completeFn: func(_ context.Context, prompt string) (string, error) {
			assert.Equal(t, "Say hello", prompt)
			return "Hello there", nil
		},
	}
	h := newTestHandler(t, Dependencies{Completer: completer})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/complete",
		strings.NewReader(`{"prompt":"Say hello","stream":false}`))
	rec := httptest.NewRecorder()

	h.complete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"completion":"Hello there"}`, rec.Body.String())
}

func TestComplete_SingleShotProviderError(t *testing.T) {
	completer := &mockCompleter{
		completeFn: func(_ context.Context, _ string) (string, error) {
			return "", fmt.Errorf("completion API error 500: upstream: %w", ai.ErrCompletionProvider)
		},
	}
	h := newTestHandler(t, Dependencies{Completer: completer})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/complete",
		strings.NewReader(`{"prompt":"fail","stream":false}`))
	rec := httptest.NewRecorder()

	h.complete(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

// ─────────────────────────────────────────────
// complete: request validation
// ─────────────────────────────────────────────

func TestComplete_NoProviderConfigured(t *testing.T) {
	h := newTestHandler(t, Dependencies{})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/complete",
		strings.NewReader(`{"prompt":"anyone home"}`))
	rec := httptest.NewRecorder()

	h.complete(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "no completion provider configured")
}

func TestComplete_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, Dependencies{Completer: &mockCompleter{}})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/complete", strings.NewReader(`{bad`))
	rec := httptest.NewRecorder()

	h.complete(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestComplete_EmptyPrompt(t *testing.T) {
	h := newTestHandler(t, Dependencies{Completer: &mockCompleter{}})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/complete",
		strings.NewReader(`{"prompt":"   "}`))
	rec := httptest.NewRecorder()

	h.complete(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "prompt is required")
}

// ─────────────────────────────────────────────
// complete: through the full middleware chain
// ─────────────────────────────────────────────

func TestComplete_StreamsThroughRouter(t *testing.T) {
	completer := &mockCompleter{
		streamFn: func(_ context.Context, _ string, fn func(delta string) error) error {
			return fn("routed")
		},
	}
	router := newTestRouter(t, Dependencies{Completer: completer})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/complete",
		strings.NewReader(`{"prompt":"via router"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "data: routed\n\ndata: [DONE]\n\n", rec.Body.String())
}
