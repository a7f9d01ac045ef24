package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/able-wong/firekit/internal/config"
)

// ─────────────────────────────────────────────
// demoPage
// ─────────────────────────────────────────────

func TestDemoPage_WithoutWebConfig(t *testing.T) {
	h := newTestHandler(t, Dependencies{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.demoPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "const webConfig = null")
	assert.Contains(t, rec.Body.String(), "No completion provider is configured")
}

func TestDemoPage_WithWebConfig(t *testing.T) {
	h := newTestHandler(t, Dependencies{
		WebConfig: &config.WebConfig{
			APIKey:     "public-key",
			AuthDomain: "demo.example.com",
			ProjectID:  "demo-project",
		},
		Completer: &mockCompleter{},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.demoPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"projectId":"demo-project"`)
	assert.Contains(t, body, `"apiKey":"public-key"`)
	assert.Contains(t, body, `id="ai-form"`,
		"a configured completer should surface the completion demo")
	assert.NotContains(t, body, "No completion provider is configured")
}

func TestDemoPage_VersionShown(t *testing.T) {
	h := newTestHandler(t, Dependencies{Version: "9.9.9"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.demoPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "9.9.9")
}
