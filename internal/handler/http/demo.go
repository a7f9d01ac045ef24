// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Able Wong

package http

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/able-wong/firekit/internal/logger"
)

//go:embed templates
var templateFS embed.FS

var demoTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// demoPageData is the model rendered into the starter page.
type demoPageData struct {
	// Version is the running build's version string.
	Version string

	// WebConfig is the client-safe connection blob, serialized as a
	// JSON literal. "null" when no blob is configured.
	WebConfig template.JS

	// HasCompleter reports whether the completion endpoint is live.
	HasCompleter bool
}

// demoPage renders the embedded starter page. The page carries the
// published web config blob so a browser-side SDK connects to the same
// project the server talks to.
func (h *Handler) demoPage(w http.ResponseWriter, r *http.Request) {
	data := demoPageData{
		Version:      h.version,
		WebConfig:    template.JS("null"),
		HasCompleter: h.completer != nil,
	}

	if h.webConfig != nil {
		blob, err := json.Marshal(h.webConfig)
		if err != nil {
			logger.FromRequest(r).Error().Err(err).Msg("failed to serialize web config")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		data.WebConfig = template.JS(blob)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := demoTemplate.Execute(w, data); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("failed to render demo page")
	}
}
