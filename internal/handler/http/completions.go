package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/able-wong/firekit/internal/logger"
	"github.com/able-wong/firekit/internal/utils"
)

// complete serves POST /api/ai/complete: the prompt is forwarded to the
// completion provider and content deltas are streamed back as
// server-sent events, terminated by a [DONE] marker. A client that
// cannot consume SSE may pass "stream": false to receive the whole
// completion as one JSON response. Header writing is deferred until
// the first delta so a provider failure still surfaces as a regular
// HTTP error.
func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if h.completer == nil {
		log.Warn().Msg("completion requested but no provider is configured")
		http.Error(w, "no completion provider configured", http.StatusServiceUnavailable)
		return
	}

	var request struct {
		Prompt string `json:"prompt"`

		// Stream defaults to true; only an explicit false disables it.
		Stream *bool `json:"stream"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(request.Prompt) == "" {
		log.Warn().Msg("completion request without a prompt")
		http.Error(w, "prompt is required", http.StatusBadRequest)
		return
	}

	if request.Stream != nil && !*request.Stream {
		text, err := h.completer.Complete(ctx, request.Prompt)
		if err != nil {
			log.Err(err).Msg("completion failed")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
		utils.WriteJSON(w, map[string]string{"completion": text}, http.StatusOK)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error().Msg("response writer does not support streaming")
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	log.Debug().
		Fields(logger.Normalize(map[string]any{
			"model":       h.completer.Model(),
			"promptChars": len(request.Prompt),
		})).
		Msg("completion stream opened")

	started := false
	start := func() {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		started = true
	}

	err := h.completer.Stream(ctx, request.Prompt, func(delta string) error {
		if !started {
			start()
		}
		if err := writeDelta(w, delta); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		if !started {
			log.Err(err).Msg("completion failed")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
		// headers are out; the client sees the stream end without [DONE]
		log.Err(err).Msg("completion stream interrupted")
		return
	}

	if !started {
		start()
	}
	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}

// writeDelta frames one content delta as a server-sent event. Newlines
// inside the delta become additional data lines of the same event.
func writeDelta(w io.Writer, delta string) error {
	for _, line := range strings.Split(delta, "\n") {
		if _, err := fmt.Fprintf(w, "data: %s\n", line); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
