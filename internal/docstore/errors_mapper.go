package docstore

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/able-wong/firekit/internal/logger"
	"github.com/go-resty/resty/v2"
)

// mapRemoteError converts a non-2xx store response into one of the
// package sentinels, logging the failure with its resource and action
// tags first. The returned error wraps the sentinel so callers can
// branch with errors.Is.
func (h *httpStore) mapRemoteError(resp *resty.Response, resource, action string) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(status)
	}

	h.logger.Error().
		Fields(logger.Normalize(map[string]any{
			"resource": resource,
			"action":   action,
			"status":   status,
			"response": body,
		})).
		Msg("store request failed")

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s %q: http %d: %s", ErrUnauthorized, action, resource, status, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s %q: http %d: %s", ErrNotFound, action, resource, status, body)
	default:
		return fmt.Errorf("%w: %s %q: http %d: %s", ErrRemoteOperation, action, resource, status, body)
	}
}
