package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/able-wong/firekit/internal/logger"
	"github.com/able-wong/firekit/internal/utils"
)

// withOptionalAuth resolves a bearer credential into a subject ID when
// one is supplied. Requests without an Authorization header pass
// through untouched; a header that is malformed or fails introspection
// is logged and the request continues anonymously. On success the
// subject ID is stored in the request context under
// [utils.SubjectIDCtxKey].
func (h *Handler) withOptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || h.verifier == nil {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring malformed Authorization header")
			next.ServeHTTP(w, r)
			return
		}

		subjectID, err := h.verifier.Lookup(r.Context(), tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring unverifiable credential")
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SubjectIDCtxKey, subjectID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// logSubject attaches the authenticated subject ID to the log event
// when the request carries one.
func logSubject(r *http.Request, e *zerolog.Event) *zerolog.Event {
	if subjectID, ok := utils.GetSubjectIDFromContext(r.Context()); ok {
		return e.Str("subject", subjectID)
	}
	return e
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "<scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
