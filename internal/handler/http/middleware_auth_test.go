package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/able-wong/firekit/internal/identity"
	"github.com/able-wong/firekit/internal/logger"
	"github.com/able-wong/firekit/internal/utils"
)

// ---- Helpers ----

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeOptionalAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.withOptionalAuth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-id-token",
			wantToken: "my-id-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "extra parts — second part is used",
			header:    "Bearer token extra-part",
			wantToken: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- optional-auth middleware table test ----

func TestWithOptionalAuth_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		lookupFn    func(ctx context.Context, token string) (string, error)
		wantSubject any
	}{
		{
			name:        "no header → anonymous pass-through",
			authHeader:  "",
			wantSubject: nil,
		},
		{
			name:        "malformed header → anonymous pass-through",
			authHeader:  "BearerTokenWithoutSpace",
			wantSubject: nil,
		},
		{
			name:        "empty token → anonymous pass-through",
			authHeader:  "Bearer ",
			wantSubject: nil,
		},
		{
			name:       "valid token → subject in context",
			authHeader: "Bearer valid-token",
			lookupFn: func(_ context.Context, token string) (string, error) {
				assert.Equal(t, "valid-token", token)
				return "uid-42", nil
			},
			wantSubject: "uid-42",
		},
		{
			name:       "rejected token → anonymous pass-through",
			authHeader: "Bearer forged-token",
			lookupFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("credential lookup failed")
			},
			wantSubject: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &mockVerifier{lookupFn: tt.lookupFn}
			if tt.lookupFn == nil {
				verifier.lookupFn = func(_ context.Context, _ string) (string, error) {
					t.Fatal("Lookup should not be called")
					return "", nil
				}
			}

			h := newTestHandler(t, Dependencies{Verifier: verifier})

			nextCalled := false
			var capturedSubject any
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedSubject = r.Context().Value(utils.SubjectIDCtxKey)
				w.WriteHeader(http.StatusOK)
			})

			rr := executeOptionalAuth(h, tt.authHeader, next)

			assert.Equal(t, http.StatusOK, rr.Code, "optional auth must never block the request")
			assert.True(t, nextCalled)
			assert.Equal(t, tt.wantSubject, capturedSubject)
		})
	}
}

func TestWithOptionalAuth_NoVerifierConfigured(t *testing.T) {
	h := newTestHandler(t, Dependencies{})

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		_, ok := utils.GetSubjectIDFromContext(r.Context())
		assert.False(t, ok, "no verifier means no subject attribution")
		w.WriteHeader(http.StatusOK)
	})

	rr := executeOptionalAuth(h, "Bearer some-token", next)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, nextCalled)
}

func TestWithOptionalAuth_RealVerifierErrorContinues(t *testing.T) {
	verifier := &mockVerifier{
		lookupFn: func(_ context.Context, _ string) (string, error) {
			return "", identity.ErrInvalidCredential
		},
	}
	h := newTestHandler(t, Dependencies{Verifier: verifier})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := executeOptionalAuth(h, "Bearer expired", next)

	assert.Equal(t, http.StatusTeapot, rr.Code,
		"an invalid credential must not turn into an auth failure")
}

// ---- Original context is not mutated ----

func TestWithOptionalAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newTestHandler(t, Dependencies{Verifier: &mockVerifier{}})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withOptionalAuth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	req.Header.Set("Authorization", "Bearer token")
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, originalCtx, req.Context(), "original request context must not be mutated")
}

// ---- Concurrent requests — no races ----

func TestWithOptionalAuth_ConcurrentRequests(t *testing.T) {
	h := newTestHandler(t, Dependencies{Verifier: &mockVerifier{}})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.withOptionalAuth(next)

	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req = injectNopLogger(req)
			req.Header.Set("Authorization", "Bearer concurrent-token")
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)
			done <- rr.Code
		}()
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.Equal(t, http.StatusOK, code)
	}
}

// ---- logSubject ----

func TestLogSubject(t *testing.T) {
	t.Run("subject present", func(t *testing.T) {
		var buf bytes.Buffer
		l := zerolog.New(&buf)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		ctx := context.WithValue(req.Context(), utils.SubjectIDCtxKey, "uid-7")
		req = req.WithContext(ctx)

		logSubject(req, l.Info()).Msg("attributed")

		assert.Contains(t, buf.String(), `"subject":"uid-7"`)
	})

	t.Run("anonymous", func(t *testing.T) {
		var buf bytes.Buffer
		l := zerolog.New(&buf)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)

		logSubject(req, l.Info()).Msg("anonymous")

		assert.NotContains(t, buf.String(), "subject")
	})
}
