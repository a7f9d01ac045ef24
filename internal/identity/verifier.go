// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Able Wong

// Package identity validates bearer credentials against the external
// identity provider's token-introspection endpoint. Cryptographic
// verification happens on the provider side; this package only decodes
// claims locally, without verifying, to enrich logs.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/able-wong/firekit/internal/config"
	"github.com/able-wong/firekit/internal/logger"
	"github.com/able-wong/firekit/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// Verifier introspects bearer tokens via the provider's
// accounts:lookup endpoint and remembers the outcome for its own
// credential. One Verifier holds one credential and is not safe for
// concurrent validation; [Verifier.Lookup] is stateless and safe.
type Verifier struct {
	client *utils.HTTPClient
	apiKey string
	token  string
	logger *logger.Logger

	validated bool
	subjectID string
}

// NewVerifier builds a Verifier bound to the introspection endpoint in
// cfg. token is the instance's own credential and may be empty for
// anonymous use; apiKey is the provider's web API key and may be empty
// when the endpoint does not require one.
func NewVerifier(cfg config.Identity, apiKey, token string, log *logger.Logger) (*Verifier, error) {
	baseURL, err := checkBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid identity base URL: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &Verifier{
		client: client,
		apiKey: apiKey,
		token:  strings.TrimSpace(token),
		logger: log,
	}, nil
}

func checkBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ValidateCredential checks the Verifier's own credential. Without a
// token it succeeds trivially and marks the instance anonymous. With
// one it performs a single lookup; the subject ID is cached only on
// success, so a failed validation leaves the instance unvalidated.
func (v *Verifier) ValidateCredential(ctx context.Context) error {
	if v.token == "" {
		v.validated = true
		v.subjectID = ""
		v.logger.Debug().Msg("no credential supplied, continuing anonymously")
		return nil
	}

	subjectID, err := v.Lookup(ctx, v.token)
	if err != nil {
		return err
	}

	v.validated = true
	v.subjectID = subjectID
	return nil
}

// SubjectID returns the subject cached by a successful
// ValidateCredential call. Before any successful validation it returns
// [ErrNotValidated]; after an anonymous validation it returns an empty
// subject and no error.
func (v *Verifier) SubjectID() (string, error) {
	if !v.validated {
		return "", ErrNotValidated
	}
	return v.subjectID, nil
}

// Lookup introspects token without touching the Verifier's own state.
// It returns the provider's subject ID for the token, or an error
// wrapping [ErrInvalidCredential] when the provider rejects it or
// reports no subject.
func (v *Verifier) Lookup(ctx context.Context, token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: empty token", ErrInvalidCredential)
	}

	if fields := peekClaims(token); len(fields) > 0 {
		v.logger.Debug().Fields(logger.Normalize(fields)).Msg("validating credential")
	}

	req := v.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"idToken": token})
	if v.apiKey != "" {
		req.SetQueryParam("key", v.apiKey)
	}

	resp, err := req.Post("/accounts:lookup")
	if err != nil {
		return "", fmt.Errorf("credential lookup request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		body := strings.TrimSpace(string(resp.Body()))
		v.logger.Error().
			Fields(logger.Normalize(map[string]any{
				"status":   resp.StatusCode(),
				"response": body,
			})).
			Msg("credential lookup failed")
		return "", fmt.Errorf("%w: http %d", ErrInvalidCredential, resp.StatusCode())
	}

	var lookup struct {
		Users []struct {
			LocalID string `json:"localId"`
		} `json:"users"`
	}
	if err = json.Unmarshal(resp.Body(), &lookup); err != nil {
		return "", fmt.Errorf("decode credential lookup response: %w", err)
	}
	if len(lookup.Users) == 0 || lookup.Users[0].LocalID == "" {
		return "", fmt.Errorf("%w: provider returned no subject", ErrInvalidCredential)
	}

	return lookup.Users[0].LocalID, nil
}

// peekClaims decodes the token's subject and expiry without verifying
// the signature, for log context only. Opaque or malformed tokens
// yield nil.
func peekClaims(tokenString string) map[string]any {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	fields := map[string]any{}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		fields["subject"] = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		fields["expiresAt"] = exp.Time
	}
	return fields
}
