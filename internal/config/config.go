// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Able Wong

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// firekit application. It aggregates all sub-configurations and is
// populated by merging values from command-line flags and environment
// variables, with defaults filling whatever both left unset.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//
// Every lookup additionally carries the global FIREKIT_ prefix.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Store holds connection settings for the remote document store.
	Store Store `envPrefix:"STORE_"`

	// Identity holds connection settings for the external identity
	// provider used for credential validation.
	Identity Identity `envPrefix:"IDENTITY_"`

	// AI holds settings for the completion provider.
	AI AI `envPrefix:"AI_"`

	// ProjectID names the remote project the store and identity
	// endpoints are scoped to. When unset it is resolved from the web
	// config blob, then from the service account blob.
	// Env: FIREKIT_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// WebConfigJSON is the raw JSON blob of client-safe connection
	// parameters (apiKey, authDomain, projectId, ...). Parsed into Web
	// during build.
	// Env: FIREKIT_WEB_CONFIG
	WebConfigJSON string `env:"WEB_CONFIG"`

	// ServiceAccountJSON is the raw service-account credential blob.
	// Parsed into ServiceAccount during build. Never logged.
	// Env: FIREKIT_SERVICE_ACCOUNT
	ServiceAccountJSON string `env:"SERVICE_ACCOUNT"`

	// Web is the decoded form of WebConfigJSON.
	Web WebConfig

	// ServiceAccount is the decoded form of ServiceAccountJSON.
	ServiceAccount ServiceAccount
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: FIREKIT_APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// Address is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: FIREKIT_SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single
	// inbound request before the server cancels it (e.g. "30s", "1m").
	// Env: FIREKIT_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the origins the CORS layer accepts,
	// comma-separated. "*" allows any origin.
	// Env: FIREKIT_SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`
}

// Store holds connection settings for the remote document store.
type Store struct {
	// BaseURL is the root of the store's REST interface.
	// Env: FIREKIT_STORE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound store call.
	// Env: FIREKIT_STORE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of retries after a failed store call.
	// Zero disables retrying; failures surface immediately.
	// Env: FIREKIT_STORE_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// RetryWait is the initial backoff between retries when RetryCount
	// is positive.
	// Env: FIREKIT_STORE_RETRY_WAIT
	RetryWait time.Duration `env:"RETRY_WAIT"`

	// Token is a static bearer credential attached to every store
	// request. Optional; empty runs anonymously. Never logged.
	// Env: FIREKIT_STORE_TOKEN
	Token string `env:"TOKEN"`
}

// Identity holds connection settings for the identity provider.
type Identity struct {
	// BaseURL is the root of the provider's account-lookup interface.
	// Env: FIREKIT_IDENTITY_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single credential-validation call.
	// Env: FIREKIT_IDENTITY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// AI holds settings for the completion provider.
type AI struct {
	// APIKey authenticates completion requests. Never logged.
	// Env: FIREKIT_AI_API_KEY
	APIKey string `env:"API_KEY"`

	// Model names the completion model to request.
	// Env: FIREKIT_AI_MODEL
	Model string `env:"MODEL"`

	// BaseURL overrides the provider endpoint, e.g. to point at a
	// compatible self-hosted gateway. Empty keeps the provider default.
	// Env: FIREKIT_AI_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// GetServerConfig loads, merges, and validates the application
// configuration from all available sources in the following priority
// order (first source defining a key wins):
//  1. Command-line flags
//  2. Environment variables
//  3. Built-in defaults (fill only)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetServerConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withProcessEnv().
		withDefaults().
		build()
}
