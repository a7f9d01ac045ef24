// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Able Wong

package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// WebConfig is the client-safe connection blob published to browsers.
// It carries no secrets; the API key here is a public client key.
type WebConfig struct {
	// APIKey is the public client key for the identity endpoints.
	APIKey string `json:"apiKey"`

	// AuthDomain is the hosted sign-in domain.
	AuthDomain string `json:"authDomain"`

	// ProjectID names the remote project.
	ProjectID string `json:"projectId"`

	// DatabaseURL points at the realtime database, when enabled.
	DatabaseURL string `json:"databaseURL,omitempty"`

	// StorageBucket names the blob storage bucket, when enabled.
	StorageBucket string `json:"storageBucket,omitempty"`

	// MessagingSenderID identifies the push-messaging sender.
	MessagingSenderID string `json:"messagingSenderId,omitempty"`

	// AppID is the registered application identifier.
	AppID string `json:"appId,omitempty"`
}

// ServiceAccount is the server-side credential blob. Only the fields
// the application reads are decoded; the private key never leaves this
// struct.
type ServiceAccount struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	ClientID     string `json:"client_id"`
	TokenURI     string `json:"token_uri"`
}

// parseBlobs decodes the raw JSON configuration blobs into their
// structured forms. Absent blobs are left zero; a present blob that
// fails to decode is a malformed-configuration error.
func (cfg *StructuredConfig) parseBlobs() error {
	if raw := strings.TrimSpace(cfg.WebConfigJSON); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg.Web); err != nil {
			return fmt.Errorf("%w: web config blob: %v", ErrMalformedConfig, err)
		}
	}

	if raw := strings.TrimSpace(cfg.ServiceAccountJSON); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg.ServiceAccount); err != nil {
			return fmt.Errorf("%w: service account blob: %v", ErrMalformedConfig, err)
		}
	}

	return nil
}

// resolveProjectID fills cfg.ProjectID from the first surface that
// defines it: the explicit variable, then the web config blob, then
// the service account blob.
func (cfg *StructuredConfig) resolveProjectID() {
	if cfg.ProjectID != "" {
		return
	}
	if cfg.Web.ProjectID != "" {
		cfg.ProjectID = cfg.Web.ProjectID
		return
	}
	cfg.ProjectID = cfg.ServiceAccount.ProjectID
}

// GetWebConfig returns the decoded web config blob, or an error when
// no blob was configured.
func (cfg *StructuredConfig) GetWebConfig() (WebConfig, error) {
	if strings.TrimSpace(cfg.WebConfigJSON) == "" {
		return WebConfig{}, fmt.Errorf("%w: no web config blob configured", ErrMissingConfig)
	}
	return cfg.Web, nil
}
