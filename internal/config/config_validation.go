// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Able Wong

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies
// the invariants the rest of the application assumes at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// wrapping [ErrIncompleteConfig] otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.ProjectID == "" {
		return fmt.Errorf("%w: project ID not present in any source (explicit, web config, service account)", ErrIncompleteConfig)
	}

	if cfg.Server.Address == "" {
		return fmt.Errorf("%w: server address is empty", ErrIncompleteConfig)
	}

	if cfg.Store.BaseURL == "" {
		return fmt.Errorf("%w: store base URL is empty", ErrIncompleteConfig)
	}

	if cfg.Identity.BaseURL == "" {
		return fmt.Errorf("%w: identity base URL is empty", ErrIncompleteConfig)
	}

	return nil
}
