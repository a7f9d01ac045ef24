// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Able Wong

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix is the global prefix every configuration variable carries.
const envPrefix = "FIREKIT_"

// parseEnv populates cfg from the merged source snapshot using the
// caarlos0/env library. Struct fields are mapped via their `env` and
// `envPrefix` tags defined on [StructuredConfig] and its nested types;
// lookups go against environ rather than the process environment, so
// the layered sources stay the single point of truth.
//
// Returns a wrapped error if parsing fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any, environ map[string]string) error {
	opts := env.Options{
		Prefix:      envPrefix,
		Environment: environ,
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
