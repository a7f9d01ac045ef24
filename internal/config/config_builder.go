package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	sources  []Source
	defaults *StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		sources: make([]Source, 0, 2),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	resolver := NewResolver(b.sources...)

	config := new(StructuredConfig)
	if err := parseEnv(config, resolver.Snapshot()); err != nil {
		return nil, err
	}

	if b.defaults != nil {
		if err := mergo.Merge(config, b.defaults); err != nil {
			return nil, fmt.Errorf("error merging default configs: %w", err)
		}
	}

	if err := config.parseBlobs(); err != nil {
		return nil, err
	}
	config.resolveProjectID()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// withContext layers caller-supplied values on top of whatever sources
// were added before it. Test fixtures use it directly.
func (b *configBuilder) withContext(name string, values map[string]string) *configBuilder {
	if len(values) == 0 {
		b.err = errors.Join(b.err, fmt.Errorf("context source %q has no values", name))
		return b
	}

	b.sources = append(b.sources, MapSource(name, values))
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.sources = append(b.sources, MapSource("flags", ParseFlags()))
	return b
}

func (b *configBuilder) withProcessEnv() *configBuilder {
	b.sources = append(b.sources, EnvSource(envPrefix))
	return b
}

// withDefaults registers the built-in fallback values. They are merged
// after source parsing, filling only fields every source left zero.
func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = &StructuredConfig{
		Server: Server{
			Address:        ":8080",
			RequestTimeout: 30 * time.Second,
			AllowedOrigins: []string{"*"},
		},
		Store: Store{
			BaseURL:        "https://firestore.googleapis.com/v1",
			RequestTimeout: 15 * time.Second,
			RetryWait:      500 * time.Millisecond,
		},
		Identity: Identity{
			BaseURL:        "https://identitytoolkit.googleapis.com/v1",
			RequestTimeout: 10 * time.Second,
		},
		AI: AI{
			Model: "gpt-4o-mini",
		},
		App: App{
			Version: "N/A",
		},
	}
	return b
}
