// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Able Wong

package config

import (
	"os"
	"strings"
)

// Source is one layer of configuration values. Lookup reports a value
// only when the source actually defines it; empty values count as
// undefined so that a blank entry in one layer cannot shadow a real
// value in a lower one.
type Source interface {
	// Name labels the source in provenance lookups ("flags",
	// "process-env").
	Name() string

	// Lookup returns the value for a fully prefixed variable name.
	Lookup(key string) (string, bool)

	// Keys lists every variable name the source defines.
	Keys() []string
}

// MapSource wraps caller-supplied values (parsed flags, test fixtures)
// as a Source. Keys must carry the full FIREKIT_ prefix.
func MapSource(name string, values map[string]string) Source {
	return mapSource{name: name, values: values}
}

type mapSource struct {
	name   string
	values map[string]string
}

func (s mapSource) Name() string { return s.name }

func (s mapSource) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (s mapSource) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}

// EnvSource exposes the process environment as a Source, restricted to
// variables carrying the given prefix.
func EnvSource(prefix string) Source {
	return envSource{prefix: prefix}
}

type envSource struct {
	prefix string
}

func (envSource) Name() string { return "process-env" }

func (s envSource) Lookup(key string) (string, bool) {
	if !strings.HasPrefix(key, s.prefix) {
		return "", false
	}
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (s envSource) Keys() []string {
	var keys []string
	for _, kv := range os.Environ() {
		name, _, found := strings.Cut(kv, "=")
		if found && strings.HasPrefix(name, s.prefix) {
			keys = append(keys, name)
		}
	}
	return keys
}

// Resolver answers configuration lookups across an ordered list of
// sources; the first source that defines a key wins.
type Resolver struct {
	sources []Source
}

// NewResolver builds a Resolver over sources in priority order.
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// Lookup returns the highest-priority value defined for key.
func (r *Resolver) Lookup(key string) (string, bool) {
	for _, src := range r.sources {
		if v, ok := src.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// Origin names the source that supplies the value for key. It exists
// for startup logging.
func (r *Resolver) Origin(key string) (string, bool) {
	for _, src := range r.sources {
		if _, ok := src.Lookup(key); ok {
			return src.Name(), true
		}
	}
	return "", false
}

// Snapshot materializes the merged first-defined-wins view of every
// key any source defines. The result feeds env parsing as a synthetic
// environment.
func (r *Resolver) Snapshot() map[string]string {
	merged := make(map[string]string)
	for _, src := range r.sources {
		for _, key := range src.Keys() {
			if _, taken := merged[key]; taken {
				continue
			}
			if v, ok := src.Lookup(key); ok {
				merged[key] = v
			}
		}
	}
	return merged
}
