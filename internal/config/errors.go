package config

import "errors"

// Configuration errors surfaced by [GetServerConfig] and the blob
// accessors. Callers match them with errors.Is.
var (
	// ErrMissingConfig indicates a required configuration surface is
	// absent from every source (for example, no web config blob at all).
	ErrMissingConfig = errors.New("configuration missing")

	// ErrMalformedConfig indicates a configuration blob was present but
	// could not be decoded (for example, invalid JSON in WEB_CONFIG).
	ErrMalformedConfig = errors.New("configuration malformed")

	// ErrIncompleteConfig indicates the merged configuration decoded
	// fine but lacks required sub-fields (for example, no project ID
	// resolvable from any surface).
	ErrIncompleteConfig = errors.New("configuration incomplete")
)
