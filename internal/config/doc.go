// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from layered sources with first-defined-wins
// priority:
//  1. Caller-supplied context (command-line flags)
//  2. Process environment variables
//
// Defaults are filled into whatever the sources left unset. All variables
// share the FIREKIT_ prefix. The main entry point is [GetServerConfig].
package config
