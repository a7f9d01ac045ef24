// Package server wires and runs the application's HTTP server.
//
// It provides lifecycle orchestration: startup, signal handling, and
// graceful shutdown with a bounded drain period.
package server
