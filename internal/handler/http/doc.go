// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for the
// demo page, the form endpoint, the document-database REST passthrough,
// and completion streaming. Cross-cutting concerns such as optional
// bearer authentication, request tracing, access logging, response
// compression, and CORS are handled in this package before requests
// reach the underlying clients.
package http
