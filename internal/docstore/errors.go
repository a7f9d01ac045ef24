package docstore

import "errors"

var (
	// ErrInvalidName rejects a collection name before any network call.
	ErrInvalidName = errors.New("invalid resource name")

	// ErrInvalidPath rejects a document path before any network call.
	ErrInvalidPath = errors.New("invalid resource path")

	// ErrInvalidQuery rejects a malformed query descriptor, including
	// one supplying more than one filter form at once.
	ErrInvalidQuery = errors.New("invalid query descriptor")

	// ErrUnauthorized is the store refusing the request's credential.
	ErrUnauthorized = errors.New("store request unauthorized")

	// ErrNotFound is the store reporting no such resource.
	ErrNotFound = errors.New("resource not found")

	// ErrRemoteOperation covers every other non-2xx store response.
	ErrRemoteOperation = errors.New("remote operation failed")
)
