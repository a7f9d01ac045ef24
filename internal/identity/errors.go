package identity

import "errors"

var (
	// ErrNotValidated marks a subject-ID read before any successful
	// validation.
	ErrNotValidated = errors.New("credential not validated")

	// ErrInvalidCredential is the provider rejecting a token, or a
	// lookup returning no subject for it.
	ErrInvalidCredential = errors.New("invalid credential")
)
