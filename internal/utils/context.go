// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, UUID generation,
// and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SubjectIDCtxKey is the key used to store the authenticated subject
// identifier in the context. Used together with GetSubjectIDFromContext
// for type-safe retrieval of the subject ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SubjectIDCtxKey, "uid-1234")
var SubjectIDCtxKey = contextKey("subjectID")

// GetSubjectIDFromContext retrieves the subject identifier from the context.
//
// Returns the subject ID and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	subjectID, ok := utils.GetSubjectIDFromContext(ctx)
//	if !ok {
//	    // request is anonymous
//	}
func GetSubjectIDFromContext(ctx context.Context) (string, bool) {
	subjectID, ok := ctx.Value(SubjectIDCtxKey).(string)
	return subjectID, ok
}
