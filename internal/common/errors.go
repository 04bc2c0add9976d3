// Package common defines sentinel errors and small helpers shared by the
// verifier and prover sides. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Protocol errors.
	ErrorPermissionDenied = errors.New("permission denied")
	ErrorInvalidArgument  = errors.New("invalid argument")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
