// Package common defines shared constants and sentinel errors used across
// client and backend layers of gophaccounts. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrorValidation  = errors.New("validation error")
	ErrorInvalidBody = errors.New("invalid request body")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Storage errors.
	ErrUnknownStorage = errors.New("unknown storage backend")
)
