// Package common defines shared constants and sentinel errors used across
// the UELMS subsystems. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound  = errors.New("not found")
	ErrorDuplicate = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("invalid credentials")

	// Input validation errors.
	ErrorValidation = errors.New("validation error")

	// Persistence infrastructure errors.
	ErrorConnection = errors.New("database connection unavailable")
	ErrorSchema     = errors.New("schema migration failed")
)
