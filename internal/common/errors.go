// Package common defines shared constants and sentinel errors used across
// the trainer's layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrDuplicateUser = errors.New("username already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrPersistence    = errors.New("persistence failure")

	// Interview flow errors.
	ErrEmptyAnswer       = errors.New("answer is empty")
	ErrAlreadyInProgress = errors.New("interview already in progress")
	ErrNotInProgress     = errors.New("no interview in progress")
	ErrSessionClosed     = errors.New("interview session already has all answers")

	// Validation errors.
	ErrInvalidExperienceLevel = errors.New("invalid experience level")
	ErrInvalidUsername        = errors.New("invalid username")
	ErrInvalidPassword        = errors.New("invalid password")

	// Configuration errors.
	ErrInsecureSecret = errors.New("insecure default secret key")

	// Export errors.
	ErrExportDisabled = errors.New("transcript export is not configured")
)
