package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Authentication errors
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrSessionExpired       = errors.New("session expired")

	// Payment errors
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrInvalidStateTransition = errors.New("invalid payment state transition")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Upstream errors
	ErrTransientUpstream = errors.New("upstream service unavailable")
)
