package errs

import "errors"

// Sentinel errors shared by the usecase and infra layers
var (
	// Session errors
	ErrSessionTokenRequired = errors.New("session token required")
	ErrInvalidSessionToken  = errors.New("invalid session token")
	ErrExpiredSessionToken  = errors.New("session token expired")

	// Admin capability errors
	ErrShopNotInstalled = errors.New("shop not installed")

	// Idempotency errors
	ErrInvalidIdempotencyKey = errors.New("invalid idempotency key")
)
