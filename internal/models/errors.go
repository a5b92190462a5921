package models

import "errors"

// Error constants for application operations
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrPersistence         = errors.New("failed to persist application")
	ErrEmptyUpdate         = errors.New("update contains no fields")
	ErrForbiddenPaymentKey = errors.New("payload contains raw card or bank data")
	ErrInvalidDateRange    = errors.New("invalid date range")
)

// Error constants for wizard sessions
var (
	ErrSessionNotFound    = errors.New("wizard session not found")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
)

// ErrCacheMiss is returned by key-value stores for an absent key.
var ErrCacheMiss = errors.New("cache miss")

// Error constants for postal-code lookup
var (
	ErrInvalidCEP  = errors.New("invalid CEP")
	ErrCEPNotFound = errors.New("CEP not found")
)

// ErrRateLimited is returned when a caller or upstream budget is exhausted.
var ErrRateLimited = errors.New("rate limit exceeded")
