package domain

import "errors"

// Sentinel errors for API error classification. The api client wraps
// these so command and TUI layers can handle error categories uniformly
// without inspecting HTTP status codes.
//
//	return fmt.Errorf("failed to delete user: %w", domain.ErrNotFound)
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the server throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrConflict indicates a state or uniqueness conflict, such as
	// approving a user that is no longer pending.
	ErrConflict = errors.New("conflict")

	// ErrTimeout indicates the request was cancelled or its deadline
	// expired before the server responded.
	ErrTimeout = errors.New("request timed out")
)
