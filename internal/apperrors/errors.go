// Package apperrors defines the error taxonomy shared by the DeGiro client,
// the service layer, and the HTTP handlers. Handlers map these sentinels to
// status codes; everything else wraps them with %w so the original upstream
// message is never lost.
package apperrors

import "errors"

// Input errors are raised before any network call is made.
var (
	// ErrInvalidInput indicates a required parameter is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
)

// Authentication errors distinguish the two user-actionable auth conditions:
// credentials the broker refused versus a session the broker no longer accepts.
var (
	// ErrAuthRejected indicates DeGiro rejected the credentials or the
	// one-time password. The user must re-enter credentials.
	ErrAuthRejected = errors.New("authentication rejected")

	// ErrSessionExpired indicates a previously valid session is no longer
	// accepted (HTTP 401/403 from DeGiro). The caller must log in again.
	ErrSessionExpired = errors.New("session expired")
)

// Upstream errors cover everything else DeGiro can do to us.
var (
	// ErrUpstreamUnavailable indicates a transport-level failure or a
	// non-auth non-2xx response. Wrapping code must preserve the raw
	// upstream message for diagnostics.
	ErrUpstreamUnavailable = errors.New("brokerage unavailable")

	// ErrDividendsUnavailable indicates the dividend endpoint is in its
	// maintenance window (observed as HTTP 503 or a maintenance page).
	// The service layer resolves this into an empty result with a warning;
	// it must never reach the HTTP boundary as an error.
	ErrDividendsUnavailable = errors.New("dividend data unavailable")
)
