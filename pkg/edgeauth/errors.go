package edgeauth

import (
	"errors"
	"fmt"
)

// Error is a token construction error carrying a stable error code.
//
// Codes are grouped by the stage that raises them:
//   - EA-CONF: assignment time (setters), raised immediately
//   - EA-TOKN: fragment read time, raised when the token is assembled
//   - EA-SIGN: signing, raised while computing the HMAC
type Error struct {
	Code    string // Error code (e.g., "EA-CONF-4001")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *Error) WithDetails(details string) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsError checks if err is an *Error with the given code.
// If code is empty, it only checks if err is an *Error.
func IsError(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		if code == "" {
			return true
		}
		return e.Code == code
	}
	return false
}

// ErrorCode extracts the error code from err, or "" if err is not an *Error.
func ErrorCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// ============================================================================
// Assignment errors (CONF)
// ============================================================================

var (
	// ErrInvalidKey indicates the key is empty, odd-length or not alphanumeric.
	ErrInvalidKey = NewError("EA-CONF-4001", "key must be an even-length alphanumeric string")

	// ErrInvalidRange indicates a negative time or duration value.
	ErrInvalidRange = NewError("EA-CONF-4002", "value must be non-negative")

	// ErrUnknownAlgorithm indicates an algorithm name or value that is not supported.
	ErrUnknownAlgorithm = NewError("EA-CONF-4003", "unknown algorithm")

	// ErrInvalidDelimiter indicates a field delimiter that is not a single character.
	ErrInvalidDelimiter = NewError("EA-CONF-4004", "field delimiter must be a single character")
)

// ============================================================================
// Fragment errors (TOKN)
// ============================================================================

var (
	// ErrMissingACL indicates the acl is empty.
	ErrMissingACL = NewError("EA-TOKN-4001", "a valid value for acl is required")

	// ErrMissingExpiration indicates neither window nor end-time is set.
	ErrMissingExpiration = NewError("EA-TOKN-4002", "a valid value for either window or end-time is required")

	// ErrInvalidExpirationOrder indicates end-time is not after start-time.
	ErrInvalidExpirationOrder = NewError("EA-TOKN-4003", "end-time must be greater than start-time")
)

// ============================================================================
// Signing errors (SIGN)
// ============================================================================

var (
	// ErrInvalidHexKey indicates the key is not valid hexadecimal.
	ErrInvalidHexKey = NewError("EA-SIGN-4001", "key is not a valid hex string")

	// ErrSigningFailed indicates the HMAC could not be computed.
	ErrSigningFailed = NewError("EA-SIGN-5001", "failed to create token")
)
