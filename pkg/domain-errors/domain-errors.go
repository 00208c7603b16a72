package domainerrors

import "errors"

// Code represents a domain error category independent of any transport layer.
// These codes describe what went wrong in identity-network terms, not in terms
// of the underlying client library.
type Code string

const (
	CodeInvalidInput Code = "invalid_input"
	CodeInternal     Code = "internal_error"

	// Session lifecycle
	CodeAccountResolution Code = "account_resolution_failed" // context could not yield an account DID
	CodeNoActiveSession   Code = "no_active_session"         // operation requires a connected session

	// Resolution pipeline
	CodeProfileLookup          Code = "profile_lookup_failed"
	CodeSchemaResolution       Code = "schema_resolution_failed"
	CodeMalformedURI           Code = "malformed_uri"
	CodeCredentialVerification Code = "credential_verification_failed"
	CodeDIDResolution          Code = "did_resolution_failed"

	// Messaging
	CodeMessageDelivery Code = "message_delivery_failed"
)

// Error wraps domain or collaborator failures with a stable code.
// It is transport-agnostic and can be used across the facade, resolver,
// and adapter layers. Failures are never retried here; the originating
// cause stays attached so callers can decide on their own policy.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap creates a new domain error wrapping an existing error.
// If the wrapped error is already a domain error, the original code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		// Preserve the original domain code, update message
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
