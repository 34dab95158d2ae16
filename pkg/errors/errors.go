// Package errors provides structured error types for mvndeps.
//
// Every failure of a resolution carries a machine-readable [Code] so callers
// can tell a missing package from a broken repository without string
// matching. All codes are fatal to the resolution that produced them.
//
// # Error Codes
//
//   - INVALID_COORDINATE: package name is not "groupId:artifactId"
//   - PACKAGE_NOT_FOUND: metadata descriptor returned 404
//   - POM_NOT_FOUND: POM returned 404
//   - HTTP_ERROR: any other non-2xx status (cause is a [*StatusError])
//   - NETWORK_ERROR: connection, DNS or timeout failure
//   - VERSION_NOT_FOUND: metadata parsed but no usable version
//   - METADATA_PARSE_ERROR: metadata is not well-formed XML
//   - POM_PARSE_ERROR: POM is not well-formed XML
//   - INVALID_CONFIG: configuration failed validation
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidCoordinate, "invalid coordinate %q", name)
//	if errors.Is(err, errors.ErrCodeInvalidCoordinate) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "failed to fetch %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidCoordinate Code = "INVALID_COORDINATE"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodePackageNotFound Code = "PACKAGE_NOT_FOUND"
	ErrCodePOMNotFound     Code = "POM_NOT_FOUND"
	ErrCodeVersionNotFound Code = "VERSION_NOT_FOUND"

	// Transport errors
	ErrCodeHTTP    Code = "HTTP_ERROR"
	ErrCodeNetwork Code = "NETWORK_ERROR"

	// Document errors
	ErrCodeMetadataParse Code = "METADATA_PARSE_ERROR"
	ErrCodePOMParse      Code = "POM_PARSE_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message followed by the cause, without the
// code prefix. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

// StatusError describes a non-2xx HTTP response other than 404.
// It is the Cause of every ErrCodeHTTP error.
type StatusError struct {
	StatusCode int    // HTTP status code (e.g., 503)
	Reason     string // Reason phrase (e.g., "Service Unavailable")
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d %s", e.StatusCode, e.Reason)
}

// Status extracts the HTTP status code from err.
// Returns 0 if err does not wrap a *StatusError.
func Status(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
