// Package errors provides structured error types for the safarimarks application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the bookmark core and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes map one-to-one onto the failure modes of the bookmark tree:
// lookup failures (TARGET_NOT_FOUND), structural violations (NOT_A_FOLDER,
// NOT_A_CHILD, INVALID_ITEM, INVALID_DESTINATION), field-level violations
// (MISSING_REQUIRED_FIELD, UNSUPPORTED_FIELD_UPDATE), decode failures
// (UNKNOWN_NODE_KIND), and session failures (NOT_OPENED).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeTargetNotFound, "target %q not found", path)
//	if errors.Is(err, errors.ErrCodeTargetNotFound) {
//	    // Handle missing target
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeUnknownNodeKind, origErr, "decode child %d", i)
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
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeMissingField     Code = "MISSING_REQUIRED_FIELD"
	ErrCodeUnsupportedField Code = "UNSUPPORTED_FIELD_UPDATE"

	// Lookup errors
	ErrCodeTargetNotFound Code = "TARGET_NOT_FOUND"

	// Tree structure errors
	ErrCodeInvalidDestination Code = "INVALID_DESTINATION"
	ErrCodeNotAFolder         Code = "NOT_A_FOLDER"
	ErrCodeNotAList           Code = "NOT_A_LIST"
	ErrCodeNotAChild          Code = "NOT_A_CHILD"
	ErrCodeInvalidItem        Code = "INVALID_ITEM"

	// Decode errors
	ErrCodeUnknownNodeKind Code = "UNKNOWN_NODE_KIND"

	// Session errors
	ErrCodeNotOpened Code = "NOT_OPENED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
