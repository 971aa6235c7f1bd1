// Package errors provides structured error types for pyrapath.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP API
//   - Machine-readable error codes for exit codes and status mapping
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_* and MALFORMED_*: Input validation failures
//   - NON_INTEGER_*: Cells or values that are not integers
//   - FILE_*: Input and sample file handling
//   - INTERNAL_*: Unexpected internal errors
//
// A pyramid with no matching path is not an error and has no code.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedPyramid, "row %d has %d cells, want %d", i, got, want)
//	if errors.Is(err, errors.ErrCodeMalformedPyramid) {
//	    // Handle shape error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open %s", path)
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
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidTarget     Code = "INVALID_TARGET"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidPath       Code = "INVALID_PATH"
	ErrCodeMalformedPyramid  Code = "MALFORMED_PYRAMID"
	ErrCodeNonIntegerValue   Code = "NON_INTEGER_VALUE"
	ErrCodeMissingTargetWord Code = "MISSING_TARGET_KEYWORD"

	// File errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeFileExists   Code = "FILE_EXISTS"
	ErrCodeFileWrite    Code = "FILE_WRITE"

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

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// RowLengthError describes a pyramid row whose cell count does not match
// its position. It is attached as the cause of MALFORMED_PYRAMID errors.
type RowLengthError struct {
	Row  int // 0-based row index, 0 is the apex
	Want int // Expected cell count (Row+1)
	Got  int // Actual cell count
}

// Error implements the error interface.
func (e *RowLengthError) Error() string {
	if e.Got > e.Want {
		return fmt.Sprintf("row %d has %d cells, want %d (too long)", e.Row, e.Got, e.Want)
	}
	return fmt.Sprintf("row %d has %d cells, want %d (too short)", e.Row, e.Got, e.Want)
}

// Short reports whether the row has fewer cells than its position requires.
func (e *RowLengthError) Short() bool { return e.Got < e.Want }

// Code returns the error code for this error type.
func (e *RowLengthError) Code() Code {
	return ErrCodeMalformedPyramid
}
