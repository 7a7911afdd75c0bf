// Package errors provides structured error types for the figgrid library.
//
// This package defines error codes and types that enable:
//   - A clear split between syntax errors (fatal, no tree) and validation
//     errors (escalated only in strict mode)
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - SYNTAX_*: the input cannot be turned into a well-formed tree at all
//   - VALIDATION_*: the tree is complete but violates a geometric invariant
//   - PLAIN_*: the plain serialized form cannot be decoded
//   - CONFIG_*: a configuration profile is unreadable or inconsistent
//
// # Usage
//
//	err := errors.New(errors.ErrCodeSyntaxNotRectangular, "panel %q is not rectangular", label)
//	if errors.Is(err, errors.ErrCodeSyntaxNotRectangular) {
//	    // Handle syntax error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeSyntaxInvalidInset, origErr, "bad inset bound %q", tok)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Syntax errors: the layout code cannot be parsed into a tree.
	ErrCodeSyntaxEmpty          Code = "SYNTAX_EMPTY_LAYOUT"
	ErrCodeSyntaxUnterminated   Code = "SYNTAX_UNTERMINATED_BRACKET"
	ErrCodeSyntaxNotRectangular Code = "SYNTAX_NOT_RECTANGULAR"
	ErrCodeSyntaxInvalidSubGrid Code = "SYNTAX_INVALID_SUB_PANEL"
	ErrCodeSyntaxInvalidInset   Code = "SYNTAX_INVALID_INSET"

	// Validation errors: the tree is structurally complete but invalid.
	ErrCodeValidationFailed Code = "VALIDATION_FAILED"
	ErrCodeUnknownOwner     Code = "VALIDATION_UNKNOWN_OWNER"

	// Explicit construction errors.
	ErrCodeInvalidSpec Code = "INVALID_PANEL_SPEC"

	// Serialization errors.
	ErrCodeInvalidPlain Code = "PLAIN_INVALID_DOCUMENT"

	// Configuration errors.
	ErrCodeInvalidConfig Code = "CONFIG_INVALID"
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

// IsSyntax reports whether err carries a SYNTAX_* code. Syntax errors are
// always fatal: the parser aborts and returns no tree.
func IsSyntax(err error) bool {
	return strings.HasPrefix(string(GetCode(err)), "SYNTAX_")
}

// IsValidation reports whether err carries a VALIDATION_* code. Validation
// errors are raised only when the caller opts into strict mode.
func IsValidation(err error) bool {
	return strings.HasPrefix(string(GetCode(err)), "VALIDATION_")
}
