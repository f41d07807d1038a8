package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/ui"
)

// Error codes for categorizing errors
const (
	ErrConfig   = "CONFIG"
	ErrTerminal = "TERMINAL"
	ErrRender   = "RENDER"
	ErrInput    = "INPUT"
	ErrProvider = "PROVIDER"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Printed as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrTerminal code.
// Terminal failures are the most common fatal errors in a dashboard session.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrTerminal,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", ui.SymbolFail, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var smErr *Error
	if errors.As(err, &smErr) {
		return smErr.Code == code
	}
	return false
}

// CodeOf returns the code of the outermost structured Error in err's chain,
// or an empty string when there is none.
func CodeOf(err error) string {
	var smErr *Error
	if errors.As(err, &smErr) {
		return smErr.Code
	}
	return ""
}
