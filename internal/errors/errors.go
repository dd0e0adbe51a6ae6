// Package errors defines the stable error code system for devrando.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract: scripts may match on these.
const (
	EUsage    Code = "E_USAGE"
	EInternal Code = "E_INTERNAL"
	EConfig   Code = "E_CONFIG"

	// Scaffolding error codes
	EFetchFailed         Code = "E_FETCH_FAILED"
	EProjectExists       Code = "E_PROJECT_EXISTS"
	EProjectCreateFailed Code = "E_PROJECT_CREATE_FAILED"
	EWriteFailed         Code = "E_WRITE_FAILED"
	EVCSFailed           Code = "E_VCS_FAILED"
	EInstallFailed       Code = "E_INSTALL_FAILED"
	EInstallInterrupted  Code = "E_INSTALL_INTERRUPTED"
	EPromptAborted       Code = "E_PROMPT_ABORTED"
)

// RandoError is the standard error type for devrando errors.
type RandoError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *RandoError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *RandoError) Unwrap() error {
	return e.Cause
}

// New creates a new RandoError with the given code and message.
func New(code Code, msg string) error {
	return &RandoError{Code: code, Msg: msg}
}

// Wrap creates a new RandoError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &RandoError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new RandoError wrapping an underlying error with details.
// Details map is defensively copied (nil if empty).
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &RandoError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from an error, or empty string if not a RandoError.
func GetCode(err error) Code {
	var re *RandoError
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}

// AsRandoError returns (*RandoError, true) if err is or wraps a RandoError.
func AsRandoError(err error) (*RandoError, bool) {
	var re *RandoError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the appropriate process exit code for an error.
// Returns 0 if err is nil, 0 for E_PROJECT_EXISTS (the benign cancellation:
// the target directory pre-exists and nothing was created), 2 for E_USAGE,
// and 1 for all other errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetCode(err) {
	case EProjectExists:
		return 0
	case EUsage:
		return 2
	default:
		return 1
	}
}

// Print writes the error to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var re *RandoError
	if errors.As(err, &re) {
		fmt.Fprintf(w, "error_code: %s\n", re.Code)
		fmt.Fprintln(w, re.Msg)
	} else {
		fmt.Fprintln(w, err.Error())
	}
}
