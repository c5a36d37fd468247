// Package errors defines the coded errors returned by quickgraph.
//
// Every failure a caller may want to branch on carries a [Code]. Codes
// survive wrapping with fmt.Errorf, and [Is] finds them anywhere in the
// chain:
//
//	url, err := g.Submit(ctx)
//	switch {
//	case errors.Is(err, errors.ErrCodeTimeout):
//	    // the service did not answer in time
//	case errors.Is(err, errors.ErrCodeMissingID):
//	    // the service answered without an id
//	}
//
// Validation helpers for hosts and node names live in validation.go.
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
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidHost   Code = "INVALID_HOST"

	// Local resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Network errors
	ErrCodeNetwork Code = "NETWORK_ERROR"
	ErrCodeTimeout Code = "TIMEOUT"

	// Viewer service response errors
	ErrCodeInvalidResponse Code = "INVALID_RESPONSE"
	ErrCodeMissingID       Code = "MISSING_ID"

	// Lifecycle errors
	ErrCodeAlreadySubmitted Code = "ALREADY_SUBMITTED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error carries a Code alongside a message and an optional cause.
// It prints as "CODE: message" or "CODE: message: cause".
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

// Unwrap exposes the cause to errors.Is and errors.As, so a cancelled
// request still matches context.Canceled.
func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a printf-style message and no cause.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap returns an Error with a printf-style message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// find returns the outermost *Error in err's chain, or nil.
func find(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	e := find(err)
	return e != nil && e.Code == code
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	if e := find(err); e != nil {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the outermost *Error without its code,
// or err.Error() for uncoded errors.
func UserMessage(err error) string {
	if e := find(err); e != nil {
		return e.Message
	}
	return err.Error()
}
