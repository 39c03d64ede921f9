package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code, message, and metadata
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the target error is of the same type
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error, preserving its code if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Message: message,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Constructor functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf creates an already exists error with formatted message
func AlreadyExistsf(format string, args ...interface{}) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates an internal error with formatted message
func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}

// Unavailable creates an unavailable error
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}

// EmptyInput creates an empty input error for draws from empty pools
func EmptyInput(message string) *Error {
	return New(CodeEmptyInput, message)
}

// EmptyInputf creates an empty input error with formatted message
func EmptyInputf(format string, args ...interface{}) *Error {
	return Newf(CodeEmptyInput, format, args...)
}

// InfeasibleCount creates an error for multi-picks that request more distinct
// values than the pool holds
func InfeasibleCount(message string) *Error {
	return New(CodeInfeasibleCount, message)
}

// InfeasibleCountf creates an infeasible count error with formatted message
func InfeasibleCountf(format string, args ...interface{}) *Error {
	return Newf(CodeInfeasibleCount, format, args...)
}

// InvalidDiceSpec creates an error for malformed dice notation
func InvalidDiceSpec(message string) *Error {
	return New(CodeInvalidDiceSpec, message)
}

// InvalidDiceSpecf creates an invalid dice spec error with formatted message
func InvalidDiceSpecf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidDiceSpec, format, args...)
}

// NoEligibleEntry creates an error for random selections with zero
// book-eligible candidates
func NoEligibleEntry(message string) *Error {
	return New(CodeNoEligibleEntry, message)
}

// NoEligibleEntryf creates a no eligible entry error with formatted message
func NoEligibleEntryf(format string, args ...interface{}) *Error {
	return Newf(CodeNoEligibleEntry, format, args...)
}

// MissingCorpusField creates an error for a required corpus sub-field that a
// transform expected but did not find
func MissingCorpusField(message string) *Error {
	return New(CodeMissingCorpusField, message)
}

// MissingCorpusFieldf creates a missing corpus field error with formatted message
func MissingCorpusFieldf(format string, args ...interface{}) *Error {
	return Newf(CodeMissingCorpusField, format, args...)
}
