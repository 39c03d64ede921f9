package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsEmptyInput checks if an error is an empty input error
func IsEmptyInput(err error) bool {
	return GetCode(err) == CodeEmptyInput
}

// IsInfeasibleCount checks if an error is an infeasible count error
func IsInfeasibleCount(err error) bool {
	return GetCode(err) == CodeInfeasibleCount
}

// IsInvalidDiceSpec checks if an error is an invalid dice spec error
func IsInvalidDiceSpec(err error) bool {
	return GetCode(err) == CodeInvalidDiceSpec
}

// IsNoEligibleEntry checks if an error is a no eligible entry error
func IsNoEligibleEntry(err error) bool {
	return GetCode(err) == CodeNoEligibleEntry
}

// IsMissingCorpusField checks if an error is a missing corpus field error
func IsMissingCorpusField(err error) bool {
	return GetCode(err) == CodeMissingCorpusField
}
