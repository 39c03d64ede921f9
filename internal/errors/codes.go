package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK              Code = "OK"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeAlreadyExists   Code = "ALREADY_EXISTS"
	CodeInternal        Code = "INTERNAL"
	CodeUnavailable     Code = "UNAVAILABLE"

	// Generation engine codes
	CodeEmptyInput         Code = "EMPTY_INPUT"
	CodeInfeasibleCount    Code = "INFEASIBLE_COUNT"
	CodeInvalidDiceSpec    Code = "INVALID_DICE_SPEC"
	CodeNoEligibleEntry    Code = "NO_ELIGIBLE_ENTRY"
	CodeMissingCorpusField Code = "MISSING_CORPUS_FIELD"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
