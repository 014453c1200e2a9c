package core

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the simulation packages.
var (
	// ErrInvalidParameter reports a precondition violation detected at entry.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrEmptyInput reports a zero-pixel terrain image. It is not fatal.
	ErrEmptyInput = errors.New("empty input")
)

// Validation error codes.
const (
	CodeInvalidParameter  = "INVALID_PARAMETER"
	CodeDimensionMismatch = "DIMENSION_MISMATCH"
	CodeEmptyInput        = "EMPTY_INPUT"
)

// ValidationError contains details about a failed precondition.
// It unwraps to ErrEmptyInput for CodeEmptyInput and to ErrInvalidParameter otherwise.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap lets errors.Is match the sentinel for the error's code.
func (e ValidationError) Unwrap() error {
	if e.Code == CodeEmptyInput {
		return ErrEmptyInput
	}
	return ErrInvalidParameter
}

// Invalidf builds a ValidationError with CodeInvalidParameter.
func Invalidf(format string, args ...any) error {
	return ValidationError{Code: CodeInvalidParameter, Message: fmt.Sprintf(format, args...)}
}
