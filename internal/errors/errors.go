package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
// The code of an inner AppError is preserved.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the code of the outermost AppError in the chain, or "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HasCode reports whether any AppError in the chain carries code.
func HasCode(err error, code string) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.Code == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// Predefined error codes
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeInternalError = "INTERNAL_ERROR"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeIO            = "IO_ERROR"
	CodeParse         = "PARSE_ERROR"
	CodeEmptyTable    = "EMPTY_TABLE"
	CodeNumericParse  = "NUMERIC_PARSE_ERROR"
)

// Process exit codes, one per failure kind.
const (
	ExitOK           = 0
	ExitGeneric      = 1
	ExitIO           = 2
	ExitParse        = 3
	ExitEmptyTable   = 4
	ExitNumericParse = 5
	ExitInvalidInput = 6
)

// ExitCode maps an error to the process exit code for its kind.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch GetCode(err) {
	case CodeIO:
		return ExitIO
	case CodeParse:
		return ExitParse
	case CodeEmptyTable:
		return ExitEmptyTable
	case CodeNumericParse:
		return ExitNumericParse
	case CodeInvalidInput, CodeConfigInvalid:
		return ExitInvalidInput
	default:
		return ExitGeneric
	}
}

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

// IOError reports a file that could not be opened, read or written.
func IOError(path string, cause error) *AppError {
	return &AppError{
		Code:    CodeIO,
		Message: fmt.Sprintf("cannot access %s", path),
		Cause:   cause,
	}
}

// ParseError reports a data line whose field count differs from the header.
func ParseError(line, want, got int) *AppError {
	return New(CodeParse, fmt.Sprintf("line %d: expected %d fields, got %d", line, want, got))
}

// EmptyTable reports a table without any columns.
func EmptyTable() *AppError {
	return New(CodeEmptyTable, "table has no columns")
}

// NumericParse reports a value that is not a number in a numeric column.
func NumericParse(column string, row int, value string, cause error) *AppError {
	return &AppError{
		Code:    CodeNumericParse,
		Message: fmt.Sprintf("column %q row %d: %q is not numeric", column, row, value),
		Cause:   cause,
	}
}
