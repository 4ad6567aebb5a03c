package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory classifies the errors that can occur while verifying a
// checksum. It decides whether the workflow recovers or the process exits.
type ErrorCategory int

const (
	// ErrorIO indicates the input file could not be opened or fully read,
	// such as a missing file, a permission problem, a directory path or
	// corrupt compressed input.
	ErrorIO ErrorCategory = iota + 1

	// ErrorSelection indicates the operator chose an algorithm outside the menu.
	ErrorSelection

	// ErrorConfig indicates the configuration file could not be loaded or is invalid.
	ErrorConfig
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorIO:
		return "io"
	case ErrorSelection:
		return "selection"
	case ErrorConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ChecksumError records which operation failed on which path.
type ChecksumError struct {
	Err       error
	Path      string
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// NewIOError wraps err as an ErrorIO failure of operation on path.
func NewIOError(operation, path string, err error) *ChecksumError {
	return &ChecksumError{
		Err:       err,
		Path:      path,
		Operation: operation,
		Category:  ErrorIO,
		Timestamp: time.Now(),
	}
}

// NewSelectionError wraps err as a rejected algorithm selection.
func NewSelectionError(err error) *ChecksumError {
	return &ChecksumError{
		Err:       err,
		Operation: "select",
		Category:  ErrorSelection,
		Timestamp: time.Now(),
	}
}

// NewConfigError wraps err as an ErrorConfig failure of operation on path.
func NewConfigError(operation, path string, err error) *ChecksumError {
	return &ChecksumError{
		Err:       err,
		Path:      path,
		Operation: operation,
		Category:  ErrorConfig,
		Timestamp: time.Now(),
	}
}

func (e *ChecksumError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
	}
	return fmt.Sprintf("[%v] %s %s: %v", e.Category, e.Operation, e.Path, e.Err)
}

func (e *ChecksumError) Unwrap() error {
	return e.Err
}

// IsRecoverable reports whether the workflow can continue after the error.
func (e *ChecksumError) IsRecoverable() bool {
	switch e.Category {
	case ErrorSelection:
		// The operator is told and the run ends normally.
		return true
	case ErrorIO, ErrorConfig:
		return false
	default:
		return false
	}
}

// AsChecksumError attempts to extract a ChecksumError from a given error.
func AsChecksumError(err error) *ChecksumError {
	var ce *ChecksumError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}

// IsIOError checks if err is, or wraps, an ErrorIO ChecksumError.
func IsIOError(err error) bool {
	var ce *ChecksumError
	return errors.As(err, &ce) && ce.Category == ErrorIO
}
