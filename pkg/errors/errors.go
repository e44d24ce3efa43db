package errors

import (
	"fmt"
)

// ParseError represents a config file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidLayoutConfigError reports an indicator layout whose counts or scale
// violate the parity and ordering rules. It is returned at construction time
// so no geometry is ever computed from a bad layout.
type InvalidLayoutConfigError struct {
	Field   string
	Message string
	Err     error
}

// NewInvalidLayoutConfigError constructs an InvalidLayoutConfigError.
func NewInvalidLayoutConfigError(field, message string, err error) error {
	return &InvalidLayoutConfigError{Field: field, Message: message, Err: err}
}

func (e *InvalidLayoutConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid layout config: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid layout config: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *InvalidLayoutConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EmptyDataError indicates a component was given an empty data set where at
// least one element is required.
type EmptyDataError struct {
	Component string
}

// NewEmptyDataError constructs an EmptyDataError for the named component.
func NewEmptyDataError(component string) error {
	return &EmptyDataError{Component: component}
}

func (e *EmptyDataError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("empty data [%s]: at least one element is required", e.Component)
	}
	return "empty data: at least one element is required"
}

// IndexOutOfRangeError reports an index outside [0, Length).
type IndexOutOfRangeError struct {
	What   string
	Index  int
	Length int
}

// NewIndexOutOfRangeError constructs an IndexOutOfRangeError.
func NewIndexOutOfRangeError(what string, index, length int) error {
	return &IndexOutOfRangeError{What: what, Index: index, Length: length}
}

func (e *IndexOutOfRangeError) Error() string {
	if e == nil {
		return ""
	}
	what := e.What
	if what == "" {
		what = "index"
	}
	return fmt.Sprintf("%s %d out of range [0, %d)", what, e.Index, e.Length)
}
