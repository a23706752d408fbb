package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// StratumError defines the base interface for all pipeline errors
type StratumError interface {
	error
	ErrorCode() ErrorCode
	Location() Location
	Context() map[string]interface{}
	Suggestions() []string
	Unwrap() error
}

// ErrorCode represents the type of error that occurred
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota

	// Per-class pipeline errors
	MalformedDescriptorCode
	MalformedDecoratorCode
	NamingConventionCode
	UnclassifiedRoleCode

	// Generation errors
	GenerationErrorCode
	TemplateErrorCode

	// Outer surface errors
	FileSystemErrorCode
	ConfigurationErrorCode
	CollisionErrorCode
)

// String returns the string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case MalformedDescriptorCode:
		return "MalformedDescriptorError"
	case MalformedDecoratorCode:
		return "MalformedDecoratorError"
	case NamingConventionCode:
		return "NamingConventionError"
	case UnclassifiedRoleCode:
		return "UnclassifiedRoleWarning"
	case GenerationErrorCode:
		return "GenerationError"
	case TemplateErrorCode:
		return "TemplateError"
	case FileSystemErrorCode:
		return "FileSystemError"
	case ConfigurationErrorCode:
		return "ConfigurationError"
	case CollisionErrorCode:
		return "CollisionError"
	default:
		return "UnknownError"
	}
}

// NoIndex marks a location that does not refer to a descriptor position
const NoIndex = -1

// Location identifies the descriptor an error belongs to
type Location struct {
	Input string // input file the descriptor came from, if any
	Index int    // zero-based descriptor index, NoIndex when unknown
	Class string // class name, when it could be read
}

// NewLocation creates a location for a descriptor index and class name
func NewLocation(index int, class string) Location {
	return Location{Index: index, Class: class}
}

// String returns a formatted string representation of the location
func (l Location) String() string {
	var b strings.Builder
	b.WriteString(l.Input)
	if l.Index >= 0 {
		fmt.Fprintf(&b, "[%d]", l.Index)
	}
	if l.Class != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(l.Class)
	}
	if b.Len() == 0 {
		return "unknown location"
	}
	return b.String()
}

// IsEmpty returns true if the location has no useful information
func (l Location) IsEmpty() bool {
	return l.Input == "" && l.Class == "" && l.Index < 0
}

// BaseError provides a common implementation of the StratumError interface
type BaseError struct {
	Code        ErrorCode              // type of error
	Message     string                 // error message
	Loc         Location               // descriptor the error belongs to
	Cause       error                  // underlying error cause
	ContextData map[string]interface{} // additional context information
	Hints       []string               // helpful suggestions for fixing the error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Loc.IsEmpty() {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Loc.String(), msg)
}

// ErrorCode returns the error code
func (e *BaseError) ErrorCode() ErrorCode {
	return e.Code
}

// Location returns the descriptor location of the error
func (e *BaseError) Location() Location {
	return e.Loc
}

// Context returns the error context data
func (e *BaseError) Context() map[string]interface{} {
	if e.ContextData == nil {
		return make(map[string]interface{})
	}
	return e.ContextData
}

// Suggestions returns helpful suggestions for fixing the error
func (e *BaseError) Suggestions() []string {
	return e.Hints
}

// Unwrap returns the underlying error cause for error chain inspection
func (e *BaseError) Unwrap() error {
	return e.Cause
}

// WithLocation adds location information to the error
func (e *BaseError) WithLocation(loc Location) *BaseError {
	e.Loc = loc
	return e
}

// relocate replaces a location that was already set, keeping the class
// name when loc has none
func (e *BaseError) relocate(loc Location) {
	if e.Loc.IsEmpty() {
		return
	}
	if loc.Class == "" {
		loc.Class = e.Loc.Class
	}
	e.Loc = loc
}

// WithCause adds an underlying error cause
func (e *BaseError) WithCause(cause error) *BaseError {
	e.Cause = cause
	return e
}

// WithContext adds context data to the error
func (e *BaseError) WithContext(key string, value interface{}) *BaseError {
	if e.ContextData == nil {
		e.ContextData = make(map[string]interface{})
	}
	e.ContextData[key] = value
	return e
}

// WithSuggestion adds a helpful suggestion for fixing the error
func (e *BaseError) WithSuggestion(suggestion string) *BaseError {
	e.Hints = append(e.Hints, suggestion)
	return e
}

// WithSuggestions adds multiple helpful suggestions
func (e *BaseError) WithSuggestions(suggestions ...string) *BaseError {
	e.Hints = append(e.Hints, suggestions...)
	return e
}

// New creates a new BaseError with the specified code and message
func New(code ErrorCode, message string) *BaseError {
	return &BaseError{
		Code:    code,
		Message: message,
		Loc:     Location{Index: NoIndex},
		Hints:   make([]string, 0),
	}
}

// Newf creates a new BaseError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BaseError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates a new error that wraps another error
func Wrap(code ErrorCode, message string, cause error) *BaseError {
	err := New(code, message)
	err.Cause = cause
	return err
}

// Wrapf creates a new error that wraps another error with formatted message
func Wrapf(code ErrorCode, cause error, format string, args ...interface{}) *BaseError {
	return Wrap(code, fmt.Sprintf(format, args...), cause)
}

// Standard library inspection helpers, so callers need a single errors import
var (
	Is = stderrors.Is
	As = stderrors.As
)

// CodeOf returns the error code carried by err, or UnknownErrorCode
func CodeOf(err error) ErrorCode {
	var se StratumError
	if As(err, &se) {
		return se.ErrorCode()
	}
	return UnknownErrorCode
}

// MultipleErrors represents multiple errors collected together
type MultipleErrors struct {
	Errors []StratumError
}

// Error implements the error interface
func (e *MultipleErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var messages []string
	for i, err := range e.Errors {
		messages = append(messages, fmt.Sprintf("  %d. %s", i+1, err.Error()))
	}

	return fmt.Sprintf("multiple errors (%d total):\n%s", len(e.Errors), strings.Join(messages, "\n"))
}

// Unwrap returns all collected errors for errors.Is and errors.As
func (e *MultipleErrors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

// Add adds an error to the collection
func (e *MultipleErrors) Add(err StratumError) {
	e.Errors = append(e.Errors, err)
}

// IsEmpty returns true if there are no errors
func (e *MultipleErrors) IsEmpty() bool {
	return len(e.Errors) == 0
}

// Count returns the number of errors
func (e *MultipleErrors) Count() int {
	return len(e.Errors)
}

// HasCode returns true if any error of the specified type exists
func (e *MultipleErrors) HasCode(code ErrorCode) bool {
	for _, err := range e.Errors {
		if err.ErrorCode() == code {
			return true
		}
	}
	return false
}

// ErrOrNil returns nil for an empty collection
func (e *MultipleErrors) ErrOrNil() error {
	if e == nil || e.IsEmpty() {
		return nil
	}
	return e
}

// NewMultipleErrors creates a new MultipleErrors collection
func NewMultipleErrors() *MultipleErrors {
	return &MultipleErrors{
		Errors: make([]StratumError, 0),
	}
}
