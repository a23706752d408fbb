package errors

import (
	stderrors "errors"
	"fmt"
)

type relocatable interface {
	relocate(loc Location)
}

// Relocate rewrites every location already set along the chain of err to loc.
// It is used to report per-file positions for errors raised against a
// position in the combined descriptor list. err is returned for chaining.
func Relocate(err error, loc Location) error {
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if r, ok := e.(relocatable); ok {
			r.relocate(loc)
		}
	}
	return err
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s file '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s template '%s'", operation, templateName)
	return Wrap(TemplateErrorCode, message, cause).
		WithContext("template", templateName)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(source, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, source)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("source", source).
		WithContext("operation", operation)
}

// FileSystemError creates a file system error
func FileSystemError(operation, path, message string) *BaseError {
	fullMessage := fmt.Sprintf("failed to %s file '%s': %s", operation, path, message)
	return New(FileSystemErrorCode, fullMessage).
		WithContext("operation", operation).
		WithContext("path", path)
}

// AddToMultiple adds an error to a MultipleErrors, creating it if nil
func AddToMultiple(multiple **MultipleErrors, err StratumError) {
	if *multiple == nil {
		*multiple = NewMultipleErrors()
	}
	(*multiple).Add(err)
}
