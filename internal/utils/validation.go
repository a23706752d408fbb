package utils

import (
	"fmt"
	"regexp"

	"github.com/toyz/stratum/internal/models"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Validator represents a validation function
type Validator[T any] func(T) error

// ValidatorChain allows chaining multiple validators
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

// NewValidatorChain creates a new validator chain
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// Add adds a validator to the chain
func (vc *ValidatorChain[T]) Add(validator Validator[T]) *ValidatorChain[T] {
	vc.validators = append(vc.validators, validator)
	return vc
}

// Validate runs all validators in the chain
func (vc *ValidatorChain[T]) Validate(value T) error {
	for _, validator := range vc.validators {
		if err := validator(value); err != nil {
			return err
		}
	}
	return nil
}

// NotEmpty validates that a string is not empty
func NotEmpty(field string) Validator[string] {
	return func(value string) error {
		if value == "" {
			return ValidationError{
				Field:   field,
				Value:   value,
				Message: "cannot be empty",
			}
		}
		return nil
	}
}

// MatchesRegex validates that a string matches a regex pattern
func MatchesRegex(field, pattern string) Validator[string] {
	re := regexp.MustCompile(pattern)
	return func(value string) error {
		if !re.MatchString(value) {
			return ValidationError{
				Field:   field,
				Value:   value,
				Message: fmt.Sprintf("must match pattern %s", pattern),
			}
		}
		return nil
	}
}

// Custom validates using a custom function
func Custom[T any](field string, message string, validatorFunc func(T) bool) Validator[T] {
	return func(value T) error {
		if !validatorFunc(value) {
			return ValidationError{
				Field:   field,
				Value:   value,
				Message: message,
			}
		}
		return nil
	}
}

// javaPackagePattern matches dotted lowercase-led Java package names
const javaPackagePattern = `^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)*$`

// JavaPackage validates a fully qualified Java package name
func JavaPackage(field string) Validator[string] {
	return MatchesRegex(field, javaPackagePattern)
}

// ValidateOptions checks generation options before a run
func ValidateOptions(opts models.Options) error {
	if err := NewValidatorChain(NotEmpty("basePackage"), JavaPackage("basePackage")).Validate(opts.BasePackage); err != nil {
		return err
	}
	if err := NotEmpty("outputRoot")(opts.OutputRoot); err != nil {
		return err
	}
	return Custom("workers", "must not be negative", func(n int) bool { return n >= 0 })(opts.Workers)
}
