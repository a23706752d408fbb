package errors

import (
	"fmt"
	"strconv"
)

// MalformedDescriptorError reports a class descriptor missing a required key
// or carrying a value of the wrong shape
type MalformedDescriptorError struct {
	*BaseError
	Index int    // descriptor index within the input
	Key   string // key path, e.g. "methods[1].returnType"
}

// NewMalformedDescriptorError creates an error for a missing required key
func NewMalformedDescriptorError(index int, key string) *MalformedDescriptorError {
	base := New(MalformedDescriptorCode, fmt.Sprintf("missing required key '%s'", key)).
		WithContext("index", index).
		WithContext("key", key).
		WithSuggestion(descriptorHint(key, strconv.Itoa(index)))
	base.Loc.Index = index

	return &MalformedDescriptorError{BaseError: base, Index: index, Key: key}
}

// relocate moves the error to loc and points the key hint at the new position
func (e *MalformedDescriptorError) relocate(loc Location) {
	if e.Loc.IsEmpty() {
		return
	}
	old := descriptorHint(e.Key, strconv.Itoa(e.Index))
	where := Location{Input: loc.Input, Index: loc.Index}.String()
	for i, hint := range e.Hints {
		if hint == old {
			e.Hints[i] = descriptorHint(e.Key, where)
		}
	}
	e.BaseError.relocate(loc)
	e.Index = loc.Index
	e.WithContext("index", loc.Index)
}

func descriptorHint(key, where string) string {
	return fmt.Sprintf("Add '%s' to class descriptor %s", key, where)
}

// NewInvalidDescriptorError creates an error for a key holding a value of the wrong shape
func NewInvalidDescriptorError(index int, key string, cause error) *MalformedDescriptorError {
	message := "invalid descriptor"
	if key != "" {
		message = fmt.Sprintf("invalid value for '%s'", key)
	}
	base := Wrap(MalformedDescriptorCode, message, cause).
		WithContext("index", index).
		WithContext("key", key)
	base.Loc.Index = index

	return &MalformedDescriptorError{BaseError: base, Index: index, Key: key}
}

// MalformedDecoratorError reports a decorator token that cannot be split into
// name and arguments
type MalformedDecoratorError struct {
	*BaseError
	Token string // the raw decorator token
}

// NewMalformedDecoratorError creates a decorator error for token
func NewMalformedDecoratorError(token, reason string) *MalformedDecoratorError {
	return &MalformedDecoratorError{
		BaseError: New(MalformedDecoratorCode, fmt.Sprintf("malformed decorator %q: %s", token, reason)).
			WithContext("token", token).
			WithSuggestion("Use the form @Name or @Name(arguments) with a closing parenthesis"),
		Token: token,
	}
}

// WithLocation adds location information to the error
func (e *MalformedDecoratorError) WithLocation(loc Location) *MalformedDecoratorError {
	e.BaseError.WithLocation(loc)
	return e
}

// NamingConventionError reports a class whose name breaks its role's naming contract
type NamingConventionError struct {
	*BaseError
	Class    string // offending class name
	Expected string // what the name must look like
}

// NewNamingConventionError creates a naming contract violation for class
func NewNamingConventionError(class, expected string) *NamingConventionError {
	base := New(NamingConventionCode, fmt.Sprintf("class %q violates naming convention: %s", class, expected)).
		WithContext("class", class).
		WithSuggestion(fmt.Sprintf("Rename %s so that it %s", class, expected))
	base.Loc.Class = class

	return &NamingConventionError{BaseError: base, Class: class, Expected: expected}
}

// UnclassifiedRoleWarning reports a class no classification rule matched.
// It is not a failure: the class is skipped and reported.
type UnclassifiedRoleWarning struct {
	*BaseError
	Class string
}

// NewUnclassifiedRoleWarning creates a warning for class
func NewUnclassifiedRoleWarning(class string) *UnclassifiedRoleWarning {
	base := New(UnclassifiedRoleCode, fmt.Sprintf("no role matched class %q", class)).
		WithSuggestion("Add a @Controller, @Service, @Injectable, @Repository or @Entity decorator, or use a Repository/Dto name suffix")
	base.Loc.Class = class

	return &UnclassifiedRoleWarning{BaseError: base, Class: class}
}

// GenerationError represents an error while synthesizing or rendering a file
type GenerationError struct {
	*BaseError
	Class  string // class being generated
	Target string // file or template being produced
	Stage  string // render, resolve, ...
}

// NewGenerationError creates a generation error
func NewGenerationError(class, target, stage string, cause error) *GenerationError {
	base := Wrap(GenerationErrorCode, fmt.Sprintf("failed to %s %s", stage, target), cause).
		WithContext("stage", stage)
	base.Loc.Class = class

	return &GenerationError{BaseError: base, Class: class, Target: target, Stage: stage}
}

// CollisionError reports two generated files computing the same output path
type CollisionError struct {
	*BaseError
	Path    string
	Classes []string
}

// NewCollisionError creates a collision error for path
func NewCollisionError(path string, classes []string) *CollisionError {
	return &CollisionError{
		BaseError: New(CollisionErrorCode, fmt.Sprintf("output path %s is produced by %d classes %v", path, len(classes), classes)).
			WithContext("path", path).
			WithSuggestion("Rename one of the classes or move them to different base packages"),
		Path:    path,
		Classes: classes,
	}
}
