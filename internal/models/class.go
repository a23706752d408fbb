package models

import "strings"

// Decorator represents an annotation attached to a class, property, method or parameter
type Decorator struct {
	Name      string  `json:"name" yaml:"name"`                               // decorator name as written, without '@'
	Arguments *string `json:"arguments,omitempty" yaml:"arguments,omitempty"` // raw text between the parentheses, nil when there are none
}

// NewDecorator creates a decorator without arguments
func NewDecorator(name string) Decorator {
	return Decorator{Name: name}
}

// NewDecoratorWithArgs creates a decorator carrying raw argument text
func NewDecoratorWithArgs(name, args string) Decorator {
	return Decorator{Name: name, Arguments: &args}
}

// Args returns the raw argument text and whether parentheses were present
func (d Decorator) Args() (string, bool) {
	if d.Arguments == nil {
		return "", false
	}
	return *d.Arguments, true
}

// Is reports whether the decorator name matches name, ignoring case
func (d Decorator) Is(name string) bool {
	return strings.EqualFold(d.Name, name)
}

// Parameter represents a method or constructor parameter
type Parameter struct {
	Name       string      `json:"name" yaml:"name"`
	Type       string      `json:"type" yaml:"type"` // raw source type, mapped at synthesis time
	Decorators []Decorator `json:"decorators,omitempty" yaml:"decorators,omitempty"`
}

// Method represents a class method signature
type Method struct {
	Name       string      `json:"name" yaml:"name"`
	ReturnType string      `json:"returnType" yaml:"returnType"`
	Parameters []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Decorators []Decorator `json:"decorators,omitempty" yaml:"decorators,omitempty"`
}

// Property represents a class field
type Property struct {
	Name           string      `json:"name" yaml:"name"`
	Type           string      `json:"type" yaml:"type"`
	AccessModifier *string     `json:"accessModifier,omitempty" yaml:"accessModifier,omitempty"`
	IsReadonly     bool        `json:"isReadonly" yaml:"isReadonly"`
	Decorators     []Decorator `json:"decorators,omitempty" yaml:"decorators,omitempty"`
}

// Class is the normalized, language-agnostic description of one source class.
// A Class is built once per run and treated as read-only by every consumer.
type Class struct {
	Name              string      `json:"name" yaml:"name"` // used verbatim as the generated type name
	Decorators        []Decorator `json:"decorators,omitempty" yaml:"decorators,omitempty"`
	Extends           *string     `json:"extends,omitempty" yaml:"extends,omitempty"`
	Implements        []string    `json:"implements,omitempty" yaml:"implements,omitempty"` // order preserving, no duplicates
	Properties        []Property  `json:"properties,omitempty" yaml:"properties,omitempty"`
	ConstructorParams []Parameter `json:"constructorParams,omitempty" yaml:"constructorParams,omitempty"`
	Methods           []Method    `json:"methods,omitempty" yaml:"methods,omitempty"`
}

// HasDecorator reports whether any class decorator matches name, ignoring case
func (c *Class) HasDecorator(name string) bool {
	_, ok := c.FindDecorator(name)
	return ok
}

// FindDecorator returns the first class decorator matching name, ignoring case
func (c *Class) FindDecorator(name string) (Decorator, bool) {
	for _, d := range c.Decorators {
		if d.Is(name) {
			return d, true
		}
	}
	return Decorator{}, false
}

// ExtendsName returns the extended type name or an empty string
func (c *Class) ExtendsName() string {
	if c.Extends == nil {
		return ""
	}
	return *c.Extends
}
