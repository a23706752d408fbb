// Package typemap translates source-language type expressions into Java types.
package typemap

import (
	"regexp"
	"strings"
)

// Context selects which mapping table applies to a type expression
type Context int

const (
	// MethodContext maps method signatures and entity fields
	MethodContext Context = iota
	// FieldContext maps DTO fields
	FieldContext
)

// String returns the string representation of the context
func (c Context) String() string {
	if c == FieldContext {
		return "field"
	}
	return "method"
}

// Mapper holds the mapping tables. The zero value is not usable, build one with New.
// A Mapper is never modified after construction.
type Mapper struct {
	tables map[Context]map[string]string
}

// Default is the shared mapper instance
var Default = New()

// New creates a mapper with the method and field tables
func New() Mapper {
	method := map[string]string{
		"string":    "String",
		"number":    "int",
		"boolean":   "boolean",
		"any":       "Object",
		"unknown":   "Object",
		"void":      "void",
		"null":      "Object",
		"undefined": "Object",
		"string[]":  "List<String>",
		"number[]":  "List<Double>",
	}

	field := make(map[string]string, len(method)+1)
	for k, v := range method {
		field[k] = v
	}
	field["number"] = "double"
	field["Date"] = "Date"

	return Mapper{tables: map[Context]map[string]string{
		MethodContext: method,
		FieldContext:  field,
	}}
}

var primitives = map[string]string{
	"int":     "Integer",
	"long":    "Long",
	"double":  "Double",
	"float":   "Float",
	"boolean": "Boolean",
	"char":    "Character",
	"byte":    "Byte",
	"short":   "Short",
	"void":    "Void",
}

// Types that need no import or are handled by the fixed import table
var builtins = map[string]bool{
	"String":    true,
	"Object":    true,
	"Integer":   true,
	"Long":      true,
	"Double":    true,
	"Float":     true,
	"Boolean":   true,
	"Character": true,
	"Byte":      true,
	"Short":     true,
	"Void":      true,
	"List":      true,
	"Optional":  true,
	"Date":      true,
	"Map":       true,
	"Set":       true,
}

var identifier = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)

// Map translates a source type in the given context. Nullable markers are
// stripped first; unknown types are returned unchanged.
func (m Mapper) Map(ctx Context, src string) string {
	stripped := strip(src)

	table, ok := m.tables[ctx]
	if !ok {
		table = m.tables[MethodContext]
	}

	if mapped, ok := table[stripped]; ok {
		return mapped
	}
	return stripped
}

// IsNullable reports whether a source type admits absence, either through an
// optional marker or a null/undefined union member
func (m Mapper) IsNullable(src string) bool {
	if strings.Contains(src, "?") {
		return true
	}
	if !strings.Contains(src, "|") {
		return false
	}
	for _, member := range strings.Split(src, "|") {
		if isAbsent(strings.TrimSpace(member)) {
			return true
		}
	}
	return false
}

// WrapOptional wraps a Java type in Optional. Wrapping an Optional again
// returns it unchanged.
func (m Mapper) WrapOptional(javaType string) string {
	javaType = strings.TrimSpace(javaType)
	if strings.HasPrefix(javaType, "Optional<") && strings.HasSuffix(javaType, ">") {
		return javaType
	}
	return "Optional<" + m.Box(javaType) + ">"
}

// Box returns the reference type for a Java primitive, or the type unchanged
func (m Mapper) Box(javaType string) string {
	if boxed, ok := primitives[javaType]; ok {
		return boxed
	}
	return javaType
}

// IsPrimitive reports whether javaType is a Java primitive
func (m Mapper) IsPrimitive(javaType string) bool {
	_, ok := primitives[javaType]
	return ok
}

// IsUserType reports whether a mapped Java type names a user defined type,
// i.e. a bare capitalised identifier that is not a builtin
func (m Mapper) IsUserType(javaType string) bool {
	return identifier.MatchString(javaType) && !builtins[javaType]
}

// UserTypes returns the user defined types referenced by a mapped Java type,
// including generic arguments, in order of appearance
func (m Mapper) UserTypes(javaType string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, part := range strings.FieldsFunc(javaType, func(r rune) bool {
		return r == '<' || r == '>' || r == ',' || r == ' ' || r == '[' || r == ']'
	}) {
		if m.IsUserType(part) && !seen[part] {
			seen[part] = true
			found = append(found, part)
		}
	}
	return found
}

// strip removes optional markers and null/undefined union members
func strip(src string) string {
	src = strings.TrimSpace(strings.ReplaceAll(src, "?", ""))
	if !strings.Contains(src, "|") {
		return src
	}

	var kept []string
	for _, member := range strings.Split(src, "|") {
		member = strings.TrimSpace(member)
		if member == "" || isAbsent(member) {
			continue
		}
		kept = append(kept, member)
	}

	switch len(kept) {
	case 0:
		return "null"
	case 1:
		return kept[0]
	default:
		return strings.Join(kept, " | ")
	}
}

func isAbsent(member string) bool {
	return member == "null" || member == "undefined"
}
