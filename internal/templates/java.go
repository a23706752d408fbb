package templates

import (
	"sort"
	"strings"
)

// GeneratedHeader marks files written by stratum
const GeneratedHeader = "// Code generated by stratum. DO NOT EDIT."

// Kind is the kind of Java type declared by a file
type Kind string

const (
	ClassKind     Kind = "class"
	InterfaceKind Kind = "interface"
)

// Param is a method or constructor parameter
type Param struct {
	Annotations []string // e.g. "@RequestBody"
	Type        string
	Name        string
}

// Field is a member variable
type Field struct {
	Annotations []string
	Modifiers   string // e.g. "private final"
	Type        string
	Name        string
}

// Constructor assigns each parameter to the field of the same name
type Constructor struct {
	Annotations []string
	Params      []Param
}

// Method is a method declaration. Methods without a body are rendered as
// abstract signatures.
type Method struct {
	Annotations []string
	Modifiers   string
	ReturnType  string
	Name        string
	Params      []Param
	Body        []string // statement lines, without indentation
}

// JavaFile is the structured form of one generated Java source file
type JavaFile struct {
	Header      string   // comment line above the package declaration
	Package     string   // fully qualified package name
	Imports     []string // fully qualified imports known up front
	Doc         []string // javadoc lines for the type
	Annotations []string // type annotations, rendered in order
	Modifiers   string   // type modifiers, "public" when empty
	Kind        Kind
	Name        string
	Extends     []string // one entry for classes, any number for interfaces
	Implements  []string
	Fields      []Field
	Constructor *Constructor
	Methods     []Method
}

// Symbols returns the capitalised identifiers the file's code refers to,
// sorted. Documentation and the header are not code and are not scanned.
func (f *JavaFile) Symbols() []string {
	set := make(map[string]bool)
	add := func(texts ...string) {
		for _, text := range texts {
			for _, sym := range symbolPattern.FindAllString(text, -1) {
				set[sym] = true
			}
		}
	}
	addParams := func(params []Param) {
		for _, p := range params {
			add(p.Annotations...)
			add(p.Type)
		}
	}

	add(f.Annotations...)
	add(f.Extends...)
	add(f.Implements...)
	for _, field := range f.Fields {
		add(field.Annotations...)
		add(field.Type)
	}
	if f.Constructor != nil {
		add(f.Constructor.Annotations...)
		addParams(f.Constructor.Params)
	}
	for _, m := range f.Methods {
		add(m.Annotations...)
		add(m.ReturnType)
		addParams(m.Params)
		add(m.Body...)
	}

	symbols := make([]string, 0, len(set))
	for sym := range set {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}

// declaration returns the type declaration line without the opening brace
func (f *JavaFile) declaration() string {
	modifiers := f.Modifiers
	if modifiers == "" {
		modifiers = "public"
	}
	kind := f.Kind
	if kind == "" {
		kind = ClassKind
	}

	parts := []string{modifiers, string(kind), f.Name}
	if len(f.Extends) > 0 {
		parts = append(parts, "extends", strings.Join(f.Extends, ", "))
	}
	if len(f.Implements) > 0 {
		parts = append(parts, "implements", strings.Join(f.Implements, ", "))
	}
	return strings.Join(parts, " ")
}

// members renders every member block in declaration order
func (f *JavaFile) members() []string {
	var blocks []string

	for _, field := range f.Fields {
		var b strings.Builder
		writeAnnotations(&b, field.Annotations)
		if field.Modifiers != "" {
			b.WriteString(field.Modifiers + " ")
		}
		b.WriteString(field.Type + " " + field.Name + ";")
		blocks = append(blocks, b.String())
	}

	if c := f.Constructor; c != nil {
		var b strings.Builder
		writeAnnotations(&b, c.Annotations)
		b.WriteString("public " + f.Name + "(" + params(c.Params) + ") {")
		for _, p := range c.Params {
			b.WriteString("\n    this." + p.Name + " = " + p.Name + ";")
		}
		b.WriteString("\n}")
		blocks = append(blocks, b.String())
	}

	for _, m := range f.Methods {
		var b strings.Builder
		writeAnnotations(&b, m.Annotations)
		if m.Modifiers != "" {
			b.WriteString(m.Modifiers + " ")
		}
		b.WriteString(m.ReturnType + " " + m.Name + "(" + params(m.Params) + ")")
		if m.Body == nil {
			b.WriteString(";")
		} else {
			b.WriteString(" {")
			for _, line := range m.Body {
				b.WriteString("\n    " + line)
			}
			b.WriteString("\n}")
		}
		blocks = append(blocks, b.String())
	}

	return blocks
}

func writeAnnotations(b *strings.Builder, annotations []string) {
	for _, a := range annotations {
		b.WriteString(a + "\n")
	}
}

func params(ps []Param) string {
	rendered := make([]string, len(ps))
	for i, p := range ps {
		parts := append(append([]string{}, p.Annotations...), p.Type, p.Name)
		rendered[i] = strings.Join(parts, " ")
	}
	return strings.Join(rendered, ", ")
}
