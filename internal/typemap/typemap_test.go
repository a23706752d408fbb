package typemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapper_Map(t *testing.T) {
	tests := []struct {
		name     string
		ctx      Context
		src      string
		expected string
	}{
		{"method string", MethodContext, "string", "String"},
		{"method number", MethodContext, "number", "int"},
		{"field number", FieldContext, "number", "double"},
		{"method boolean", MethodContext, "boolean", "boolean"},
		{"method any", MethodContext, "any", "Object"},
		{"method unknown", MethodContext, "unknown", "Object"},
		{"method void", MethodContext, "void", "void"},
		{"method undefined", MethodContext, "undefined", "Object"},
		{"method string array", MethodContext, "string[]", "List<String>"},
		{"field number array", FieldContext, "number[]", "List<Double>"},
		{"field date", FieldContext, "Date", "Date"},
		{"echo user type", MethodContext, "User", "User"},
		{"echo generic", FieldContext, "Promise<User>", "Promise<User>"},
		{"trims whitespace", MethodContext, "  string ", "String"},
		{"optional marker", MethodContext, "string?", "String"},
		{"null union", FieldContext, "number | null", "double"},
		{"undefined union", MethodContext, "User | undefined", "User"},
		{"multi member union", MethodContext, "string | number | null", "string | number"},
		{"only absent members", MethodContext, "null | undefined", "Object"},
		{"unknown context falls back", Context(42), "number", "int"},
	}

	mapper := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapper.Map(tt.ctx, tt.src))
		})
	}
}

func TestMapper_IsNullable(t *testing.T) {
	tests := []struct {
		src      string
		expected bool
	}{
		{"User", false},
		{"User | null", true},
		{"string|undefined", true},
		{"string?", true},
		{"string | number", false},
		{"nullable", false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.expected, Default.IsNullable(tt.src))
		})
	}
}

func TestMapper_WrapOptional(t *testing.T) {
	assert.Equal(t, "Optional<User>", Default.WrapOptional("User"))
	assert.Equal(t, "Optional<Integer>", Default.WrapOptional("int"))

	once := Default.WrapOptional("String")
	assert.Equal(t, once, Default.WrapOptional(once))
	assert.Equal(t, "Optional<List<String>>", Default.WrapOptional(Default.WrapOptional("List<String>")))
}

func TestMapper_Box(t *testing.T) {
	assert.Equal(t, "Integer", Default.Box("int"))
	assert.Equal(t, "Double", Default.Box("double"))
	assert.Equal(t, "Boolean", Default.Box("boolean"))
	assert.Equal(t, "Void", Default.Box("void"))
	assert.Equal(t, "User", Default.Box("User"))
	assert.True(t, Default.IsPrimitive("int"))
	assert.False(t, Default.IsPrimitive("Integer"))
}

func TestMapper_UserTypes(t *testing.T) {
	assert.True(t, Default.IsUserType("User"))
	assert.False(t, Default.IsUserType("String"))
	assert.False(t, Default.IsUserType("int"))
	assert.False(t, Default.IsUserType("List<User>"))
	assert.False(t, Default.IsUserType("string | number"))

	assert.Equal(t, []string{"User"}, Default.UserTypes("List<User>"))
	assert.Equal(t, []string{"Page", "Order"}, Default.UserTypes("Page<Order, Order>"))
	assert.Empty(t, Default.UserTypes("List<String>"))
}

func TestMapper_TablesAreIndependent(t *testing.T) {
	a := New()
	b := New()
	assert.Equal(t, a.Map(FieldContext, "number"), b.Map(FieldContext, "number"))
	assert.NotEqual(t, a.Map(MethodContext, "number"), a.Map(FieldContext, "number"))
}
