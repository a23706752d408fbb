package parser

// Raw descriptor shapes decoded with mapstructure. Decorators are normalized to
// objects before decoding.

type decoratorDescriptor struct {
	Name      string  `mapstructure:"name"`
	Arguments *string `mapstructure:"arguments"`
}

type parameterDescriptor struct {
	Name       string                `mapstructure:"name"`
	Type       string                `mapstructure:"type"`
	Decorators []decoratorDescriptor `mapstructure:"decorators"`
}

type propertyDescriptor struct {
	Name           string                `mapstructure:"name"`
	Type           string                `mapstructure:"type"`
	AccessModifier *string               `mapstructure:"accessModifier"`
	IsReadonly     bool                  `mapstructure:"isReadonly"`
	Decorators     []decoratorDescriptor `mapstructure:"decorators"`
}

type methodDescriptor struct {
	Name       string                `mapstructure:"name"`
	ReturnType string                `mapstructure:"returnType"`
	Parameters []parameterDescriptor `mapstructure:"parameters"`
	Decorators []decoratorDescriptor `mapstructure:"decorators"`
}

type classDescriptor struct {
	Name              string                `mapstructure:"name"`
	Decorators        []decoratorDescriptor `mapstructure:"decorators"`
	Extends           *string               `mapstructure:"extends"`
	Implements        []string              `mapstructure:"implements"`
	Properties        []propertyDescriptor  `mapstructure:"properties"`
	ConstructorParams []parameterDescriptor `mapstructure:"constructorParams"`
	Methods           []methodDescriptor    `mapstructure:"methods"`
}
