package generator

import (
	"strings"

	"github.com/toyz/stratum/internal/errors"
	"github.com/toyz/stratum/internal/models"
	"github.com/toyz/stratum/internal/templates"
	"github.com/toyz/stratum/internal/typemap"
)

var (
	defaultRenderer = templates.MustNewRenderer()
	defaultResolver = templates.NewImportResolver()
)

// Context carries the read-only configuration every generator call needs.
// It is passed by value and never modified after NewContext returns it.
type Context struct {
	BasePackage  string
	WrapOptional bool
	Mapper       typemap.Mapper
	Resolver     *templates.ImportResolver
	Renderer     *templates.Renderer
}

// NewContext builds a generation context from options
func NewContext(opts models.Options) Context {
	base := opts.BasePackage
	if base == "" {
		base = models.DefaultBasePackage
	}
	return Context{
		BasePackage:  base,
		WrapOptional: opts.WrapOptional,
		Mapper:       typemap.Default,
		Resolver:     defaultResolver,
		Renderer:     defaultRenderer,
	}
}

// Package returns the fully qualified name of a sub-package
func (c Context) Package(sub string) string {
	return models.QualifiedPackage(c.BasePackage, sub)
}

// Envelope maps a source return type and wraps it in ResponseEntity
func (c Context) Envelope(src string) string {
	mapped := c.Mapper.Box(c.Mapper.Map(typemap.MethodContext, src))
	if c.WrapOptional && c.Mapper.IsNullable(src) {
		mapped = c.Mapper.WrapOptional(mapped)
	}
	return "ResponseEntity<" + mapped + ">"
}

// DTOCandidates returns import candidates for the user types a method signature references
func (c Context) DTOCandidates(methods []models.Method) []string {
	var candidates []string
	for _, m := range methods {
		types := []string{c.Mapper.Map(typemap.MethodContext, m.ReturnType)}
		for _, p := range m.Parameters {
			types = append(types, c.Mapper.Map(typemap.MethodContext, p.Type))
		}
		for _, t := range types {
			for _, user := range c.Mapper.UserTypes(t) {
				candidates = append(candidates, models.QualifiedName(c.BasePackage, models.DTOPackage, user))
			}
		}
	}
	return candidates
}

// emit renders file, resolves its imports and wraps it as a logical file
func (c Context) emit(cls *models.Class, role models.Role, sub string, file *templates.JavaFile, candidates []string) (models.LogicalFile, error) {
	file.Header = templates.GeneratedHeader
	file.Package = c.Package(sub)
	path := models.OutputPath(c.BasePackage, sub, file.Name)

	content, err := c.Renderer.Render(file)
	if err != nil {
		return models.LogicalFile{}, errors.NewGenerationError(cls.Name, path, "render", err)
	}

	return models.LogicalFile{
		Role:         role,
		RelativePath: path,
		Content:      c.Resolver.Resolve(candidates, content),
	}, nil
}

// placeholderBody is the stub body of every synthesized method
func placeholderBody(comment string) []string {
	return []string{"// TODO: " + comment, "return ResponseEntity.ok().body(null);"}
}

// stripQuotes removes surrounding whitespace and quote characters
func stripQuotes(s string) string {
	return strings.Trim(s, " \t\r\n\"'`")
}
