package generator

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/toyz/stratum/internal/models"
	"github.com/toyz/stratum/internal/templates"
	"github.com/toyz/stratum/internal/typemap"
)

// verbPrefixes maps lowercase method name prefixes to mapping annotations, checked in order
var verbPrefixes = []struct {
	prefixes   []string
	annotation string
}{
	{[]string{"get"}, "@GetMapping"},
	{[]string{"create", "post"}, "@PostMapping"},
	{[]string{"update", "put"}, "@PutMapping"},
	{[]string{"delete", "remove"}, "@DeleteMapping"},
}

// ControllerGenerator emits a REST controller delegating to its service
type ControllerGenerator struct{}

func (ControllerGenerator) Role() models.Role {
	return models.RoleController
}

func (ControllerGenerator) Generate(cls *models.Class, ctx Context) ([]models.LogicalFile, error) {
	route := ""
	if d, ok := cls.FindDecorator("controller"); ok {
		if args, ok := d.Args(); ok {
			route = stripQuotes(args)
		}
	}

	collaborator := strings.ReplaceAll(cls.Name, "Controller", "Service")
	variable := strcase.ToLowerCamel(collaborator)

	file := &templates.JavaFile{
		Annotations: []string{"@RestController", fmt.Sprintf("@RequestMapping(%q)", route)},
		Kind:        templates.ClassKind,
		Name:        cls.Name,
		Implements:  append([]string(nil), cls.Implements...),
		Fields: []templates.Field{
			{Modifiers: "private final", Type: collaborator, Name: variable},
		},
		Constructor: &templates.Constructor{
			Annotations: []string{"@Autowired"},
			Params:      []templates.Param{{Type: collaborator, Name: variable}},
		},
	}
	if cls.Extends != nil {
		file.Extends = []string{*cls.Extends}
	}

	for _, m := range cls.Methods {
		method := templates.Method{
			Modifiers:  "public",
			ReturnType: ctx.Envelope(m.ReturnType),
			Name:       m.Name,
			Body:       placeholderBody("Implement"),
		}
		if verb := HTTPVerb(m.Name); verb != "" {
			method.Annotations = []string{verb}
		}
		for _, p := range m.Parameters {
			binding := "@RequestParam"
			if IsBodyParameter(p.Name) {
				binding = "@RequestBody"
			}
			method.Params = append(method.Params, templates.Param{
				Annotations: []string{binding},
				Type:        ctx.Mapper.Map(typemap.MethodContext, p.Type),
				Name:        p.Name,
			})
		}
		file.Methods = append(file.Methods, method)
	}

	candidates := append(ctx.DTOCandidates(cls.Methods), models.QualifiedName(ctx.BasePackage, models.ServicePackage, collaborator))

	out, err := ctx.emit(cls, models.RoleController, models.ControllerPackage, file, candidates)
	if err != nil {
		return nil, err
	}
	return []models.LogicalFile{out}, nil
}

// HTTPVerb returns the mapping annotation implied by a method name, or "" when none applies
func HTTPVerb(methodName string) string {
	name := strings.ToLower(methodName)
	for _, v := range verbPrefixes {
		for _, prefix := range v.prefixes {
			if strings.HasPrefix(name, prefix) {
				return v.annotation
			}
		}
	}
	return ""
}

// IsBodyParameter reports whether a parameter binds to the request body
func IsBodyParameter(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), "dto")
}
