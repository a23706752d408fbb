package generator

import (
	"github.com/toyz/stratum/internal/models"
	"github.com/toyz/stratum/internal/templates"
	"github.com/toyz/stratum/internal/typemap"
)

// ServiceGenerator emits a service interface and its implementation
type ServiceGenerator struct{}

func (ServiceGenerator) Role() models.Role {
	return models.RoleService
}

func (ServiceGenerator) Generate(cls *models.Class, ctx Context) ([]models.LogicalFile, error) {
	interfaceName := cls.Name + "Service"
	implName := cls.Name + "ServiceImpl"

	contract := &templates.JavaFile{
		Annotations: []string{"@Service"},
		Kind:        templates.InterfaceKind,
		Name:        interfaceName,
	}

	impl := &templates.JavaFile{
		Annotations: []string{"@Service"},
		Kind:        templates.ClassKind,
		Name:        implName,
		Implements:  []string{interfaceName},
	}
	for _, m := range cls.Methods {
		method := templates.Method{
			Modifiers:  "public",
			ReturnType: ctx.Envelope(m.ReturnType),
			Name:       m.Name,
			Body:       placeholderBody("Add business logic"),
		}
		for _, p := range m.Parameters {
			method.Params = append(method.Params, templates.Param{
				Type: ctx.Mapper.Map(typemap.MethodContext, p.Type),
				Name: p.Name,
			})
		}
		impl.Methods = append(impl.Methods, method)
	}

	contractFile, err := ctx.emit(cls, models.RoleService, models.ServicePackage, contract, nil)
	if err != nil {
		return nil, err
	}

	candidates := append(ctx.DTOCandidates(cls.Methods), models.QualifiedName(ctx.BasePackage, models.ServicePackage, interfaceName))
	implFile, err := ctx.emit(cls, models.RoleService, models.ServiceImplPackage, impl, candidates)
	if err != nil {
		return nil, err
	}

	return []models.LogicalFile{contractFile, implFile}, nil
}
