package generator

import (
	"github.com/toyz/stratum/internal/models"
	"github.com/toyz/stratum/internal/templates"
	"github.com/toyz/stratum/internal/typemap"
)

// DTOGenerator emits a plain data carrier with private fields
type DTOGenerator struct{}

func (DTOGenerator) Role() models.Role {
	return models.RoleDataTransferObject
}

func (DTOGenerator) Generate(cls *models.Class, ctx Context) ([]models.LogicalFile, error) {
	file := &templates.JavaFile{
		Annotations: []string{"@Data"},
		Kind:        templates.ClassKind,
		Name:        cls.Name,
	}

	for _, p := range cls.Properties {
		file.Fields = append(file.Fields, templates.Field{
			Modifiers: "private",
			Type:      ctx.Mapper.Map(typemap.FieldContext, p.Type),
			Name:      p.Name,
		})
	}

	out, err := ctx.emit(cls, models.RoleDataTransferObject, models.DTOPackage, file, nil)
	if err != nil {
		return nil, err
	}
	return []models.LogicalFile{out}, nil
}
