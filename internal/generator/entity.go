package generator

import (
	"fmt"

	"github.com/iancoleman/strcase"

	"github.com/toyz/stratum/internal/models"
	"github.com/toyz/stratum/internal/templates"
	"github.com/toyz/stratum/internal/typemap"
)

// EntityGenerator emits a JPA entity with one column per property
type EntityGenerator struct{}

func (EntityGenerator) Role() models.Role {
	return models.RoleEntity
}

func (EntityGenerator) Generate(cls *models.Class, ctx Context) ([]models.LogicalFile, error) {
	file := &templates.JavaFile{
		Annotations: []string{
			"@Entity",
			fmt.Sprintf("@Table(name = %q)", strcase.ToSnake(cls.Name)),
			"@Data",
			"@NoArgsConstructor",
			"@AllArgsConstructor",
		},
		Kind: templates.ClassKind,
		Name: cls.Name,
	}

	for _, p := range cls.Properties {
		field := templates.Field{
			Modifiers: "private",
			Type:      ctx.Mapper.Map(typemap.MethodContext, p.Type),
			Name:      p.Name,
		}
		if p.Name == "id" {
			field.Annotations = []string{"@Id", "@GeneratedValue(strategy = GenerationType.IDENTITY)"}
		}
		file.Fields = append(file.Fields, field)
	}

	out, err := ctx.emit(cls, models.RoleEntity, models.EntityPackage, file, nil)
	if err != nil {
		return nil, err
	}
	return []models.LogicalFile{out}, nil
}
