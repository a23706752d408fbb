package generator

import (
	"fmt"
	"strings"

	"github.com/toyz/stratum/internal/errors"
	"github.com/toyz/stratum/internal/models"
	"github.com/toyz/stratum/internal/templates"
)

const repositorySuffix = "Repository"

// RepositoryGenerator emits a JPA repository interface for the entity named by the class
type RepositoryGenerator struct{}

func (RepositoryGenerator) Role() models.Role {
	return models.RoleRepository
}

func (RepositoryGenerator) Generate(cls *models.Class, ctx Context) ([]models.LogicalFile, error) {
	entity, err := RepositoryEntity(cls.Name)
	if err != nil {
		return nil, err
	}

	file := &templates.JavaFile{
		Doc:         []string{fmt.Sprintf("Repository interface for %s entity.", entity)},
		Annotations: []string{"@Repository"},
		Kind:        templates.InterfaceKind,
		Name:        cls.Name,
		Extends:     []string{fmt.Sprintf("JpaRepository<%s, Long>", entity)},
	}

	candidates := []string{models.QualifiedName(ctx.BasePackage, models.EntityPackage, entity)}
	out, err := ctx.emit(cls, models.RoleRepository, models.RepositoryPackage, file, candidates)
	if err != nil {
		return nil, err
	}
	return []models.LogicalFile{out}, nil
}

// RepositoryEntity derives the entity name from a repository class name
func RepositoryEntity(name string) (string, error) {
	if !strings.HasSuffix(name, repositorySuffix) || len(name) <= len(repositorySuffix) {
		return "", errors.NewNamingConventionError(name, "ends with Repository after a non-empty entity name")
	}
	return name[:len(name)-len(repositorySuffix)], nil
}
