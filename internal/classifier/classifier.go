// Package classifier assigns an architectural role to each IR class.
package classifier

import (
	"strings"

	"github.com/toyz/stratum/internal/models"
)

// Rule is one entry of the classification priority table
type Rule struct {
	Name  string                   // short description used in diagnostics
	Role  models.Role              // role assigned when the rule matches
	Match func(*models.Class) bool // predicate over the class
}

// Rules is the classification table. Rules are evaluated in order and the
// first match wins.
var Rules = []Rule{
	{
		Name:  "decorator controller",
		Role:  models.RoleController,
		Match: hasAny("controller"),
	},
	{
		Name: "name suffix repository or decorator repository",
		Role: models.RoleRepository,
		Match: func(c *models.Class) bool {
			return strings.HasSuffix(strings.ToLower(c.Name), "repository") || c.HasDecorator("repository")
		},
	},
	{
		Name:  "decorator service or injectable",
		Role:  models.RoleService,
		Match: hasAny("service", "injectable"),
	},
	{
		Name: "name suffix Dto without decorators",
		Role: models.RoleDataTransferObject,
		Match: func(c *models.Class) bool {
			return strings.HasSuffix(c.Name, "Dto") && len(c.Decorators) == 0
		},
	},
	{
		Name:  "decorator entity",
		Role:  models.RoleEntity,
		Match: hasAny("entity"),
	},
}

// Classify returns the role of the first matching rule, or RoleUnclassified
func Classify(cls *models.Class) models.Role {
	if rule, ok := Match(cls); ok {
		return rule.Role
	}
	return models.RoleUnclassified
}

// Match returns the first rule matching cls
func Match(cls *models.Class) (Rule, bool) {
	for _, rule := range Rules {
		if rule.Match(cls) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Explain returns the name of the rule that classified cls
func Explain(cls *models.Class) string {
	if rule, ok := Match(cls); ok {
		return rule.Name
	}
	return "no rule matched"
}

// Classification is the role assigned to one class together with the rule that chose it
type Classification struct {
	Name string      `json:"name" yaml:"name"`
	Role models.Role `json:"role" yaml:"role"`
	Rule string      `json:"rule" yaml:"rule"`
}

// Describe classifies every class in order. Nil entries are ignored.
func Describe(classes []*models.Class) []Classification {
	out := make([]Classification, 0, len(classes))
	for _, cls := range classes {
		if cls == nil {
			continue
		}
		out = append(out, Classification{Name: cls.Name, Role: Classify(cls), Rule: Explain(cls)})
	}
	return out
}

func hasAny(names ...string) func(*models.Class) bool {
	return func(c *models.Class) bool {
		for _, name := range names {
			if c.HasDecorator(name) {
				return true
			}
		}
		return false
	}
}
