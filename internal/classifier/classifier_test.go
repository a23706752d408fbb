package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/stratum/internal/models"
)

func class(name string, decorators ...string) *models.Class {
	cls := &models.Class{Name: name}
	for _, d := range decorators {
		cls.Decorators = append(cls.Decorators, models.NewDecorator(d))
	}
	return cls
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		class    *models.Class
		expected models.Role
	}{
		{"controller decorator", class("UserController", "Controller"), models.RoleController},
		{"controller decorator any case", class("Users", "CONTROLLER"), models.RoleController},
		{"controller beats repository name", class("UserRepository", "Controller"), models.RoleController},
		{"repository name suffix", class("OrderRepository"), models.RoleRepository},
		{"repository name any case", class("Orderrepository"), models.RoleRepository},
		{"repository decorator", class("Orders", "Repository"), models.RoleRepository},
		{"repository beats service", class("UserRepository", "Injectable"), models.RoleRepository},
		{"service decorator", class("Billing", "Service"), models.RoleService},
		{"injectable decorator", class("Billing", "Injectable"), models.RoleService},
		{"service beats entity", class("User", "Entity", "Injectable"), models.RoleService},
		{"dto without decorators", class("ProductDto"), models.RoleDataTransferObject},
		{"dto suffix is case sensitive", class("ProductDTO"), models.RoleUnclassified},
		{"decorated dto falls through", class("ProductDto", "Entity"), models.RoleEntity},
		{"decorated dto unrelated decorator", class("ProductDto", "Validate"), models.RoleUnclassified},
		{"entity decorator", class("User", "Entity"), models.RoleEntity},
		{"plain class", class("Helper"), models.RoleUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.class))
		})
	}
}

func TestRules_Order(t *testing.T) {
	var roles []models.Role
	for _, rule := range Rules {
		roles = append(roles, rule.Role)
	}

	assert.Equal(t, []models.Role{
		models.RoleController,
		models.RoleRepository,
		models.RoleService,
		models.RoleDataTransferObject,
		models.RoleEntity,
	}, roles)
}

func TestMatch(t *testing.T) {
	rule, ok := Match(class("UserRepository", "Injectable"))
	require.True(t, ok)
	assert.Equal(t, models.RoleRepository, rule.Role)

	_, ok = Match(class("Helper", "Deprecated"))
	assert.False(t, ok)
}

func TestExplain(t *testing.T) {
	assert.Equal(t, "decorator controller", Explain(class("UserController", "Controller")))
	assert.Equal(t, "name suffix Dto without decorators", Explain(class("UserDto")))
	assert.Equal(t, "no rule matched", Explain(class("Helper")))
}

func TestClassify_DoesNotMutate(t *testing.T) {
	cls := class("UserController", "Controller")
	before := *cls
	before.Decorators = append([]models.Decorator(nil), cls.Decorators...)

	Classify(cls)
	assert.Equal(t, before, *cls)
}

func TestDescribe(t *testing.T) {
	got := Describe([]*models.Class{
		class("UserController", "Controller"),
		nil,
		class("Helper"),
	})

	assert.Equal(t, []Classification{
		{Name: "UserController", Role: models.RoleController, Rule: "decorator controller"},
		{Name: "Helper", Role: models.RoleUnclassified, Rule: "no rule matched"},
	}, got)
}
