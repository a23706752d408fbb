package generator

import (
	"fmt"
	"sort"
	"sync"

	"github.com/toyz/stratum/internal/models"
)

// Registry maps roles to their generators
type Registry struct {
	mu         sync.RWMutex
	generators map[models.Role]RoleGenerator
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{generators: make(map[models.Role]RoleGenerator)}
}

// DefaultRegistry creates a registry holding the five built-in generators
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, g := range []RoleGenerator{
		ControllerGenerator{},
		ServiceGenerator{},
		RepositoryGenerator{},
		EntityGenerator{},
		DTOGenerator{},
	} {
		// roles are distinct, registration cannot fail
		_ = r.Register(g)
	}
	return r
}

// Register adds a generator. Registering a second generator for the same role is an error.
func (r *Registry) Register(g RoleGenerator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	role := g.Role()
	if !role.Synthesizable() {
		return fmt.Errorf("cannot register a generator for role %s", role)
	}
	if _, exists := r.generators[role]; exists {
		return fmt.Errorf("generator for role %s already registered", role)
	}
	r.generators[role] = g
	return nil
}

// Get returns the generator for role
func (r *Registry) Get(role models.Role) (RoleGenerator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.generators[role]
	return g, ok
}

// Roles returns the registered roles in enum order
func (r *Registry) Roles() []models.Role {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roles := make([]models.Role, 0, len(r.generators))
	for role := range r.generators {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}
