package models

import "fmt"

// Role is the architectural category assigned to one IR class
type Role int

const (
	RoleUnclassified Role = iota
	RoleController
	RoleRepository
	RoleService
	RoleDataTransferObject
	RoleEntity
)

// String returns the string representation of the role
func (r Role) String() string {
	switch r {
	case RoleController:
		return "controller"
	case RoleRepository:
		return "repository"
	case RoleService:
		return "service"
	case RoleDataTransferObject:
		return "dto"
	case RoleEntity:
		return "entity"
	default:
		return "unclassified"
	}
}

// MarshalText renders the role by name in JSON and YAML output
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a role name produced by MarshalText
func (r *Role) UnmarshalText(text []byte) error {
	role, ok := ParseRole(string(text))
	if !ok {
		return fmt.Errorf("unknown role %q", string(text))
	}
	*r = role
	return nil
}

// ParseRole returns the role with the given name
func ParseRole(name string) (Role, bool) {
	for r := RoleUnclassified; r <= RoleEntity; r++ {
		if r.String() == name {
			return r, true
		}
	}
	return RoleUnclassified, false
}

// Directory returns the sub-package the role's primary file lives in
func (r Role) Directory() string {
	switch r {
	case RoleController:
		return "controller"
	case RoleRepository:
		return "repository"
	case RoleService:
		return "service"
	case RoleDataTransferObject:
		return "dto"
	case RoleEntity:
		return "entity"
	default:
		return ""
	}
}

// Synthesizable reports whether files are generated for the role
func (r Role) Synthesizable() bool {
	return r != RoleUnclassified
}
