package generator

import "github.com/toyz/stratum/internal/models"

// RoleGenerator synthesizes the files of one architectural role from an IR class.
// Implementations keep no state between calls and never modify cls.
type RoleGenerator interface {
	Role() models.Role
	Generate(cls *models.Class, ctx Context) ([]models.LogicalFile, error)
}

// Logger receives per-class progress from the orchestrator
type Logger interface {
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Warn(string, ...interface{})  {}
