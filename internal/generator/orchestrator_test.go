package generator

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/stratum/internal/errors"
	"github.com/toyz/stratum/internal/models"
)

func scenarioDescriptors() []map[string]any {
	return []map[string]any{
		{
			"name":       "UserController",
			"decorators": []any{map[string]any{"name": "Controller", "arguments": "'users'"}},
			"methods": []any{
				map[string]any{"name": "getUser", "returnType": "User", "parameters": []any{
					map[string]any{"name": "id", "type": "number"},
				}},
			},
		},
		{"name": "OrderRepository", "decorators": []any{}},
		{"name": "ProductDto", "decorators": []any{}, "properties": []any{
			map[string]any{"name": "price", "type": "number"},
		}},
	}
}

func paths(files []models.LogicalFile) []string {
	var out []string
	for _, f := range files {
		out = append(out, f.RelativePath)
	}
	return out
}

func TestOrchestrator_Scenarios(t *testing.T) {
	result := NewOrchestrator(models.DefaultOptions(), nil).Process(scenarioDescriptors())

	assert.Equal(t, []string{
		"com/example/demo/controller/UserController.java",
		"com/example/demo/repository/OrderRepository.java",
		"com/example/demo/dto/ProductDto.java",
	}, paths(result.Files))

	require.Len(t, result.Report.Processed, 3)
	assert.Equal(t, models.RoleController, result.Report.Processed[0].Role)
	assert.Equal(t, models.RoleRepository, result.Report.Processed[1].Role)
	assert.Equal(t, models.RoleDataTransferObject, result.Report.Processed[2].Role)
	assert.Empty(t, result.Report.Failed)
	assert.Empty(t, result.Report.Skipped)

	assert.Contains(t, result.Files[0].Content, `@RequestMapping("users")`)
	assert.Contains(t, result.Files[0].Content, "@GetMapping\n    public ResponseEntity<User> getUser(@RequestParam int id)")
	assert.Contains(t, result.Files[1].Content, "extends JpaRepository<Order, Long>")
	assert.Contains(t, result.Files[2].Content, "private double price;")
	assert.NotContains(t, result.Files[2].Content, "private int price;")

	_, err := uuid.Parse(result.Report.RunID)
	assert.NoError(t, err)
	assert.Equal(t, "3 processed, 0 skipped, 0 failed", result.Report.Summary())
}

func TestOrchestrator_Isolation(t *testing.T) {
	descriptors := []map[string]any{
		{"name": "Helper"},
		{"name": "Repository", "decorators": []any{"@Repository"}},
		{"name": "ProductDto"},
		{"name": "UserController", "methods": []any{map[string]any{"name": "getUser"}}},
		{"name": "Broken", "decorators": []any{"@Entity("}},
		{"name": "User", "decorators": []any{"@Entity"}},
	}

	result := NewOrchestrator(models.DefaultOptions(), nil).Process(descriptors)

	assert.Equal(t, []string{
		"com/example/demo/dto/ProductDto.java",
		"com/example/demo/entity/User.java",
	}, paths(result.Files))

	require.Len(t, result.Report.Skipped, 1)
	skipped := result.Report.Skipped[0]
	assert.Equal(t, "Helper", skipped.Class)
	assert.Equal(t, models.RoleUnclassified, skipped.Role)
	var warning *errors.UnclassifiedRoleWarning
	assert.True(t, errors.As(skipped.Err, &warning))

	require.Len(t, result.Report.Failed, 3)
	assert.Equal(t, 1, result.Report.Failed[0].Index)
	assert.Equal(t, errors.NamingConventionCode, errors.CodeOf(result.Report.Failed[0].Err))

	assert.Equal(t, 3, result.Report.Failed[1].Index)
	assert.Equal(t, "UserController", result.Report.Failed[1].Class)
	var malformed *errors.MalformedDescriptorError
	require.True(t, errors.As(result.Report.Failed[1].Err, &malformed))
	assert.Equal(t, "methods[0].returnType", malformed.Key)

	assert.Equal(t, 4, result.Report.Failed[2].Index)
	assert.Equal(t, errors.MalformedDecoratorCode, errors.CodeOf(result.Report.Failed[2].Err))

	assert.True(t, result.Report.HasFailures())
	assert.Equal(t, "2 processed, 1 skipped, 3 failed", result.Report.Summary())

	var multi *errors.MultipleErrors
	require.True(t, errors.As(result.Report.Errors(), &multi))
	assert.Equal(t, 3, multi.Count())
}

func TestOrchestrator_Deterministic(t *testing.T) {
	var descriptors []map[string]any
	for i := 0; i < 40; i++ {
		descriptors = append(descriptors,
			map[string]any{"name": fmt.Sprintf("Item%dDto", i), "properties": []any{
				map[string]any{"name": "value", "type": "number"},
			}},
			map[string]any{"name": fmt.Sprintf("Item%dRepository", i)},
		)
	}

	serial := models.DefaultOptions()
	serial.Workers = 1
	parallel := models.DefaultOptions()
	parallel.Workers = 8

	first := NewOrchestrator(serial, nil).Process(descriptors)
	second := NewOrchestrator(parallel, nil).Process(descriptors)
	third := NewOrchestrator(parallel, nil).Process(descriptors)

	require.Len(t, first.Files, 80)
	assert.Equal(t, first.Files, second.Files)
	assert.Equal(t, second.Files, third.Files)
	assert.NotEqual(t, second.Report.RunID, third.Report.RunID)
}

func cloneClass(t *testing.T, cls *models.Class) *models.Class {
	t.Helper()
	data, err := json.Marshal(cls)
	require.NoError(t, err)
	var out models.Class
	require.NoError(t, json.Unmarshal(data, &out))
	return &out
}

func TestOrchestrator_DoesNotMutateIR(t *testing.T) {
	classes := []*models.Class{
		{
			Name:       "UserController",
			Decorators: []models.Decorator{models.NewDecoratorWithArgs("Controller", "'users'")},
			Extends:    strPtr("Base"),
			Implements: []string{"A", "B"},
			Methods: []models.Method{
				{Name: "createUser", ReturnType: "User | null", Parameters: []models.Parameter{{Name: "userDto", Type: "UserDto"}}},
			},
		},
		{Name: "Billing", Decorators: []models.Decorator{models.NewDecorator("Service")}, Methods: []models.Method{{Name: "run", ReturnType: "void"}}},
		{Name: "User", Decorators: []models.Decorator{models.NewDecorator("Entity")}, Properties: []models.Property{{Name: "id", Type: "number"}}},
	}

	var before []*models.Class
	for _, cls := range classes {
		before = append(before, cloneClass(t, cls))
	}

	opts := models.DefaultOptions()
	opts.WrapOptional = true
	result := NewOrchestrator(opts, nil).Generate(classes)
	require.Len(t, result.Report.Processed, 3)

	for i, cls := range classes {
		assert.Equal(t, before[i], cloneClass(t, cls))
	}
}

func TestOrchestrator_Collisions(t *testing.T) {
	result := NewOrchestrator(models.DefaultOptions(), nil).Generate([]*models.Class{
		{Name: "UserDto"},
		{Name: "OrderDto"},
		{Name: "UserDto"},
	})

	collisions := result.Collisions()
	require.Len(t, collisions, 1)
	assert.Equal(t, "com/example/demo/dto/UserDto.java", collisions[0].Path)
	assert.Equal(t, []string{"UserDto", "UserDto"}, collisions[0].Classes)
}

type panicGenerator struct{}

func (panicGenerator) Role() models.Role { return models.RoleEntity }

func (panicGenerator) Generate(*models.Class, Context) ([]models.LogicalFile, error) {
	panic("boom")
}

func TestOrchestrator_RecoversFromGeneratorPanic(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(panicGenerator{}))
	require.NoError(t, registry.Register(DTOGenerator{}))

	result := NewOrchestratorWithRegistry(models.DefaultOptions(), NopLogger{}, registry).Generate([]*models.Class{
		{Name: "User", Decorators: []models.Decorator{models.NewDecorator("Entity")}},
		{Name: "UserDto"},
		{Name: "UserController", Decorators: []models.Decorator{models.NewDecorator("Controller")}},
	})

	assert.Equal(t, []string{"com/example/demo/dto/UserDto.java"}, paths(result.Files))
	require.Len(t, result.Report.Failed, 2)
	assert.Equal(t, errors.GenerationErrorCode, errors.CodeOf(result.Report.Failed[0].Err))
	assert.Contains(t, result.Report.Failed[0].Reason, "boom")
	assert.Contains(t, result.Report.Failed[1].Reason, "no generator registered")
}

func TestOrchestrator_Empty(t *testing.T) {
	result := NewOrchestrator(models.DefaultOptions(), nil).Process(nil)
	assert.Empty(t, result.Files)
	assert.Equal(t, "0 processed, 0 skipped, 0 failed", result.Report.Summary())
	assert.NoError(t, result.Report.Errors())
}

type recordingLogger struct {
	debug, warn int
}

func (l *recordingLogger) Debug(string, ...interface{}) { l.debug++ }
func (l *recordingLogger) Warn(string, ...interface{})  { l.warn++ }

func TestOrchestrator_Logs(t *testing.T) {
	logger := &recordingLogger{}
	opts := models.DefaultOptions()
	opts.Workers = 1

	NewOrchestrator(opts, logger).Generate([]*models.Class{{Name: "UserDto"}, {Name: "Helper"}})
	assert.Equal(t, 1, logger.debug)
	assert.Equal(t, 1, logger.warn)
}

func TestRegistry(t *testing.T) {
	registry := DefaultRegistry()
	assert.Equal(t, []models.Role{
		models.RoleController,
		models.RoleRepository,
		models.RoleService,
		models.RoleDataTransferObject,
		models.RoleEntity,
	}, registry.Roles())

	assert.Error(t, registry.Register(DTOGenerator{}))

	g, ok := registry.Get(models.RoleService)
	require.True(t, ok)
	assert.Equal(t, models.RoleService, g.Role())

	_, ok = registry.Get(models.RoleUnclassified)
	assert.False(t, ok)
}
