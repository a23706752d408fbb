package parser

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/toyz/stratum/internal/annotations"
	"github.com/toyz/stratum/internal/errors"
	"github.com/toyz/stratum/internal/models"
)

// nested lists the element lists of a descriptor and the keys each element
// must carry, in the order they are checked
var nested = []struct {
	key      string
	required []string
}{
	{"properties", []string{"name", "type"}},
	{"constructorParams", []string{"name", "type"}},
	{"methods", []string{"name", "returnType"}},
	{"parameters", []string{"name", "type"}},
}

// Build converts the descriptor at position index into an IR class.
// The descriptor map is not modified.
func Build(index int, raw map[string]any) (*models.Class, error) {
	if err := requireString(index, raw, "", "name"); err != nil {
		return nil, err
	}
	name := raw["name"].(string)
	if name == "" {
		return nil, errors.NewMalformedDescriptorError(index, "name")
	}
	loc := errors.NewLocation(index, name)

	normalized, err := normalize(index, raw, "", loc)
	if err != nil {
		return nil, err
	}

	var desc classDescriptor
	if err := decode(normalized, &desc); err != nil {
		return nil, errors.NewInvalidDescriptorError(index, "", err)
	}

	return desc.toClass(), nil
}

// BuildAll builds every descriptor. Failed descriptors leave a nil entry in
// the returned slice and are collected in the returned error.
func BuildAll(descriptors []map[string]any) ([]*models.Class, error) {
	classes := make([]*models.Class, len(descriptors))
	var multi *errors.MultipleErrors
	for i, raw := range descriptors {
		cls, err := Build(i, raw)
		if err != nil {
			var se errors.StratumError
			if errors.As(err, &se) {
				errors.AddToMultiple(&multi, se)
			} else {
				errors.AddToMultiple(&multi, errors.NewInvalidDescriptorError(i, "", err))
			}
			continue
		}
		classes[i] = cls
	}
	return classes, multi.ErrOrNil()
}

func decode(input map[string]any, out *classDescriptor) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// normalize copies a descriptor level, checking required keys, folding the
// "access" alias into "accessModifier" and parsing decorator tokens
func normalize(index int, raw map[string]any, prefix string, loc errors.Location) (map[string]any, error) {
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		out[key] = value
	}

	if access, ok := out["access"]; ok {
		if _, exists := out["accessModifier"]; !exists {
			out["accessModifier"] = access
		}
		delete(out, "access")
	}

	if value, ok := out["decorators"]; ok && value != nil {
		decorators, err := normalizeDecorators(index, value, prefix+"decorators", loc)
		if err != nil {
			return nil, err
		}
		out["decorators"] = decorators
	}

	for _, list := range nested {
		key := list.key
		value, ok := out[key]
		if !ok || value == nil {
			continue
		}
		items, ok := value.([]any)
		if !ok {
			return nil, errors.NewInvalidDescriptorError(index, prefix+key, fmt.Errorf("expected a list, got %T", value))
		}

		normalized := make([]any, len(items))
		for i, item := range items {
			path := fmt.Sprintf("%s%s[%d]", prefix, key, i)
			element, ok := item.(map[string]any)
			if !ok {
				return nil, errors.NewInvalidDescriptorError(index, path, fmt.Errorf("expected an object, got %T", item))
			}
			for _, field := range list.required {
				if err := requireString(index, element, path+".", field); err != nil {
					return nil, err
				}
			}
			child, err := normalize(index, element, path+".", loc)
			if err != nil {
				return nil, err
			}
			normalized[i] = child
		}
		out[key] = normalized
	}

	return out, nil
}

// normalizeDecorators turns decorator tokens into name/arguments objects
func normalizeDecorators(index int, value any, path string, loc errors.Location) ([]any, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, errors.NewInvalidDescriptorError(index, path, fmt.Errorf("expected a list, got %T", value))
	}

	out := make([]any, len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		switch d := item.(type) {
		case string:
			decorator, err := annotations.ParseDecorator(d)
			if err != nil {
				var malformed *errors.MalformedDecoratorError
				if errors.As(err, &malformed) {
					malformed.WithLocation(loc).WithContext("key", itemPath)
				}
				return nil, err
			}
			entry := map[string]any{"name": decorator.Name}
			if args, ok := decorator.Args(); ok {
				entry["arguments"] = args
			}
			out[i] = entry
		case map[string]any:
			if err := requireString(index, d, itemPath+".", "name"); err != nil {
				return nil, err
			}
			out[i] = d
		default:
			return nil, errors.NewInvalidDescriptorError(index, itemPath, fmt.Errorf("expected a string or an object, got %T", item))
		}
	}
	return out, nil
}

// requireString checks that raw[key] exists and holds a string
func requireString(index int, raw map[string]any, prefix, key string) error {
	value, ok := raw[key]
	if !ok || value == nil {
		return errors.NewMalformedDescriptorError(index, prefix+key)
	}
	if _, ok := value.(string); !ok {
		return errors.NewInvalidDescriptorError(index, prefix+key, fmt.Errorf("expected a string, got %T", value))
	}
	return nil
}

func (d classDescriptor) toClass() *models.Class {
	cls := &models.Class{
		Name:       d.Name,
		Decorators: toDecorators(d.Decorators),
	}

	if d.Extends != nil && *d.Extends != "" {
		extends := *d.Extends
		cls.Extends = &extends
	}

	seen := make(map[string]bool)
	for _, iface := range d.Implements {
		if iface == "" || seen[iface] {
			continue
		}
		seen[iface] = true
		cls.Implements = append(cls.Implements, iface)
	}

	for _, p := range d.Properties {
		cls.Properties = append(cls.Properties, models.Property{
			Name:           p.Name,
			Type:           p.Type,
			AccessModifier: p.AccessModifier,
			IsReadonly:     p.IsReadonly,
			Decorators:     toDecorators(p.Decorators),
		})
	}

	cls.ConstructorParams = toParameters(d.ConstructorParams)

	for _, m := range d.Methods {
		cls.Methods = append(cls.Methods, models.Method{
			Name:       m.Name,
			ReturnType: m.ReturnType,
			Parameters: toParameters(m.Parameters),
			Decorators: toDecorators(m.Decorators),
		})
	}

	return cls
}

func toParameters(params []parameterDescriptor) []models.Parameter {
	var out []models.Parameter
	for _, p := range params {
		out = append(out, models.Parameter{
			Name:       p.Name,
			Type:       p.Type,
			Decorators: toDecorators(p.Decorators),
		})
	}
	return out
}

func toDecorators(decorators []decoratorDescriptor) []models.Decorator {
	var out []models.Decorator
	for _, d := range decorators {
		out = append(out, models.Decorator{Name: d.Name, Arguments: d.Arguments})
	}
	return out
}
