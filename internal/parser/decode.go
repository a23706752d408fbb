package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/toyz/stratum/internal/errors"
	"github.com/toyz/stratum/internal/utils/fileops"
)

// Decode reads a descriptor document. JSON arrays and YAML sequences yield one
// descriptor per element; a single object is a one element sequence.
func Decode(data []byte) ([]map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.MalformedDescriptorCode, "failed to decode descriptors", err)
	}

	switch v := doc.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return []map[string]any{v}, nil
	case []any:
		descriptors := make([]map[string]any, len(v))
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, errors.NewInvalidDescriptorError(i, "", fmt.Errorf("expected an object, got %T", item))
			}
			descriptors[i] = m
		}
		return descriptors, nil
	default:
		return nil, errors.New(errors.MalformedDescriptorCode,
			fmt.Sprintf("expected a list of class descriptors, got %T", doc)).
			WithSuggestion("Wrap the descriptors in a JSON array or YAML sequence")
	}
}

// DecodeFile reads and decodes a descriptor file
func DecodeFile(path string) ([]map[string]any, error) {
	content, err := fileops.NewFileOps().ReadFile(path)
	if err != nil {
		return nil, err
	}

	descriptors, err := Decode([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return descriptors, nil
}
