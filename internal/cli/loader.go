package cli

import (
	"github.com/toyz/stratum/internal/parser"
)

// Source records which file a descriptor came from
type Source struct {
	File  string // descriptor file
	Index int    // position inside the file
}

// LoadDescriptors decodes every file in order and concatenates their descriptors.
// The returned sources are parallel to the descriptors.
func LoadDescriptors(files []string) ([]map[string]any, []Source, error) {
	var descriptors []map[string]any
	var sources []Source

	for _, file := range files {
		decoded, err := parser.DecodeFile(file)
		if err != nil {
			return nil, nil, err
		}
		for i, descriptor := range decoded {
			descriptors = append(descriptors, descriptor)
			sources = append(sources, Source{File: file, Index: i})
		}
	}

	return descriptors, sources, nil
}
