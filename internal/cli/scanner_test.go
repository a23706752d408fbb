package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/stratum/internal/errors"
)

func TestDirectoryScanner_ScanInputs(t *testing.T) {
	root := t.TempDir()

	// root/
	//   b.json
	//   a.yaml
	//   notes.txt
	//   nested/c.yml
	//   .hidden/d.json
	b := writeFile(t, filepath.Join(root, "b.json"), "[]")
	a := writeFile(t, filepath.Join(root, "a.yaml"), "[]")
	writeFile(t, filepath.Join(root, "notes.txt"), "")
	c := writeFile(t, filepath.Join(root, "nested", "c.yml"), "[]")
	writeFile(t, filepath.Join(root, ".hidden", "d.json"), "[]")

	scanner := NewDirectoryScanner()

	tests := []struct {
		name     string
		inputs   []string
		expected []string
	}{
		{
			name:     "directory is not recursive",
			inputs:   []string{root},
			expected: []string{a, b},
		},
		{
			name:     "recursive pattern",
			inputs:   []string{root + "/..."},
			expected: []string{a, b, c},
		},
		{
			name:     "explicit file keeps input order",
			inputs:   []string{c, root},
			expected: []string{c, a, b},
		},
		{
			name:     "duplicates are dropped",
			inputs:   []string{b, root},
			expected: []string{b, a},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := scanner.ScanInputs(tt.inputs)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, files)
		})
	}
}

func TestDirectoryScanner_SkipsConfigFiles(t *testing.T) {
	root := t.TempDir()

	classes := writeFile(t, filepath.Join(root, "classes.json"), "[]")
	writeFile(t, filepath.Join(root, "stratum.yaml"), "outputDir: out\n")
	custom := writeFile(t, filepath.Join(root, "custom.yml"), "outputDir: out\n")

	scanner := NewDirectoryScanner()
	scanner.Exclude(custom)
	scanner.Exclude("")

	files, err := scanner.ScanInputs([]string{root})
	require.NoError(t, err)
	assert.Equal(t, []string{classes}, files)

	files, err = scanner.ScanInputs([]string{custom})
	require.NoError(t, err)
	assert.Equal(t, []string{custom}, files, "explicit inputs are never excluded")
}

func TestDirectoryScanner_MissingInput(t *testing.T) {
	_, err := NewDirectoryScanner().ScanInputs([]string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	assert.Equal(t, errors.FileSystemErrorCode, errors.CodeOf(err))
}

func TestIsDescriptorFile(t *testing.T) {
	assert.True(t, IsDescriptorFile("a.json"))
	assert.True(t, IsDescriptorFile("a.YAML"))
	assert.True(t, IsDescriptorFile("dir/a.yml"))
	assert.False(t, IsDescriptorFile("a.ts"))
	assert.False(t, IsDescriptorFile("json"))
}
