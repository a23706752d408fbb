package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/stratum/internal/templates"
)

func TestCleaner_CleanGeneratedFiles(t *testing.T) {
	root := t.TempDir()

	generated := writeFile(t, filepath.Join(root, "com", "example", "dto", "UserDto.java"),
		templates.GeneratedHeader+"\npackage com.example.dto;\n")
	nested := writeFile(t, filepath.Join(root, "com", "example", "entity", "User.java"),
		templates.GeneratedHeader+"\npackage com.example.entity;\n")
	handWritten := writeFile(t, filepath.Join(root, "com", "example", "Application.java"),
		"package com.example;\n")
	other := writeFile(t, filepath.Join(root, "build.gradle"), templates.GeneratedHeader+"\n")
	empty := writeFile(t, filepath.Join(root, "Empty.java"), "")

	removed, err := NewCleaner().CleanGeneratedFiles([]string{root, filepath.Join(root, "missing")})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{generated, nested}, removed)
	assert.NoFileExists(t, generated)
	assert.NoFileExists(t, nested)
	assert.FileExists(t, handWritten)
	assert.FileExists(t, other)
	assert.FileExists(t, empty)
}

func TestCleaner_RemovesWhatGeneratorWrote(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, filepath.Join(dir, "classes.json"), scenarioJSON)
	out := filepath.Join(dir, "out")

	diagnostics, _ := quietDiagnostics()
	_, err := NewGenerator(diagnostics, nil).Run(Config{Inputs: []string{input}, Options: testOptions(out)})
	require.NoError(t, err)

	removed, err := NewCleaner().CleanGeneratedFiles([]string{out + "/..."})
	require.NoError(t, err)
	assert.Len(t, removed, 3)
	assert.FileExists(t, filepath.Join(out, "build.gradle"))
}

func TestIsGeneratedFile(t *testing.T) {
	dir := t.TempDir()

	yes, err := IsGeneratedFile(writeFile(t, filepath.Join(dir, "A.java"), templates.GeneratedHeader+"\r\n"))
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := IsGeneratedFile(writeFile(t, filepath.Join(dir, "B.java"), "// "+templates.GeneratedHeader+"\n"))
	require.NoError(t, err)
	assert.False(t, no)

	_, err = IsGeneratedFile(filepath.Join(dir, "missing.java"))
	assert.Error(t, err)
}
