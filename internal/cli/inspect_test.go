package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/toyz/stratum/internal/classifier"
	"github.com/toyz/stratum/internal/models"
)

func TestGenerator_BuildIR(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, filepath.Join(dir, "mixed.yaml"), mixedYAML)

	diagnostics, _ := quietDiagnostics()
	reporter, reported := testReporter()

	classes, err := NewGenerator(diagnostics, reporter).BuildIR([]string{input})
	require.Error(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "Helper", classes[0].Name)
	assert.Equal(t, "AuditDto", classes[1].Name)
	assert.Contains(t, reported.String(), "methods[0].returnType")
}

func TestWriteIR(t *testing.T) {
	arguments := "'users'"
	classes := []*models.Class{
		{
			Name:       "UserController",
			Decorators: []models.Decorator{{Name: "Controller", Arguments: &arguments}},
			Methods:    []models.Method{{Name: "list", ReturnType: "User[]"}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteIR(&buf, classes))

	var decoded []*models.Class
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, classes, decoded)
	assert.Contains(t, buf.String(), "- name: UserController")
}

func TestWriteClassifications(t *testing.T) {
	var buf bytes.Buffer
	err := WriteClassifications(&buf, []classifier.Classification{
		{Name: "UserController", Role: models.RoleController, Rule: "decorator controller"},
		{Name: "Helper", Role: models.RoleUnclassified, Rule: "no rule matched"},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"UserController  controller   (decorator controller)\n"+
			"Helper          unclassified (no rule matched)\n",
		buf.String())
}
