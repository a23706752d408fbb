package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toyz/stratum/internal/models"
	"github.com/toyz/stratum/internal/utils"
)

const scenarioJSON = `[
  {"name": "UserController", "decorators": ["@Controller('users')"],
   "methods": [{"name": "getUser", "returnType": "User", "parameters": [{"name": "id", "type": "number"}]}]},
  {"name": "OrderRepository", "decorators": []},
  {"name": "ProductDto", "properties": [{"name": "price", "type": "number"}]}
]`

const mixedYAML = `- name: Helper
- name: BrokenController
  decorators: ["@Controller"]
  methods:
    - name: list
- name: AuditDto
  properties:
    - name: at
      type: Date
`

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func quietDiagnostics() (*utils.DiagnosticSystem, *bytes.Buffer) {
	d := utils.NewDiagnosticSystem(utils.DiagnosticDebug)
	out := &bytes.Buffer{}
	d.SetOutput(out, out)
	d.SetColors(false)
	d.SetShowTime(false)
	return d, out
}

func testReporter() (*DiagnosticReporter, *bytes.Buffer) {
	r := NewDiagnosticReporter(true)
	out := &bytes.Buffer{}
	r.SetOutput(out)
	r.SetColors(false)
	return r, out
}

func testOptions(outputRoot string) models.Options {
	opts := models.DefaultOptions()
	opts.OutputRoot = outputRoot
	opts.Workers = 2
	return opts
}
