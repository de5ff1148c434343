package repl

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/stimpl/internal/config"
)

func writeProgram(t *testing.T, dir string) string {
	t.Helper()
	doc := map[string]any{
		"node": "Program",
		"exprs": []any{
			map[string]any{
				"node":     "Assign",
				"variable": map[string]any{"node": "Variable", "variable_name": "x"},
				"value":    map[string]any{"node": "IntLiteral", "literal": 41},
			},
			map[string]any{
				"node": "Assign",
				"variable": map[string]any{"node": "Variable", "variable_name": "x"},
				"value": map[string]any{
					"node":  "Add",
					"left":  map[string]any{"node": "Variable", "variable_name": "x"},
					"right": map[string]any{"node": "IntLiteral", "literal": 1},
				},
			},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(dir, "program.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReplLoadAndRun(t *testing.T) {
	dir := t.TempDir()
	path := writeProgram(t, dir)

	var out bytes.Buffer
	r := New(&config.Config{HistoryFile: filepath.Join(dir, "hist")}, &out)

	r.dispatch(":load "+path, &out)
	assert.Contains(t, out.String(), "loaded")

	out.Reset()
	r.dispatch(":run", &out)
	assert.Contains(t, out.String(), "42, Integer")

	out.Reset()
	r.dispatch(":env", &out)
	assert.Contains(t, out.String(), "x: 42 (Integer)")
}

func TestReplRunWithoutLoadReportsError(t *testing.T) {
	var out bytes.Buffer
	r := New(config.Default(), &out)

	r.dispatch(":run", &out)
	assert.Contains(t, out.String(), "no program loaded")
}
