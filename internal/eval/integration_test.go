package eval_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sunholo/stimpl/internal/ast"
	"github.com/sunholo/stimpl/internal/eval"
	"github.com/sunholo/stimpl/testutil"
)

// TestSampleProgramsFromYAML loads each fixture under testdata/programs/,
// re-encodes it from YAML into the JSON wire shape ast.Decode expects, and
// checks the driver's stdout against a golden file. The fixtures describe
// the same tagged node shapes as internal/ast/decode_test.go's JSON
// documents; YAML is used here only as a more readable manifest format for
// a whole sample program.
func TestSampleProgramsFromYAML(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("..", "..", "testdata", "programs", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "expected at least one sample program fixture")

	for _, path := range matches {
		path := path
		name := strings.TrimSuffix(filepath.Base(path), ".yaml")

		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(path)
			require.NoError(t, err)

			var doc any
			require.NoError(t, yaml.Unmarshal(data, &doc))

			wire, err := json.Marshal(doc)
			require.NoError(t, err)

			program, err := ast.Decode(wire)
			require.NoError(t, err)

			var out bytes.Buffer
			_, _, _, err = eval.Run(program, &out)
			require.NoError(t, err)

			testutil.CompareWithGolden(t, "programs", name, out.String())
		})
	}
}
