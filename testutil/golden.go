// Package testutil provides golden-file helpers for evaluator tests,
// narrowed to a plain-text comparison of captured output such as the
// evaluator's Print stdout.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// UpdateGoldens controls whether CompareWithGolden overwrites the golden
// file instead of comparing against it. Set via
// UPDATE_GOLDENS=true go test ./...
var UpdateGoldens = os.Getenv("UPDATE_GOLDENS") == "true"

// GoldenPath returns the path to a golden file for the given feature and
// scenario name.
func GoldenPath(feature, name string) string {
	return filepath.Join("testdata", feature, name+".golden")
}

// CompareWithGolden compares actual text against the golden file for
// feature/name, writing the golden file instead if UpdateGoldens is set.
func CompareWithGolden(t *testing.T, feature, name, actual string) {
	t.Helper()

	path := GoldenPath(feature, name)

	if UpdateGoldens {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(actual), 0o644); err != nil {
			t.Fatalf("writing golden file: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading golden file %s (run with UPDATE_GOLDENS=true to create it): %v", path, err)
	}

	if string(want) != actual {
		t.Errorf("golden mismatch for %s/%s:\nwant:\n%s\ngot:\n%s", feature, name, want, actual)
	}
}
