package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-answerfmt/pkg/fixture"
)

// MustLoadSheet loads an answer sheet fixture, failing the test on error.
func MustLoadSheet(t *testing.T, path string) fixture.Sheet {
	t.Helper()

	sheet, err := fixture.Load(path)
	if err != nil {
		t.Fatalf("load sheet: %v", err)
	}
	return sheet
}

// StaticLookup resolves item codes from a fixed map, ignoring media folder
// and language. Unknown codes resolve to themselves.
type StaticLookup map[string]string

// ItemLabel implements format.ItemLookup.
func (s StaticLookup) ItemLabel(code, _, _ string) string {
	if label, ok := s[code]; ok {
		return label
	}
	return code
}

// MustLoadGoldenJSON decodes a JSON golden file into out.
func MustLoadGoldenJSON(t *testing.T, path string, out any) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set and
// reports whether it did, so the caller can skip the comparison.
func WriteGolden(t *testing.T, path string, value any) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
