package portal

import (
	"os"
	"path/filepath"
	"testing"
)

type fixtureDoc struct {
	Version string   `json:"version" yaml:"version"`
	Items   []string `json:"items" yaml:"items"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}

	return path
}

func TestParseFixtureFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json", "doc.json", `{"version":"v1","items":["a","b"]}`},
		{"yaml", "doc.yaml", "version: v1\nitems:\n  - a\n  - b\n"},
		{"yml", "doc.yml", "version: v1\nitems: [a, b]\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseFixtureFile[fixtureDoc](writeFile(t, tt.file, tt.content))

			if err != nil {
				t.Fatalf("parse: %v", err)
			}

			if doc.Version != "v1" || len(doc.Items) != 2 || doc.Items[1] != "b" {
				t.Fatalf("unexpected doc %+v", doc)
			}
		})
	}
}

func TestParseFixtureFileErrors(t *testing.T) {
	if _, err := ParseFixtureFile[fixtureDoc](filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	if _, err := ParseFixtureFile[fixtureDoc](writeFile(t, "bad.json", "{")); err == nil {
		t.Fatalf("expected error for malformed json")
	}

	if _, err := ParseFixtureFile[fixtureDoc](writeFile(t, "bad.yaml", "version: [")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}
