package handlertests

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

type TestEnvelope struct {
	Version string      `json:"version" yaml:"version"`
	Data    interface{} `json:"data" yaml:"data"`
}

// ExperienceFixture mirrors storage/fixture/experience.json with two records.
func ExperienceFixture(version string) TestEnvelope {
	return TestEnvelope{
		Version: version,
		Data: []map[string]any{
			{
				"title":        "Web Developer",
				"company_name": "Think India NITP",
				"img":          "/image.png",
				"icon_bg":      "#383E56",
				"date":         "March 2024 - Present",
				"points":       []string{"A", "B"},
			},
			{
				"title":        "UI/UX Designer",
				"company_name": "DesCo NITP",
				"img":          "/img3.png",
				"icon_bg":      "#E6DEDD",
				"date":         "Dec 2023 - Present",
				"points":       []string{"C"},
			},
		},
	}
}

func WriteJSON(t *testing.T, v interface{}) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "data-*.json")
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	if err := json.NewEncoder(f).Encode(v); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()
	return f.Name()
}

func WriteYAML(t *testing.T, v interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.yaml")
	out, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func WriteRaw(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}
