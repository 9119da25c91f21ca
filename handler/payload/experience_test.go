package payload

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestExperienceResponseJSON(t *testing.T) {
	body := []byte(`{"version":"v1","data":[{"title":"Web Developer","company_name":"Think India NITP","img":"/image.png","icon_bg":"#383E56","date":"March 2024 - Present","points":["A","B"]}]}`)
	var res ExperienceResponse

	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if res.Version != "v1" || len(res.Data) != 1 {
		t.Fatalf("unexpected response: %+v", res)
	}

	record := res.Data[0]
	if record.CompanyName != "Think India NITP" || record.IconBg != "#383E56" || len(record.Points) != 2 {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestExperienceResponseYAML(t *testing.T) {
	body := []byte("version: v2\ndata:\n  - title: UI/UX Designer\n    company_name: DesCo NITP\n    icon_bg: \"#E6DEDD\"\n    points: []\n")
	var res ExperienceResponse

	if err := yaml.Unmarshal(body, &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if res.Version != "v2" || res.Data[0].CompanyName != "DesCo NITP" || res.Data[0].IconBg != "#E6DEDD" {
		t.Fatalf("unexpected response: %+v", res)
	}

	if len(res.Data[0].Points) != 0 {
		t.Fatalf("expected empty points")
	}
}
