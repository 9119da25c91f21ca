package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/folio/handler/payload"
	handlertests "github.com/folio/handler/tests"
)

func TestExperienceHandler(t *testing.T) {
	runFileHandlerTest(t, fileHandlerTestCase{
		make:     func(f string) fileHandler { return NewExperienceHandler(FixtureFile(f)) },
		endpoint: "/experience",
		fixture:  handlertests.WriteJSON(t, handlertests.ExperienceFixture("v1")),
		assert:   assertFirstTitle("Web Developer"),
	})
}

func TestExperienceHandlerReadsYaml(t *testing.T) {
	file := handlertests.WriteYAML(t, handlertests.ExperienceFixture("v2"))
	h := NewExperienceHandler(FixtureFile(file))

	req := httptest.NewRequest("GET", "/experience", nil)
	rec := httptest.NewRecorder()

	if err := h.Handle(rec, req); err != nil {
		t.Fatalf("err: %v", err)
	}

	if rec.Header().Get("ETag") != `"v2"` {
		t.Fatalf("etag %q", rec.Header().Get("ETag"))
	}

	var resp payload.ExperienceResponse

	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(resp.Data) != 2 || resp.Data[1].CompanyName != "DesCo NITP" {
		t.Fatalf("unexpected payload: %+v", resp)
	}

	if len(resp.Data[0].Points) != 2 {
		t.Fatalf("points %v", resp.Data[0].Points)
	}
}

func TestExperienceHandlerMissingFile(t *testing.T) {
	h := NewExperienceHandler(FixtureFile("/nonexistent/experience.json"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/experience", nil)

	err := h.Handle(rec, req)

	if err == nil || err.Status != http.StatusInternalServerError {
		t.Fatalf("expected internal error, got %#v", err)
	}
}
