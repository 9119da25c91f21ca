package handler

import (
	"log/slog"
	"net/http"

	"github.com/folio/handler/payload"
	"github.com/folio/pkg/endpoint"
	"github.com/folio/pkg/metrics"
	"github.com/folio/pkg/portal"
)

type ExperienceHandler struct {
	fixture FixturePath
}

func NewExperienceHandler(fixture FixturePath) ExperienceHandler {
	return ExperienceHandler{
		fixture: fixture,
	}
}

func (h ExperienceHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	path := h.fixture()
	data, err := portal.ParseFixtureFile[payload.ExperienceResponse](path)

	if err != nil {
		slog.Error("Error reading experience file", "error", err, "path", path)
		metrics.FixtureErrors.WithLabelValues("experience").Inc()

		return endpoint.InternalError("could not read experience data")
	}

	resp := endpoint.NewResponseFrom(data.Version, w, r)

	if resp.HasCache() {
		metrics.NotModified.WithLabelValues("experience").Inc()
		resp.RespondWithNotModified()

		return nil
	}

	if err := resp.RespondOk(data); err != nil {
		slog.Error("Error marshaling JSON for experience response", "error", err)

		return nil
	}

	return nil
}
