package handler

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/folio/handler/payload"
	"github.com/folio/pkg/cache"
	"github.com/folio/pkg/endpoint"
	"github.com/folio/pkg/metrics"
	"github.com/folio/pkg/portal"
	"github.com/folio/pkg/timeline"
)

const (
	TimelinePage     = "page"
	TimelineFragment = "fragment"

	timelineCacheTTL = 5 * time.Minute
)

var tracer = otel.Tracer("github.com/folio/handler")

// TimelineHandler serves the rendered experience timeline. Browsers get the
// full page; htmx swaps ask for the bare section.
type TimelineHandler struct {
	fixture  FixturePath
	renderer *timeline.Renderer
	cache    *cache.TTLCache
}

func NewTimelineHandler(fixture FixturePath, renderer *timeline.Renderer, store *cache.TTLCache) TimelineHandler {
	return TimelineHandler{
		fixture:  fixture,
		renderer: renderer,
		cache:    store,
	}
}

func (h TimelineHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	path := h.fixture()
	data, err := portal.ParseFixtureFile[payload.ExperienceResponse](path)

	if err != nil {
		slog.Error("Error reading experience file", "error", err, "path", path)
		metrics.FixtureErrors.WithLabelValues("experience").Inc()

		return endpoint.InternalError("could not read experience data")
	}

	variant := TimelineVariant(r)
	resp := endpoint.NewResponseFrom(data.Version+"-"+variant, w, r).AsHTML()

	resp.WithHeaders(func(w http.ResponseWriter) {
		w.Header().Add("Vary", portal.HtmxRequestHeader)
	})

	if resp.HasCache() {
		metrics.NotModified.WithLabelValues("timeline").Inc()
		resp.RespondWithNotModified()

		return nil
	}

	body, err := h.render(r.Context(), data, variant)

	if err != nil {
		return endpoint.LogInternalError("could not render experience timeline", err)
	}

	if err := resp.RespondHTML(body); err != nil {
		slog.Error("Error writing timeline response", "error", err)

		return nil
	}

	return nil
}

func (h TimelineHandler) render(ctx context.Context, data payload.ExperienceResponse, variant string) ([]byte, error) {
	key := data.Version + ":" + variant

	if h.cache != nil {
		if body, ok := h.cache.Get(key); ok {
			metrics.TimelineCacheHits.WithLabelValues(variant).Inc()

			return body, nil
		}
	}

	_, span := tracer.Start(ctx, "timeline.render")
	defer span.End()

	span.SetAttributes(
		attribute.Int("experience.count", len(data.Data)),
		attribute.String("experience.version", data.Version),
		attribute.String("timeline.variant", variant),
	)

	var buf bytes.Buffer

	if variant == TimelineFragment {
		err := h.renderer.RenderSection(&buf, data.Data)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "render section")

			return nil, err
		}
	} else {
		err := h.renderer.RenderPage(&buf, data.Data)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "render page")

			return nil, err
		}
	}

	metrics.TimelineRenders.WithLabelValues(variant).Inc()

	if h.cache != nil {
		h.cache.Set(key, buf.Bytes(), timelineCacheTTL)
	}

	return buf.Bytes(), nil
}

// TimelineVariant picks the fragment for htmx requests and the full page
// otherwise.
func TimelineVariant(r *http.Request) string {
	if r.Header.Get(portal.HtmxRequestHeader) == "true" {
		return TimelineFragment
	}

	return TimelinePage
}
