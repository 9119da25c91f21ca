package router

import (
	"net/http"

	"github.com/folio/handler"
	"github.com/folio/metal/env"
	"github.com/folio/pkg/cache"
	"github.com/folio/pkg/endpoint"
	"github.com/folio/pkg/middleware"
	"github.com/folio/pkg/timeline"
)

const (
	ExperiencePath = "/experience"
	TimelinePath   = "/experience/timeline"
)

type Router struct {
	Env           *env.Environment
	Mux           *http.ServeMux
	Pipeline      middleware.Pipeline
	WebsiteRoutes *WebsiteRoutes
	Renderer      *timeline.Renderer
	Cache         *cache.TTLCache
}

func (r *Router) PublicPipelineFor(apiHandler endpoint.ApiHandler) http.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Public(apiHandler),
	)
}

func (r *Router) Experience() {
	abstract := handler.NewExperienceHandler(
		r.WebsiteRoutes.Fixture.GetExperience,
	)

	r.addStaticRoute(ExperiencePath, "experience.json", abstract)
}

func (r *Router) Timeline() {
	abstract := handler.NewTimelineHandler(
		r.WebsiteRoutes.Fixture.GetExperience,
		r.Renderer,
		r.Cache,
	)

	r.addStaticRoute(TimelinePath, "experience/timeline.html", abstract)
}

func (r *Router) KeepAlive() {
	abstract := handler.NewKeepAliveHandler(&r.Env.Ping)

	apiHandler := endpoint.NewApiHandler(
		r.Pipeline.Chain(abstract.Handle, r.Pipeline.RequestID.Handle),
	)

	r.Mux.HandleFunc("GET /ping", apiHandler)
}

func (r *Router) Metrics() {
	r.Mux.Handle("GET /metrics", handler.NewMetricsHandler())
}

func (r *Router) addStaticRoute(path, file string, resource StaticRouteResource) {
	r.WebsiteRoutes.AddRoute(path, file, resource)

	r.Mux.HandleFunc("GET "+path, r.PublicPipelineFor(resource.Handle))
}
