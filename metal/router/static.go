package router

import (
	"net/http"

	"github.com/folio/metal/env"
	"github.com/folio/pkg/endpoint"
)

type StaticRouteResource interface {
	Handle(http.ResponseWriter, *http.Request) *endpoint.ApiError
}

// StaticRoute is a GET route the exporter can replay into a file under
// OutputDir.
type StaticRoute struct {
	Path     string
	File     string
	Resource StaticRouteResource
}

type WebsiteRoutes struct {
	OutputDir string
	Lang      string
	SiteName  string
	SiteURL   string
	Fixture   Fixture
	routes    []StaticRoute
}

func NewWebsiteRoutes(e *env.Environment) *WebsiteRoutes {
	return &WebsiteRoutes{
		SiteURL:   e.App.URL,
		SiteName:  e.App.Name,
		Lang:      e.App.Lang(),
		OutputDir: e.Static.ExportDir,
		Fixture:   NewFixture(e.Static.FixturesDir),
	}
}

func (w *WebsiteRoutes) AddRoute(path, file string, resource StaticRouteResource) {
	w.routes = append(w.routes, StaticRoute{
		Path:     path,
		File:     file,
		Resource: resource,
	})
}

// Routes returns the registered static routes in registration order.
func (w *WebsiteRoutes) Routes() []StaticRoute {
	out := make([]StaticRoute, len(w.routes))
	copy(out, w.routes)

	return out
}
