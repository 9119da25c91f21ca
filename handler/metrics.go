package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsHandler struct {
	next http.Handler
}

func NewMetricsHandler() MetricsHandler {
	return MetricsHandler{next: promhttp.Handler()}
}

// ServeHTTP exposes the default registry. It bypasses the ApiError flow since
// Prometheus writes its own exposition format.
func (h MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.next.ServeHTTP(w, r)
}
