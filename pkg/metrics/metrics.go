package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "folio"

var (
	TimelineRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timeline_renders_total",
		Help:      "Timeline renders that went through the template, by variant.",
	}, []string{"variant"})

	TimelineCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timeline_cache_hits_total",
		Help:      "Timeline responses served from the rendered page cache, by variant.",
	}, []string{"variant"})

	NotModified = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "not_modified_total",
		Help:      "Requests answered with 304 Not Modified, by route.",
	}, []string{"route"})

	FixtureErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fixture_errors_total",
		Help:      "Fixture files that could not be read or decoded, by fixture.",
	}, []string{"fixture"})
)
