package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersIncrementPerLabel(t *testing.T) {
	before := testutil.ToFloat64(TimelineRenders.WithLabelValues("page"))
	other := testutil.ToFloat64(TimelineRenders.WithLabelValues("fragment"))

	TimelineRenders.WithLabelValues("page").Inc()

	if got := testutil.ToFloat64(TimelineRenders.WithLabelValues("page")); got != before+1 {
		t.Fatalf("page renders = %v, want %v", got, before+1)
	}

	if got := testutil.ToFloat64(TimelineRenders.WithLabelValues("fragment")); got != other {
		t.Fatalf("fragment renders changed: %v", got)
	}
}

func TestCollectorsAreRegistered(t *testing.T) {
	FixtureErrors.WithLabelValues("experience").Inc()

	if n := testutil.CollectAndCount(FixtureErrors); n < 1 {
		t.Fatalf("expected collected series, got %d", n)
	}
}
