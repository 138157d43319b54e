package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromSink_RecordPlan(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	events := []PlanEvent{
		{RequestID: "r1", Tasks: 2, Outcome: OutcomeOK, Latency: 800 * time.Millisecond},
		{RequestID: "r2", Tasks: 1, Outcome: OutcomeOK, Latency: time.Second},
		{RequestID: "r3", Tasks: 3, Outcome: OutcomeParseError, Latency: 2 * time.Second},
	}
	for _, ev := range events {
		if err := sink.RecordPlan(ev); err != nil {
			t.Fatalf("record error: %v", err)
		}
	}

	expected := `
# HELP plan_requests_total Total number of plan requests by outcome
# TYPE plan_requests_total counter
plan_requests_total{outcome="ok"} 2
plan_requests_total{outcome="parse_error"} 1
`
	if err := testutil.CollectAndCompare(sink.requests, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	if c := testutil.CollectAndCount(sink.latency); c != 2 {
		t.Errorf("expected latency series for 2 outcomes, got %d", c)
	}
	if c := testutil.CollectAndCount(sink.tasks); c != 1 {
		t.Errorf("tasks histogram not recorded")
	}
}

func TestPromSink_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	second, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, first.RecordPlan(PlanEvent{Outcome: OutcomeUpstreamError}))
	assert.Equal(t, 1.0, testutil.ToFloat64(second.requests.WithLabelValues("upstream_error")))
}

func TestPromHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	require.NoError(t, sink.RecordPlan(PlanEvent{Outcome: OutcomeOK, Tasks: 1}))

	rr := httptest.NewRecorder()
	PromHandler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `plan_requests_total{outcome="ok"} 1`)
}
