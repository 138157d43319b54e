package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records plan events in Prometheus metrics.
type PromSink struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	tasks    prometheus.Histogram
}

// NewPromSink registers plan metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using cfg.PrometheusPort.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_requests_total",
		Help: "Total number of plan requests by outcome",
	}, []string{"outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "plan_completion_latency_seconds",
		Help:    "Time spent waiting on the completion API",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
	}, []string{"outcome"})
	tasks := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "plan_request_tasks",
		Help:    "Number of tasks submitted per plan request",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})

	if err := reg.Register(requests); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			requests = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(latency); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			latency = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(tasks); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			tasks = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{requests: requests, latency: latency, tasks: tasks}, nil
}

// RecordPlan counts the request and observes its latency and size.
func (s *PromSink) RecordPlan(ev PlanEvent) error {
	outcome := string(ev.Outcome)
	s.requests.WithLabelValues(outcome).Inc()
	s.latency.WithLabelValues(outcome).Observe(ev.Latency.Seconds())
	s.tasks.Observe(float64(ev.Tasks))
	return nil
}
