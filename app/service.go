package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/api/plan"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/config"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/llm"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/logger"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/metrics"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/monitoring"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/planner"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/server"
)

// Service wires the planner, its HTTP surface and the observability sinks.
type Service struct {
	Planner *planner.Planner
	Server  *server.Server
	sink    metrics.MetricsSink
	monitor monitoring.Monitor
	log     logger.Logger
	metrics metrics.Config
	gather  prometheus.Gatherer
}

// Option customizes New.
type Option func(*options)

type options struct {
	completer llm.Completer
	registry  *prometheus.Registry
}

// WithCompleter replaces the OpenAI client.
func WithCompleter(c llm.Completer) Option {
	return func(o *options) { o.completer = c }
}

// WithRegistry registers metrics on reg instead of the default registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// New creates a Service from the configuration.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logger.SetDebug(cfg.Server.Debug)
	logg := logger.New("service")

	var (
		reg    prometheus.Registerer = prometheus.DefaultRegisterer
		gather prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if o.registry != nil {
		reg, gather = o.registry, o.registry
	}
	sink, err := metrics.NewSink(cfg.Metrics, reg)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	mon, err := monitoring.NewSentryMonitor(cfg.Sentry)
	if err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}

	completer := o.completer
	if completer == nil {
		if cfg.OpenAI.APIKey == "" {
			logg.Warnf("OPENAI_API_KEY is not set; plan requests will fail")
		}
		completer = llm.NewOpenAIClient(cfg.OpenAI)
	}
	p := planner.New(completer, logger.New("planner"))
	handler := plan.NewHandler(p, sink, mon, logger.New("plan-handler"))

	return &Service{
		Planner: p,
		Server:  server.New(cfg.Server, handler, logger.New("http")),
		sink:    sink,
		monitor: mon,
		log:     logg,
		metrics: cfg.Metrics,
		gather:  gather,
	}, nil
}

// Handler returns the root HTTP handler of the API.
func (s *Service) Handler() http.Handler { return s.Server.Handler() }

// Run starts the servers and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.metrics.PrometheusPort, s.gather, logger.New("metrics")); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	return s.Server.Start(ctx)
}

// Close flushes pending error reports and releases metrics resources.
func (s *Service) Close() error {
	s.monitor.Flush(2 * time.Second)
	if c, ok := s.sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
