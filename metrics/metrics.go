package metrics

import (
	"fmt"
	"time"
)

// Outcome classifies how a plan request ended.
type Outcome string

const (
	OutcomeOK            Outcome = "ok"
	OutcomeParseError    Outcome = "parse_error"
	OutcomeUpstreamError Outcome = "upstream_error"
)

// PlanEvent describes a single plan request for observability purposes.
type PlanEvent struct {
	RequestID string
	Tasks     int
	Outcome   Outcome
	// Latency is the time spent waiting on the completion API.
	Latency time.Duration
	Time    time.Time
}

// MetricsSink records plan events.
type MetricsSink interface {
	RecordPlan(ev PlanEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlan(PlanEvent) error { return nil }

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":9100"
	}
}

// Validate checks that enabled sinks are fully configured.
func (c Config) Validate() error {
	if c.InfluxEnabled && (c.InfluxURL == "" || c.InfluxOrg == "" || c.InfluxBucket == "") {
		return fmt.Errorf("influx_url, influx_org and influx_bucket are required when influx is enabled")
	}
	return nil
}
