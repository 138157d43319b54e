package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewSink builds the sink described by cfg. Zero enabled sinks yield a
// NopSink and a single one is returned unwrapped.
func NewSink(cfg Config, reg prometheus.Registerer) (MetricsSink, error) {
	var sinks []MetricsSink
	if cfg.PrometheusEnabled {
		sink, err := NewPromSinkWithRegistry(reg)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}
	if cfg.InfluxEnabled {
		sinks = append(sinks, NewInfluxSinkWithFallback(cfg))
	}
	switch len(sinks) {
	case 0:
		return NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return NewMultiSink(sinks...), nil
	}
}
