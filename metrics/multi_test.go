package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordSink struct {
	count  int
	err    error
	closed bool
}

func (r *recordSink) RecordPlan(PlanEvent) error {
	r.count++
	return r.err
}

func (r *recordSink) Close() error {
	r.closed = true
	return nil
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordPlan(PlanEvent{Outcome: OutcomeOK}); err != nil {
		t.Fatalf("record plan: %v", err)
	}
	if s1.count != 1 || s2.count != 1 {
		t.Fatalf("events not forwarded")
	}
	require.NoError(t, m.Close())
	assert.True(t, s1.closed)
	assert.True(t, s2.closed)
}

func TestMultiSinkStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	s1 := &recordSink{err: boom}
	s2 := &recordSink{}
	err := NewMultiSink(s1, s2).RecordPlan(PlanEvent{})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, s2.count)
}

func TestNewSink(t *testing.T) {
	sink, err := NewSink(Config{}, prometheus.NewRegistry())
	require.NoError(t, err)
	assert.IsType(t, NopSink{}, sink)

	sink, err = NewSink(Config{PrometheusEnabled: true}, prometheus.NewRegistry())
	require.NoError(t, err)
	assert.IsType(t, &PromSink{}, sink)
}
