package monitoring

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/config"
)

func TestNewSentryMonitorDisabled(t *testing.T) {
	m, err := NewSentryMonitor(config.SentryConfig{})
	require.NoError(t, err)
	assert.IsType(t, NopMonitor{}, m)
	m.CaptureException(errors.New("ignored"), nil)
	m.Flush(time.Millisecond)
}

func TestNewSentryMonitorInvalidDSN(t *testing.T) {
	_, err := NewSentryMonitor(config.SentryConfig{DSN: "not a dsn"})
	assert.Error(t, err)
}

func TestSentryMonitorCapture(t *testing.T) {
	// The project id makes the DSN valid; nothing listens on the host, so
	// events are dropped by the transport.
	m, err := NewSentryMonitor(config.SentryConfig{DSN: "http://public@127.0.0.1:1/42", Environment: "test"})
	require.NoError(t, err)
	m.CaptureException(nil, nil)
	m.CaptureException(errors.New("upstream down"), map[string]string{"kind": "upstream"})
	m.Flush(10 * time.Millisecond)
}
