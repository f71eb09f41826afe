package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSoundbankMetricsRegisters(t *testing.T) {
	t.Parallel()
	registry := prometheus.NewRegistry()

	m, err := NewSoundbankMetrics(registry)
	require.NoError(t, err)
	require.NotNil(t, m)

	// Registering the same collector twice must fail.
	_, err = NewSoundbankMetrics(registry)
	require.Error(t, err)
}

func TestRecordingUpdatesCollectors(t *testing.T) {
	t.Parallel()
	m, err := NewSoundbankMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	m.RecordBufferLoad("ui", "success")
	m.RecordBufferLoad("ui", "success")
	m.RecordBufferLoad("ui", "error")
	m.RecordBufferUnload("ui", "denied")
	m.SetRegisteredBuffers("ui", 5)
	m.AddLoadedBuffers("ui", 2)
	m.AddLoadedBuffers("ui", -1)
	m.RecordBufferLoadDuration("ui", 0.01)

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.bufferLoadsTotal.WithLabelValues("ui", "success")), 0.001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.bufferLoadsTotal.WithLabelValues("ui", "error")), 0.001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.bufferUnloadsTotal.WithLabelValues("ui", "denied")), 0.001)
	assert.InDelta(t, 5.0, testutil.ToFloat64(m.registeredBuffersGauge.WithLabelValues("ui")), 0.001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.loadedBuffersGauge.WithLabelValues("ui")), 0.001)
}

func TestNilRecorderIsSafe(t *testing.T) {
	t.Parallel()

	var m *SoundbankMetrics
	m.RecordBufferLoad("ui", "success")
	m.RecordBufferLoadDuration("ui", 0.5)
	m.RecordBufferUnload("ui", "success")
	m.SetRegisteredBuffers("ui", 1)
	m.AddLoadedBuffers("ui", 1)
}
