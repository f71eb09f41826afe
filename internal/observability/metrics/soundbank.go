// Package metrics provides soundbank buffer metrics for observability
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SoundbankMetrics contains Prometheus metrics for buffer group operations.
// All recording methods are nil-safe so callers can treat a nil recorder as
// metrics-disabled.
type SoundbankMetrics struct {
	registry *prometheus.Registry

	// Buffer lifecycle metrics
	bufferLoadsTotal   *prometheus.CounterVec
	bufferLoadDuration *prometheus.HistogramVec
	bufferUnloadsTotal *prometheus.CounterVec

	// Registry state metrics
	registeredBuffersGauge *prometheus.GaugeVec
	loadedBuffersGauge     *prometheus.GaugeVec
}

// NewSoundbankMetrics creates and registers new soundbank metrics
func NewSoundbankMetrics(registry *prometheus.Registry) (*SoundbankMetrics, error) {
	m := &SoundbankMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

// initMetrics initializes all Prometheus metrics
func (m *SoundbankMetrics) initMetrics() {
	m.bufferLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "soundbank_buffer_loads_total",
			Help: "Total number of buffer load attempts",
		},
		[]string{"group", "status"}, // status: success, error
	)

	m.bufferLoadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "soundbank_buffer_load_duration_seconds",
			Help:    "Time taken to decode and upload buffers",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10), // 1ms to ~1s
		},
		[]string{"group"},
	)

	m.bufferUnloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "soundbank_buffer_unloads_total",
			Help: "Total number of buffer unload attempts",
		},
		[]string{"group", "status"}, // status: success, denied
	)

	m.registeredBuffersGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "soundbank_registered_buffers",
			Help: "Number of file paths registered per group",
		},
		[]string{"group"},
	)

	m.loadedBuffersGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "soundbank_loaded_buffers",
			Help: "Number of live backend buffers per group",
		},
		[]string{"group"},
	)
}

// Describe implements the prometheus.Collector interface
func (m *SoundbankMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.bufferLoadsTotal.Describe(ch)
	m.bufferLoadDuration.Describe(ch)
	m.bufferUnloadsTotal.Describe(ch)
	m.registeredBuffersGauge.Describe(ch)
	m.loadedBuffersGauge.Describe(ch)
}

// Collect implements the prometheus.Collector interface
func (m *SoundbankMetrics) Collect(ch chan<- prometheus.Metric) {
	m.bufferLoadsTotal.Collect(ch)
	m.bufferLoadDuration.Collect(ch)
	m.bufferUnloadsTotal.Collect(ch)
	m.registeredBuffersGauge.Collect(ch)
	m.loadedBuffersGauge.Collect(ch)
}

// RecordBufferLoad records a buffer load attempt
func (m *SoundbankMetrics) RecordBufferLoad(group, status string) {
	if m == nil {
		return
	}
	m.bufferLoadsTotal.WithLabelValues(group, status).Inc()
}

// RecordBufferLoadDuration records the time taken to load a buffer
func (m *SoundbankMetrics) RecordBufferLoadDuration(group string, seconds float64) {
	if m == nil {
		return
	}
	m.bufferLoadDuration.WithLabelValues(group).Observe(seconds)
}

// RecordBufferUnload records a buffer unload attempt
func (m *SoundbankMetrics) RecordBufferUnload(group, status string) {
	if m == nil {
		return
	}
	m.bufferUnloadsTotal.WithLabelValues(group, status).Inc()
}

// SetRegisteredBuffers sets the registered buffer count for a group
func (m *SoundbankMetrics) SetRegisteredBuffers(group string, count int) {
	if m == nil {
		return
	}
	m.registeredBuffersGauge.WithLabelValues(group).Set(float64(count))
}

// AddLoadedBuffers adjusts the live buffer gauge for a group
func (m *SoundbankMetrics) AddLoadedBuffers(group string, delta int) {
	if m == nil {
		return
	}
	m.loadedBuffersGauge.WithLabelValues(group).Add(float64(delta))
}
