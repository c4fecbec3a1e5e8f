// Package metrics exposes Prometheus metrics for configuration loads.
//
// # Basic Usage
//
//	timer := metrics.NewTimer("load")
//	cfg, err := load(path)
//	metrics.ObserveLoad(timer.Stop(), err)
//
// # Metrics
//
//   - comconfig_loads_total{result}: loads by outcome (success/failure)
//   - comconfig_load_duration_seconds: duration of successful loads
//   - comconfig_deployments{section}: entries in the last loaded configuration
//   - comconfig_buffer_bytes: size of the last mapped descriptor
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	SectionServiceTypes     = "service_types"
	SectionServiceInstances = "service_instances"
)

var (
	// LoadsTotal counts configuration loads.
	// Labels: result (success/failure)
	LoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comconfig_loads_total",
			Help: "Total number of configuration loads",
		},
		[]string{"result"},
	)

	// LoadDuration tracks how long a successful load takes, from open to assembly.
	LoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "comconfig_load_duration_seconds",
			Help: "Configuration load duration in seconds",
			Buckets: []float64{
				0.0001, // 100μs - small descriptors
				0.001,  // 1ms
				0.01,   // 10ms
				0.1,    // 100ms - large deployments
				1,
			},
		},
	)

	// Deployments reports the number of entries per section of the last load.
	// Labels: section (service_types/service_instances)
	Deployments = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "comconfig_deployments",
			Help: "Number of deployments in the last loaded configuration",
		},
		[]string{"section"},
	)

	// BufferBytes reports the size of the last mapped descriptor.
	BufferBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "comconfig_buffer_bytes",
			Help: "Size of the last mapped deployment descriptor in bytes",
		},
	)
)

// ObserveLoad records the outcome of one load. The duration is only
// observed for successful loads.
func ObserveLoad(d time.Duration, err error) {
	if err != nil {
		LoadsTotal.WithLabelValues(ResultFailure).Inc()
		return
	}
	LoadsTotal.WithLabelValues(ResultSuccess).Inc()
	LoadDuration.Observe(d.Seconds())
}

// ObserveDeployments records the section sizes of a loaded configuration.
func ObserveDeployments(serviceTypes, serviceInstances int) {
	Deployments.WithLabelValues(SectionServiceTypes).Set(float64(serviceTypes))
	Deployments.WithLabelValues(SectionServiceInstances).Set(float64(serviceInstances))
}

// Timer provides a simple timing mechanism for measuring operation durations.
// It captures the start time on creation and calculates elapsed time on stop.
type Timer struct {
	start time.Time
	name  string
}

// NewTimer creates a new timer and starts timing immediately.
// The name parameter is for identification in logs or metrics.
func NewTimer(name string) *Timer {
	return &Timer{
		start: time.Now(),
		name:  name,
	}
}

// Name returns the name the timer was created with.
func (t *Timer) Name() string {
	return t.name
}

// Stop returns the elapsed duration since creation. The timer can be
// stopped multiple times.
func (t *Timer) Stop() time.Duration {
	return time.Since(t.start)
}
