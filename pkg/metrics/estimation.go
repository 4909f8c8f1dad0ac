package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EstimationMetrics records calculation pipeline activity.
type EstimationMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	bomLines *prometheus.HistogramVec
}

// NewEstimationMetrics registers the calculation metrics on the provided registerer.
func NewEstimationMetrics(reg prometheus.Registerer) *EstimationMetrics {
	if reg == nil {
		return &EstimationMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "estimation_calc_duration_seconds",
		Help:    "Duration of estimation calculation passes in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "estimation_calc_success",
		Help: "Successful calculation passes.",
	}, []string{"kind"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "estimation_calc_failure",
		Help: "Failed calculation passes.",
	}, []string{"kind"})
	bomLines := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "estimation_bom_lines",
		Help:    "Line items produced per calculation pass.",
		Buckets: []float64{25, 50, 100, 200, 400, 800},
	}, []string{"kind"})
	reg.MustRegister(duration, success, failure, bomLines)
	return &EstimationMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		bomLines: bomLines,
	}
}

// ObserveDuration records the duration for the named calculation kind.
func (m *EstimationMetrics) ObserveDuration(kind string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(kind)).Observe(duration.Seconds())
}

// ObserveBOMLines records how many line items a pass produced.
func (m *EstimationMetrics) ObserveBOMLines(kind string, lines int) {
	if m == nil || m.bomLines == nil {
		return
	}
	m.bomLines.WithLabelValues(normalizeLabel(kind)).Observe(float64(lines))
}

// IncSuccess increments the success counter for the named calculation kind.
func (m *EstimationMetrics) IncSuccess(kind string) {
	if m == nil || m.success == nil {
		return
	}
	m.success.WithLabelValues(normalizeLabel(kind)).Inc()
}

// IncFailure increments the failure counter for the named calculation kind.
func (m *EstimationMetrics) IncFailure(kind string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(kind)).Inc()
}

func normalizeLabel(kind string) string {
	if kind == "" {
		return "unknown"
	}
	return kind
}
