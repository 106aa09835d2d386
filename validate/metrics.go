package validate

import (
	"github.com/bitwyre/fixparser/fixerrors"
	"github.com/bitwyre/fixparser/metric"
	"github.com/prometheus/client_golang/prometheus"
)

// runMetrics holds the Prometheus metrics a Validator records against a
// caller-supplied registry. A nil *runMetrics is always safe to call
// methods on: metrics are optional, never load-bearing for the
// validation result itself (a nil-receiver pattern for optional
// metrics).
type runMetrics struct {
	runs       *prometheus.CounterVec   // by fix_std, result (valid/invalid)
	duration   *prometheus.HistogramVec // by fix_std
	stageFails *prometheus.CounterVec   // by stage
	errorKinds *prometheus.CounterVec   // by kind
}

func newRunMetrics(registry *metric.MetricsRegistry) (*runMetrics, error) {
	if registry == nil {
		return nil, nil
	}

	m := &runMetrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fixparser",
			Subsystem: "validate",
			Name:      "runs_total",
			Help:      "Total number of message validation runs",
		}, []string{"fix_std", "result"}),

		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fixparser",
			Subsystem: "validate",
			Name:      "duration_seconds",
			Help:      "Message validation duration in seconds",
			Buckets:   []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"fix_std"}),

		stageFails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fixparser",
			Subsystem: "validate",
			Name:      "stage_failures_total",
			Help:      "Total number of validation runs that failed at each stage",
		}, []string{"stage"}),

		errorKinds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fixparser",
			Subsystem: "validate",
			Name:      "errors_total",
			Help:      "Total number of validation errors, by kind",
		}, []string{"kind"}),
	}

	if err := registry.RegisterCounterVec("validate", "runs", m.runs); err != nil {
		return nil, err
	}
	if err := registry.RegisterHistogramVec("validate", "duration", m.duration); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounterVec("validate", "stage_failures", m.stageFails); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounterVec("validate", "errors", m.errorKinds); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *runMetrics) recordRun(fixStd string, valid bool, seconds float64) {
	if m == nil {
		return
	}
	result := "valid"
	if !valid {
		result = "invalid"
	}
	m.runs.WithLabelValues(fixStd, result).Inc()
	m.duration.WithLabelValues(fixStd).Observe(seconds)
}

func (m *runMetrics) recordStageFailure(stage string) {
	if m != nil {
		m.stageFails.WithLabelValues(stage).Inc()
	}
}

func (m *runMetrics) recordErrors(errs []*fixerrors.Error) {
	if m == nil {
		return
	}
	for _, e := range errs {
		m.errorKinds.WithLabelValues(e.Kind.String()).Inc()
	}
}
