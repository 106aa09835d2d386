package metric

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registrar defines the interface for registering collectors under a
// (component, name) key. validate.Validator only needs the CounterVec
// and HistogramVec halves of a fuller metrics registrar interface; the
// Counter/Gauge/GaugeVec methods are kept because other callers
// embedding this module alongside their own metrics may still want
// them.
type Registrar interface {
	RegisterCounter(component, name string, counter prometheus.Counter) error
	RegisterGauge(component, name string, gauge prometheus.Gauge) error
	RegisterHistogram(component, name string, histogram prometheus.Histogram) error
	RegisterCounterVec(component, name string, counterVec *prometheus.CounterVec) error
	RegisterGaugeVec(component, name string, gaugeVec *prometheus.GaugeVec) error
	RegisterHistogramVec(component, name string, histogramVec *prometheus.HistogramVec) error
	Unregister(component, name string) bool
}

// MetricsRegistry owns a private prometheus.Registry and tracks which
// collectors have been registered against it, keyed by
// "component.name" so two unrelated packages can each register a
// "duration" metric without colliding.
type MetricsRegistry struct {
	prometheusRegistry *prometheus.Registry
	registered         map[string]prometheus.Collector
	mu                 sync.RWMutex
}

// NewMetricsRegistry creates an empty registry with the Go runtime and
// process collectors already attached.
func NewMetricsRegistry() *MetricsRegistry {
	r := &MetricsRegistry{
		prometheusRegistry: prometheus.NewRegistry(),
		registered:         make(map[string]prometheus.Collector),
	}

	r.prometheusRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Gatherer returns the underlying prometheus.Gatherer, for a caller
// that wants to expose it on its own /metrics endpoint.
func (r *MetricsRegistry) Gatherer() prometheus.Gatherer {
	return r.prometheusRegistry
}

func (r *MetricsRegistry) register(component, name string, c prometheus.Collector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", component, name)
	if _, exists := r.registered[key]; exists {
		return fmt.Errorf("metric: %s already registered", key)
	}

	if err := r.prometheusRegistry.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if stderrors.As(err, &already) {
			return fmt.Errorf("metric: prometheus conflict for %s: %w", key, err)
		}
		return fmt.Errorf("metric: register %s: %w", key, err)
	}

	r.registered[key] = c
	return nil
}

// RegisterCounter registers a counter under component.name.
func (r *MetricsRegistry) RegisterCounter(component, name string, counter prometheus.Counter) error {
	return r.register(component, name, counter)
}

// RegisterGauge registers a gauge under component.name.
func (r *MetricsRegistry) RegisterGauge(component, name string, gauge prometheus.Gauge) error {
	return r.register(component, name, gauge)
}

// RegisterHistogram registers a histogram under component.name.
func (r *MetricsRegistry) RegisterHistogram(component, name string, histogram prometheus.Histogram) error {
	return r.register(component, name, histogram)
}

// RegisterCounterVec registers a counter vector under component.name.
func (r *MetricsRegistry) RegisterCounterVec(component, name string, counterVec *prometheus.CounterVec) error {
	return r.register(component, name, counterVec)
}

// RegisterGaugeVec registers a gauge vector under component.name.
func (r *MetricsRegistry) RegisterGaugeVec(component, name string, gaugeVec *prometheus.GaugeVec) error {
	return r.register(component, name, gaugeVec)
}

// RegisterHistogramVec registers a histogram vector under component.name.
func (r *MetricsRegistry) RegisterHistogramVec(component, name string, histogramVec *prometheus.HistogramVec) error {
	return r.register(component, name, histogramVec)
}

// Unregister removes a previously registered collector.
func (r *MetricsRegistry) Unregister(component, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", component, name)
	c, exists := r.registered[key]
	if !exists {
		return false
	}

	if r.prometheusRegistry.Unregister(c) {
		delete(r.registered, key)
		return true
	}
	return false
}
