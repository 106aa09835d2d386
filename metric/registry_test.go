package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCounterVecIsGatherable(t *testing.T) {
	registry := NewMetricsRegistry()

	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fixparser",
		Subsystem: "test",
		Name:      "widgets_total",
		Help:      "test counter",
	}, []string{"kind"})

	require.NoError(t, registry.RegisterCounterVec("widget", "widgets_total", c))
	c.WithLabelValues("gizmo").Inc()

	families, err := registry.Gatherer().Gather()
	require.NoError(t, err)

	found := false
	for _, mf := range families {
		if mf.GetName() == "fixparser_test_widgets_total" {
			found = true
		}
	}
	assert.True(t, found, "widgets_total should be gatherable")
}

func TestRegisterDuplicateNameRejected(t *testing.T) {
	registry := NewMetricsRegistry()

	c1 := prometheus.NewCounter(prometheus.CounterOpts{Name: "dup_total", Help: "x"})
	c2 := prometheus.NewCounter(prometheus.CounterOpts{Name: "dup_total_2", Help: "x"})

	require.NoError(t, registry.RegisterCounter("svc", "dup", c1))
	assert.Error(t, registry.RegisterCounter("svc", "dup", c2))
}

func TestUnregisterRemovesMetric(t *testing.T) {
	registry := NewMetricsRegistry()

	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "removable_total", Help: "x"})
	require.NoError(t, registry.RegisterCounter("svc", "removable", c))

	assert.True(t, registry.Unregister("svc", "removable"))
	assert.False(t, registry.Unregister("svc", "removable"))
}
