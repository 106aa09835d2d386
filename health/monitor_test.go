package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorUpdateAndGet(t *testing.T) {
	m := NewMonitor()
	m.UpdateHealthy("dictionary", "loaded")

	s, ok := m.Get("dictionary")
	require.True(t, ok)
	assert.True(t, s.IsHealthy())
	assert.Equal(t, "dictionary", s.Component)
}

func TestMonitorAggregateHealth(t *testing.T) {
	m := NewMonitor()
	m.UpdateHealthy("dictionary", "loaded")
	m.UpdateUnhealthy("checksum", "mismatch rate high")

	agg := m.AggregateHealth("validator")
	assert.True(t, agg.IsUnhealthy())
}

func TestMonitorRemove(t *testing.T) {
	m := NewMonitor()
	m.UpdateHealthy("dictionary", "loaded")
	m.Remove("dictionary")

	_, ok := m.Get("dictionary")
	assert.False(t, ok)
}
