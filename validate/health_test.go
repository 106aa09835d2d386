package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthFromOutcomesHealthyWhenAllValid(t *testing.T) {
	outcomes := []Outcome{{Valid: true}, {Valid: true}, {Valid: true}}
	status := HealthFromOutcomes("batch", outcomes, 0.1, 0.5)
	assert.True(t, status.IsHealthy())
}

func TestHealthFromOutcomesUnhealthyPastThreshold(t *testing.T) {
	outcomes := []Outcome{{Valid: false}, {Valid: false}, {Valid: true}}
	status := HealthFromOutcomes("batch", outcomes, 0.1, 0.5)
	assert.True(t, status.IsUnhealthy())
}

func TestHealthFromOutcomesHealthyOnEmptyBatch(t *testing.T) {
	status := HealthFromOutcomes("batch", nil, 0.1, 0.5)
	assert.True(t, status.IsHealthy())
}
