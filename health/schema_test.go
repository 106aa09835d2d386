package health

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaStatusHealthyOnSuccess(t *testing.T) {
	s := SchemaStatus("dictionary", nil)
	assert.True(t, s.IsHealthy())
}

func TestSchemaStatusUnhealthyOnError(t *testing.T) {
	s := SchemaStatus("dictionary", errors.New("unresolved component reference"))
	assert.True(t, s.IsUnhealthy())
	assert.Contains(t, s.Message, "unresolved component reference")
}

func TestValidationRateStatusThresholds(t *testing.T) {
	healthy := ValidationRateStatus("throughput", 100, 1, 0.05, 0.2)
	assert.True(t, healthy.IsHealthy())

	degraded := ValidationRateStatus("throughput", 100, 10, 0.05, 0.2)
	assert.True(t, degraded.IsDegraded())

	unhealthy := ValidationRateStatus("throughput", 100, 30, 0.05, 0.2)
	assert.True(t, unhealthy.IsUnhealthy())

	empty := ValidationRateStatus("throughput", 0, 0, 0.05, 0.2)
	assert.True(t, empty.IsHealthy())
}
