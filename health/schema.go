package health

import "fmt"

// SchemaStatus reports whether a dictionary.Schema load succeeded.
// loadErr is the error dictionary.LoadFile or dictionary.LoadReader
// returned, or nil on success.
func SchemaStatus(name string, loadErr error) Status {
	if loadErr != nil {
		return NewUnhealthy(name, fmt.Sprintf("dictionary load failed: %v", loadErr))
	}
	return NewHealthy(name, "dictionary loaded")
}

// ValidationRateStatus reports on the error rate observed across a
// batch of validation runs: unhealthy once failed/total crosses
// unhealthyThreshold, degraded once it crosses degradedThreshold,
// healthy otherwise. Both thresholds are fractions in [0, 1].
func ValidationRateStatus(name string, total, failed int, degradedThreshold, unhealthyThreshold float64) Status {
	if total == 0 {
		return NewHealthy(name, "no validation runs observed")
	}

	rate := float64(failed) / float64(total)
	message := fmt.Sprintf("%d/%d messages failed validation (%.1f%%)", failed, total, rate*100)

	status := NewHealthy(name, message)
	switch {
	case rate >= unhealthyThreshold:
		status = NewUnhealthy(name, message)
	case rate >= degradedThreshold:
		status = NewDegraded(name, message)
	}
	return status.WithMetrics(&Metrics{ErrorCount: failed})
}
