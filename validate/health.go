package validate

import "github.com/bitwyre/fixparser/health"

// HealthFromOutcomes summarises a batch of Outcomes as a health.Status
// named name, via health.ValidationRateStatus: the fraction of outcomes
// with Valid == false is compared against degradedThreshold and
// unhealthyThreshold.
func HealthFromOutcomes(name string, outcomes []Outcome, degradedThreshold, unhealthyThreshold float64) health.Status {
	failed := 0
	for _, o := range outcomes {
		if !o.Valid {
			failed++
		}
	}
	return health.ValidationRateStatus(name, len(outcomes), failed, degradedThreshold, unhealthyThreshold)
}
