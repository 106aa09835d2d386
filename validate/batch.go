package validate

import (
	"context"

	"github.com/bitwyre/fixparser/config"
	"github.com/bitwyre/fixparser/dictionary"
	"golang.org/x/sync/errgroup"
)

// ValidateBatch validates each message in raws independently and
// concurrently, up to concurrency simultaneous goroutines, and returns
// one Outcome per input in the same order. This is safe because the
// Schema is read-only after construction, and each call in the fan-out
// gets its own ErrorBag and ParsedMessage — an errgroup.WithContext
// fan-out bounded to a worker pool, since the number of messages is
// caller-determined rather than fixed.
//
// A concurrency of 0 or less runs every message on its own goroutine
// with no bound.
func (v *Validator) ValidateBatch(ctx context.Context, schema *dictionary.Schema, raws [][]byte, cfg config.Config, concurrency int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(raws))

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, raw := range raws {
		i, raw := i, raw
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = v.Validate(schema, raw, cfg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if v.healthMonitor != nil {
		v.healthMonitor.Update(v.healthComponent, HealthFromOutcomes(v.healthComponent, outcomes, v.healthDegradedThreshold, v.healthUnhealthyThreshold))
	}

	return outcomes, nil
}

// ValidateBatch is the package-level convenience form of
// (*Validator).ValidateBatch using the default Validator.
func ValidateBatch(ctx context.Context, schema *dictionary.Schema, raws [][]byte, cfg config.Config, concurrency int) ([]Outcome, error) {
	return defaultValidator.ValidateBatch(ctx, schema, raws, cfg, concurrency)
}
