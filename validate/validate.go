package validate

import (
	"log/slog"
	"time"

	"github.com/bitwyre/fixparser/config"
	"github.com/bitwyre/fixparser/dictionary"
	"github.com/bitwyre/fixparser/fixerrors"
	"github.com/bitwyre/fixparser/health"
	"github.com/bitwyre/fixparser/message"
	"github.com/bitwyre/fixparser/metric"
	"github.com/bitwyre/fixparser/wire"
	"github.com/google/uuid"
)

// Outcome is the result of validating one message. Valid is true iff
// Errors is empty. Parsed is the categorised view of the message even
// when validation failed, since a caller inspecting a RequiredMissing
// error usually still wants to see what did parse.
type Outcome struct {
	Valid  bool
	Errors []*fixerrors.Error
	Parsed *message.ParsedMessage
	RunID  uuid.UUID
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger attaches a structured logger a Validator uses to record
// stage failures at debug level. Nil (the default) disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) { v.logger = logger }
}

// WithMetrics attaches a Prometheus registry a Validator registers its
// run/duration/stage-failure/error-kind collectors against. Nil (the
// default) disables metrics.
func WithMetrics(registry *metric.MetricsRegistry) Option {
	return func(v *Validator) { v.registry = registry }
}

// WithHealthMonitor attaches a health.Monitor that ValidateBatch updates
// under component after every batch, summarising the batch's failure
// rate via health.ValidationRateStatus. Nil (the default) disables this.
func WithHealthMonitor(monitor *health.Monitor, component string, degradedThreshold, unhealthyThreshold float64) Option {
	return func(v *Validator) {
		v.healthMonitor = monitor
		v.healthComponent = component
		v.healthDegradedThreshold = degradedThreshold
		v.healthUnhealthyThreshold = unhealthyThreshold
	}
}

// Validator runs the validation pipeline with optional logging,
// metrics, and batch health reporting wrapped around it — a stateless
// pipeline function wrapped by a small struct that owns just those
// ambient concerns.
type Validator struct {
	logger   *slog.Logger
	registry *metric.MetricsRegistry
	metrics  *runMetrics

	healthMonitor            *health.Monitor
	healthComponent          string
	healthDegradedThreshold  float64
	healthUnhealthyThreshold float64
}

// New builds a Validator from the given options. If metrics are
// requested but registration fails (for example, a name collision on a
// shared registry), New logs the failure through the configured logger,
// if any, and continues with metrics disabled — the same
// degrade-rather-than-fail behaviour.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}

	if v.registry != nil {
		m, err := newRunMetrics(v.registry)
		if err != nil {
			if v.logger != nil {
				v.logger.Error("validate: failed to register metrics", "error", err)
			}
		} else {
			v.metrics = m
		}
	}

	return v
}

// defaultValidator backs the package-level Validate function for
// callers who don't need logging or metrics.
var defaultValidator = New()

// Validate runs schema-driven validation of one raw FIX message using a
// Validator built with no logging or metrics attached. Most callers
// that just want a yes/no answer should use this.
func Validate(schema *dictionary.Schema, raw []byte, cfg config.Config) Outcome {
	return defaultValidator.Validate(schema, raw, cfg)
}

// Validate runs the gated stage pipeline against raw:
//
//  1. Tokenise splits raw on cfg.Separator. Any malformed token is
//     reported and the run stops here: a message that cannot even be
//     tokenised has nothing left worth checking.
//  2. Categorise buckets tokens into header/body/trailer against
//     schema, reporting every unknown tag. If any unknown tag was
//     found, the run stops after categorisation.
//  3. RequiredFields checks the dictionary's required-field tree. If it
//     fails, BodyLength and Checksum are skipped: both recompute over
//     fields that may not even be present.
//  4. BodyLength recomputes tag 9. If it fails, Checksum is skipped.
//  5. Checksum recomputes tag 10.
//
// The run is stage-gated: every error a stage finds is reported, and no
// later stage runs once a stage has reported an error, so
// Outcome.Errors holds everything found up to the first failing stage.
func (v *Validator) Validate(schema *dictionary.Schema, raw []byte, cfg config.Config) Outcome {
	cfg = cfg.Normalize()
	start := time.Now()

	outcome := Outcome{RunID: uuid.New()}
	bag := &fixerrors.Bag{}

	tokens, malformed := wire.Tokenize(raw, cfg.Separator)
	for _, m := range malformed {
		bag.Add(fixerrors.MalformedTokenErr(m.Raw))
	}
	if !bag.Empty() {
		v.finish(&outcome, bag, "tokenise", cfg, start)
		return outcome
	}

	parsed := message.Categorise(tokens, schema, bag)
	parsed.Raw = raw
	outcome.Parsed = parsed
	if !bag.Empty() {
		v.finish(&outcome, bag, "categorise", cfg, start)
		return outcome
	}

	if !RequiredFields(parsed, schema, bag) {
		v.finish(&outcome, bag, "required_fields", cfg, start)
		return outcome
	}

	if !BodyLength(parsed, bag) {
		v.finish(&outcome, bag, "body_length", cfg, start)
		return outcome
	}

	if !Checksum(parsed, cfg.Separator, bag) {
		v.finish(&outcome, bag, "checksum", cfg, start)
		return outcome
	}

	v.finish(&outcome, bag, "", cfg, start)
	return outcome
}

func (v *Validator) recordStage(stage string) {
	if v.metrics != nil {
		v.metrics.recordStageFailure(stage)
	}
}

func (v *Validator) finish(outcome *Outcome, bag *fixerrors.Bag, failedStage string, cfg config.Config, start time.Time) {
	outcome.Errors = bag.Errors()
	outcome.Valid = bag.Empty()

	if failedStage != "" {
		v.recordStage(failedStage)
	}
	if v.metrics != nil {
		v.metrics.recordRun(string(cfg.FixStd), outcome.Valid, time.Since(start).Seconds())
		v.metrics.recordErrors(outcome.Errors)
	}
	if v.logger != nil && !outcome.Valid {
		v.logger.Debug("validate: message invalid",
			"run_id", outcome.RunID,
			"errors", len(outcome.Errors),
			"failed_stage", failedStage,
		)
	}
}
