package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boltjoint/internal/config"
	"boltjoint/pkg/domain"
	"boltjoint/pkg/joint"
	"boltjoint/pkg/logger"
	"boltjoint/pkg/metrics"
	"boltjoint/pkg/serrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure how analysis runs are reported.
// These settings are typically derived from application configuration.
type Options struct {
	// MinSafetyFactor is the governing factor of safety below which a run is
	// logged as a warning.
	MinSafetyFactor float64
	// Units labels the quantities of every run.
	Units domain.Units
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MinSafetyFactor: cfg.Analysis.MinSafetyFactor,
		Units:           cfg.UnitLabels(),
	}
}

// Run is one completed analysis.
type Run struct {
	ID       uuid.UUID
	Started  time.Time
	Duration time.Duration
	Units    domain.Units
	Input    joint.Input
	Result   *joint.Result
}

// analyzer is the concrete implementation of the Analyzer interface.
// It wraps the pure engine with run identification, logging and metrics.
type analyzer struct {
	options  Options
	recorder *metrics.Recorder
	now      func() time.Time
}

// Analyze runs the engine and records the outcome. Validation failures are
// returned unchanged so callers can inspect the offending field.
func (a analyzer) Analyze(ctx context.Context, in joint.Input) (*Run, error) {
	run := &Run{ID: uuid.New(), Started: a.now(), Units: a.options.Units, Input: in}
	ctx = logger.WithFields(ctx, zap.Stringer("run", run.ID))

	logger.Debug(ctx, "starting joint analysis",
		zap.Float64("diameter", in.Fastener.NominalDiameter),
		zap.Float64("grip", in.Fastener.GripLength),
		zap.String("preloadMode", string(in.Preload.Mode)),
		zap.Float64("preloadValue", in.Preload.Value))

	res, err := joint.Analyze(in)
	run.Duration = a.now().Sub(run.Started)
	if err != nil {
		a.recorder.ObserveAnalysis(outcome(err), run.Duration)
		if field := serrors.FieldOf(err); field != "" {
			logger.Debug(ctx, "rejected joint input", zap.String("field", field), zap.Error(err))
		}

		return nil, fmt.Errorf("could not analyze joint: %w", err)
	}
	run.Result = res

	governing := res.Governing()
	var separated int
	for _, p := range res.Points {
		if p.Separated {
			separated++
		}
	}
	a.recorder.ObserveAnalysis(metrics.OutcomeSuccess, run.Duration)
	a.recorder.ObserveResult(len(res.Points), separated, res.Stiffness.Factor, governing)

	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "joint stiffness",
			zap.Float64("bolt", res.Stiffness.Bolt),
			zap.Float64("member", res.Stiffness.Member),
			zap.Float64("factor", res.Stiffness.Factor),
			zap.Float64("stressArea", res.Geometry.StressArea))
	}

	fields := []zap.Field{
		zap.Float64("preload", res.Preload),
		zap.Float64("separationLoad", res.SeparationLoad),
		zap.Float64("governingSafety", governing),
		zap.Int("points", len(res.Points)),
		zap.Int("separated", separated),
		zap.Duration("took", run.Duration),
	}
	if separated > 0 || governing < a.options.MinSafetyFactor {
		logger.Warn(ctx, "joint below required safety", append(fields,
			zap.Float64("required", a.options.MinSafetyFactor))...)
	} else {
		logger.Info(ctx, "joint analysis finished", fields...)
	}

	return run, nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, serrors.ErrValidation):
		return metrics.OutcomeValidation
	case errors.Is(err, serrors.ErrComputation):
		return metrics.OutcomeComputation
	default:
		return metrics.OutcomeFailure
	}
}

// New creates a new Analyzer recording into recorder (which may be nil) and
// configured with the given options.
func New(recorder *metrics.Recorder, options Options) Analyzer {
	return &analyzer{
		options:  options,
		recorder: recorder,
		now:      time.Now,
	}
}
