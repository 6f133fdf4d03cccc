// Package metrics records analysis runs as Prometheus metrics. Batch runs can
// dump the registry to a node-exporter textfile.
package metrics

import (
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Analysis outcomes used as the "outcome" label.
const (
	OutcomeSuccess     = "success"
	OutcomeValidation  = "validation_error"
	OutcomeComputation = "computation_error"
	OutcomeFailure     = "failure"
)

// Recorder holds the analysis metrics. A nil *Recorder discards everything.
type Recorder struct {
	Analyses      *prometheus.CounterVec
	Duration      prometheus.Histogram
	LoadPoints    prometheus.Counter
	Governing     prometheus.Gauge
	Separated     prometheus.Counter
	StiffnessRate prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New registers the analysis metrics on reg.
func New(reg *prometheus.Registry) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		Analyses: f.NewCounterVec(prometheus.CounterOpts{
			Name: "boltjoint_analyses_total",
			Help: "Total joint analyses by outcome",
		}, []string{"outcome"}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "boltjoint_analysis_duration_seconds",
			Help:    "Duration of a full joint analysis",
			Buckets: DefaultBuckets,
		}),
		LoadPoints: f.NewCounter(prometheus.CounterOpts{
			Name: "boltjoint_load_points_total",
			Help: "Total applied load points evaluated",
		}),
		Governing: f.NewGauge(prometheus.GaugeOpts{
			Name: "boltjoint_governing_safety_factor",
			Help: "Smallest factor of safety of the last successful analysis, capped at the largest finite float",
		}),
		Separated: f.NewCounter(prometheus.CounterOpts{
			Name: "boltjoint_separated_points_total",
			Help: "Total load points at or beyond joint separation",
		}),
		StiffnessRate: f.NewGauge(prometheus.GaugeOpts{
			Name: "boltjoint_stiffness_factor",
			Help: "Joint stiffness factor C of the last successful analysis",
		}),
		gatherer: reg,
	}
}

// ObserveAnalysis records one analysis run.
func (r *Recorder) ObserveAnalysis(outcome string, d time.Duration) {
	if r != nil {
		r.Analyses.WithLabelValues(outcome).Inc()
		r.Duration.Observe(d.Seconds())
	}
}

// ObserveResult records the outcome of a successful analysis.
func (r *Recorder) ObserveResult(points, separated int, factor, governing float64) {
	if r == nil {
		return
	}

	r.LoadPoints.Add(float64(points))
	r.Separated.Add(float64(separated))
	r.StiffnessRate.Set(factor)
	if math.IsInf(governing, 1) {
		governing = math.MaxFloat64
	}
	r.Governing.Set(governing)
}

// WriteTextfile writes the current metrics to path in the text exposition
// format, atomically replacing any previous file.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}

	return prometheus.WriteToTextfile(path, r.gatherer)
}
