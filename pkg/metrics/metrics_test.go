package metrics_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"boltjoint/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		out[f.GetName()] = f
	}

	return out
}

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.New(reg)

	r.ObserveAnalysis(metrics.OutcomeSuccess, 20*time.Millisecond)
	r.ObserveAnalysis(metrics.OutcomeSuccess, 30*time.Millisecond)
	r.ObserveAnalysis(metrics.OutcomeValidation, time.Millisecond)
	r.ObserveResult(7, 2, 0.2, 1.5)

	fam := gather(t, reg)

	outcomes := map[string]float64{}
	for _, m := range fam["boltjoint_analyses_total"].GetMetric() {
		outcomes[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
	}
	require.Equal(t, map[string]float64{metrics.OutcomeSuccess: 2, metrics.OutcomeValidation: 1}, outcomes)

	h := fam["boltjoint_analysis_duration_seconds"].GetMetric()[0].GetHistogram()
	require.Equal(t, uint64(3), h.GetSampleCount())
	require.Len(t, h.GetBucket(), len(metrics.DefaultBuckets))

	require.Equal(t, 7.0, fam["boltjoint_load_points_total"].GetMetric()[0].GetCounter().GetValue())
	require.Equal(t, 2.0, fam["boltjoint_separated_points_total"].GetMetric()[0].GetCounter().GetValue())
	require.Equal(t, 0.2, fam["boltjoint_stiffness_factor"].GetMetric()[0].GetGauge().GetValue())
	require.Equal(t, 1.5, fam["boltjoint_governing_safety_factor"].GetMetric()[0].GetGauge().GetValue())
}

func TestRecorder_InfiniteGoverning(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.New(reg)

	r.ObserveResult(1, 0, 0.1, math.Inf(1))

	g := gather(t, reg)["boltjoint_governing_safety_factor"].GetMetric()[0].GetGauge().GetValue()
	require.Equal(t, math.MaxFloat64, g)
}

func TestRecorder_Nil(t *testing.T) {
	var r *metrics.Recorder

	require.NotPanics(t, func() {
		r.ObserveAnalysis(metrics.OutcomeFailure, time.Second)
		r.ObserveResult(1, 1, 0.5, 1)
	})
	require.NoError(t, r.WriteTextfile(filepath.Join(t.TempDir(), "never.prom")))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.New(reg)
	r.ObserveAnalysis(metrics.OutcomeComputation, time.Millisecond)

	path := filepath.Join(t.TempDir(), "boltjoint.prom")
	require.NoError(t, r.WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), `boltjoint_analyses_total{outcome="computation_error"} 1`)
}
