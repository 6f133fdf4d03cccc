package joint_test

import (
	"math"
	"testing"

	"boltjoint/pkg/domain"
	"boltjoint/pkg/joint"

	"github.com/stretchr/testify/require"
)

func exampleFatigue() joint.FatigueModel {
	return joint.FatigueModel{
		StressArea:       exampleArea,
		YieldStrength:    640e6,
		UltimateStrength: 1000e6,
		EnduranceLimit:   150e6,
		Concentration:    1,
	}
}

func TestSeparationSafety(t *testing.T) {
	require.InDelta(t, 1.76625, joint.SeparationSafety(example, 50000), 1e-12)
	require.Equal(t, 1.0, joint.SeparationSafety(example, example.SeparationLoad()))
	require.True(t, math.IsInf(joint.SeparationSafety(example, 0), 1))
}

func TestSeparationSafety_StrictlyDecreasing(t *testing.T) {
	prev := math.Inf(1)
	for _, p := range (domain.Sweep{Min: 1, Max: 200000, Count: 50}).Values() {
		n := joint.SeparationSafety(example, p)
		require.Less(t, n, prev)
		prev = n
	}
}

func TestYieldSafety(t *testing.T) {
	require.InDelta(t, 2.355, joint.YieldSafety(example, exampleProof, 50000), 1e-9)
	require.True(t, math.IsInf(joint.YieldSafety(example, exampleProof, 0), 1))

	prev := math.Inf(1)
	for _, p := range (domain.Sweep{Min: 1, Max: 200000, Count: 50}).Values() {
		n := joint.YieldSafety(example, exampleProof, p)
		require.Less(t, n, prev)
		prev = n
	}
}

func TestFatigueSafety_Goodman(t *testing.T) {
	n, s := joint.FatigueSafety(example, exampleFatigue(), domain.LoadRange{Min: 0, Max: 50000})

	require.InDelta(t, 0.2*25000/exampleArea, s.Alternating, 1e-3)
	require.InDelta(t, (70650+0.2*25000)/exampleArea, s.Mean, 1e-3)
	require.InDelta(t, 150e6*(1-s.Mean/1000e6), s.Allowable, 1e-3)
	require.InDelta(t, 2.4405, n, 1e-9)
}

func TestFatigueSafety_StaticLoadIsInfinite(t *testing.T) {
	n, s := joint.FatigueSafety(example, exampleFatigue(), domain.LoadRange{Min: 30000, Max: 30000})
	require.True(t, math.IsInf(n, 1))
	require.Zero(t, s.Alternating)

	n, _ = joint.FatigueSafety(example, exampleFatigue(), domain.LoadRange{})
	require.True(t, math.IsInf(n, 1))
}

func TestFatigueSafety_ReversedRangeIsNormalized(t *testing.T) {
	a, _ := joint.FatigueSafety(example, exampleFatigue(), domain.LoadRange{Min: 10000, Max: 40000})
	b, _ := joint.FatigueSafety(example, exampleFatigue(), domain.LoadRange{Min: 40000, Max: 10000})
	require.Equal(t, a, b)
}

func TestFatigueSafety_NegativeMeanClipped(t *testing.T) {
	j := joint.Joint{Preload: 100, Factor: 0.5}
	m := exampleFatigue()

	n, s := joint.FatigueSafety(j, m, domain.LoadRange{Min: -1000, Max: 0})
	require.Zero(t, s.Mean)
	require.Equal(t, m.EnduranceLimit, s.Allowable)
	require.InDelta(t, m.EnduranceLimit/(0.5*500/m.StressArea), n, 1e-9)
}

func TestFatigueSafety_MeanBeyondUltimate(t *testing.T) {
	j := joint.Joint{Preload: 200000, Factor: 0.2}

	n, s := joint.FatigueSafety(j, exampleFatigue(), domain.LoadRange{Min: 0, Max: 1000})
	require.Zero(t, s.Allowable)
	require.Zero(t, n)
}

func TestFatigueSafety_StressConcentration(t *testing.T) {
	m := exampleFatigue()
	plain, _ := joint.FatigueSafety(example, m, domain.LoadRange{Min: 0, Max: 50000})

	m.Concentration = 3
	n, s := joint.FatigueSafety(example, m, domain.LoadRange{Min: 0, Max: 50000})

	alt := 0.2 * 25000 / exampleArea
	mean := (70650 + 0.2*25000) / exampleArea
	// K_f(σm+σa) exceeds S_y, so the mean factor relieves to local yield.
	kfm := (m.YieldStrength - 3*alt) / mean
	require.InDelta(t, 3*alt, s.Alternating, 1e-3)
	require.InDelta(t, kfm*mean, s.Mean, 1e-3)
	require.Less(t, n, plain)
}
