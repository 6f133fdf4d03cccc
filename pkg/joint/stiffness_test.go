package joint_test

import (
	"math"
	"testing"

	"boltjoint/pkg/domain"
	"boltjoint/pkg/joint"
	"boltjoint/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestBoltStiffness_NortonExample(t *testing.T) {
	// Norton example 15-2: 1.625 in of shank and 0.375 in of thread.
	kb, err := joint.BoltStiffness(30e6,
		joint.Segment{Area: math.Pi * (0.3125 / 2) * (0.3125 / 2), Length: 1.625},
		joint.Segment{Area: 0.052431, Length: 0.375})
	require.NoError(t, err)
	require.InDelta(t, 1058613.179, kb, 1e-3)
}

func TestBoltStiffness_SeriesRule(t *testing.T) {
	single, err := joint.BoltStiffness(200e9, joint.Segment{Area: 1e-4, Length: 0.1})
	require.NoError(t, err)
	require.InDelta(t, 200e6, single, 1e-3)

	halves, err := joint.BoltStiffness(200e9,
		joint.Segment{Area: 1e-4, Length: 0.05},
		joint.Segment{Area: 1e-4, Length: 0.05},
		joint.Segment{Area: 5e-5, Length: 0})
	require.NoError(t, err)
	require.InEpsilon(t, single, halves, 1e-12)
}

func TestBoltStiffness_Errors(t *testing.T) {
	_, err := joint.BoltStiffness(200e9)
	require.ErrorIs(t, err, serrors.ErrComputation)

	_, err = joint.BoltStiffness(200e9, joint.Segment{Area: 0, Length: 0.1})
	require.ErrorIs(t, err, serrors.ErrComputation)

	_, err = joint.BoltStiffness(0, joint.Segment{Area: 1, Length: 0.1})
	require.ErrorIs(t, err, serrors.ErrComputation)
}

func TestCornwellCoefficients(t *testing.T) {
	table := joint.CornwellTable

	t.Run("exact row", func(t *testing.T) {
		require.Equal(t, [4]float64{0.7580, -1.2632, 1.0979, -0.3708}, joint.CornwellCoefficients(table, 0.5))
	})
	t.Run("clamped below", func(t *testing.T) {
		require.Equal(t, table[0].Coeffs, joint.CornwellCoefficients(table, 0.01))
	})
	t.Run("clamped above", func(t *testing.T) {
		require.Equal(t, table[len(table)-1].Coeffs, joint.CornwellCoefficients(table, 5))
	})
	t.Run("interpolated", func(t *testing.T) {
		got := joint.CornwellCoefficients(table, 0.15)
		require.InDelta(t, (0.4389+0.6118)/2, got[0], 1e-12)
		require.InDelta(t, (-0.3187-0.3806)/2, got[3], 1e-12)
	})
	t.Run("table is sorted", func(t *testing.T) {
		for i := 1; i < len(table); i++ {
			require.Greater(t, table[i].Ratio, table[i-1].Ratio)
		}
	})
}

func TestCornwellFactor(t *testing.T) {
	// Same-material plates, j = 0.1.
	require.InDelta(t, 0.0906, joint.CornwellFactor(joint.CornwellTable, 0.1, 1), 1e-12)
	// j = 0.15 interpolates the row sums.
	require.InDelta(t, 0.1189, joint.CornwellFactor(joint.CornwellTable, 0.15, 1), 1e-12)

	// A swapped-in table changes the fit without touching the equation.
	flat := []joint.CornwellRow{{Ratio: 0.1, Coeffs: [4]float64{0.25, 0, 0, 0}}, {Ratio: 2, Coeffs: [4]float64{0.25, 0, 0, 0}}}
	require.Equal(t, 0.25, joint.CornwellFactor(flat, 1, 3))
}

func TestCornwellMemberStiffness(t *testing.T) {
	km, err := joint.CornwellMemberStiffness(joint.CornwellTable, 1e6, 0.3125, 3.125, 30e6, 30e6)
	require.NoError(t, err)
	require.InDelta(t, 1e6*(1-0.0906)/0.0906, km, 1e-3)

	// A very stiff member drives the cubic outside (0, 1).
	_, err = joint.CornwellMemberStiffness(joint.CornwellTable, 1e6, 0.3125, 3, 1e12, 30e6)
	require.ErrorIs(t, err, serrors.ErrComputation)
}

func TestNewStiffness(t *testing.T) {
	st, err := joint.NewStiffness(1, 4)
	require.NoError(t, err)
	require.InDelta(t, 0.2, st.Factor, 1e-15)

	for _, c := range []struct{ kb, km float64 }{{0, 1}, {1, 0}, {-1, 1}, {1, math.Inf(1)}, {math.NaN(), 1}} {
		_, err := joint.NewStiffness(c.kb, c.km)
		require.ErrorIs(t, err, serrors.ErrComputation, "kb=%g km=%g", c.kb, c.km)
	}
}

func TestComputeStiffness_Norton(t *testing.T) {
	f, m := nortonFastener(), steelMember()
	g, err := joint.ResolveGeometry(f, m)
	require.NoError(t, err)

	st, err := joint.ComputeStiffness(g, f, m)
	require.NoError(t, err)
	require.InDelta(t, 586123.479, st.Bolt, 1e-2)
	require.InDelta(t, 5719104.447, st.Member, 1e-2)
	require.InDelta(t, 0.0929583333, st.Factor, 1e-9)
	require.Greater(t, st.Factor, 0.0)
	require.Less(t, st.Factor, 1.0)
}

func TestComputeStiffness_UnsupportedStack(t *testing.T) {
	f, m := nortonFastener(), steelMember()
	g, err := joint.ResolveGeometry(f, m)
	require.NoError(t, err)

	m.Stack = domain.MemberStack("GASKETED")
	_, err = joint.ComputeStiffness(g, f, m)
	require.ErrorIs(t, err, serrors.ErrComputation)
}
