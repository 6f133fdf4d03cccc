package joint_test

import (
	"testing"

	"boltjoint/pkg/domain"
	"boltjoint/pkg/joint"
	"boltjoint/pkg/serrors"

	"github.com/stretchr/testify/require"
)

var example = joint.Joint{Preload: 70650, Factor: 0.2}

func TestResponse_WorkedExample(t *testing.T) {
	r, err := example.Response(50000)
	require.NoError(t, err)
	require.InDelta(t, 80650, r.BoltForce, 1e-9)
	require.InDelta(t, 30650, r.MemberForce, 1e-9)
	require.False(t, r.Separated)
	require.InDelta(t, 88312.5, example.SeparationLoad(), 1e-9)
}

func TestResponse_SeparationBoundary(t *testing.T) {
	sep := example.SeparationLoad()

	r, err := example.Response(sep)
	require.NoError(t, err)
	require.Equal(t, 0.0, r.MemberForce)
	require.Equal(t, sep, r.BoltForce)
	require.True(t, r.Separated)

	for _, p := range []float64{sep * 1.0001, sep * 2, 1e7} {
		r, err := example.Response(p)
		require.NoError(t, err)
		require.Equal(t, 0.0, r.MemberForce)
		require.Equal(t, p, r.BoltForce)
		require.True(t, r.Separated)
	}
}

func TestResponse_ForceBalance(t *testing.T) {
	for _, c := range []float64{0.01, 0.2, 0.5, 0.93} {
		j := joint.Joint{Preload: 1000, Factor: c}
		for _, p := range []float64{0, 1, 10, 500, j.SeparationLoad() * 0.999} {
			r, err := j.Response(p)
			require.NoError(t, err)
			added := r.BoltForce - j.Preload
			relieved := j.Preload - r.MemberForce
			require.InDelta(t, p, added+relieved, 1e-9, "C=%g P=%g", c, p)
		}
	}
}

func TestResponse_ZeroLoadIsPreload(t *testing.T) {
	r, err := example.Response(0)
	require.NoError(t, err)
	require.Equal(t, example.Preload, r.BoltForce)
	require.Equal(t, example.Preload, r.MemberForce)
}

func TestResponse_NegativeLoad(t *testing.T) {
	_, err := example.Response(-1)
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestResponses_ElementWise(t *testing.T) {
	loads := domain.Sweep{Min: 0, Max: 120000, Count: 7}.Values()

	got, err := example.Responses(loads)
	require.NoError(t, err)
	require.Len(t, got, len(loads))

	for i, p := range loads {
		single, err := example.Response(p)
		require.NoError(t, err)
		require.Equal(t, single, got[i])
	}
	require.False(t, got[4].Separated) // 80 kN
	require.True(t, got[5].Separated)  // 100 kN

	_, err = example.Responses([]float64{1, 2, -3})
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestValidateSweep(t *testing.T) {
	require.NoError(t, joint.ValidateSweep("s", domain.Sweep{Min: 0.1, Max: 0.9, Count: 5}, 0, 1, true))
	require.NoError(t, joint.ValidateSweep("s", domain.Sweep{Min: 0, Max: 10, Count: 1}, 0, 100, false))

	for _, s := range []domain.Sweep{
		{Min: 0, Max: 0.9, Count: 5},
		{Min: 0.1, Max: 1, Count: 5},
		{Min: 0.5, Max: 0.4, Count: 5},
		{Min: 0.1, Max: 0.9, Count: 0},
	} {
		require.ErrorIs(t, joint.ValidateSweep("s", s, 0, 1, true), serrors.ErrValidation, "%+v", s)
	}
}
