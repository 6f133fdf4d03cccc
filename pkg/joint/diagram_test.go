package joint_test

import (
	"testing"

	"boltjoint/pkg/domain"
	"boltjoint/pkg/joint"
	"boltjoint/pkg/serrors"
	"boltjoint/pkg/series"

	"github.com/stretchr/testify/require"
)

func TestDiagram_Lines(t *testing.T) {
	st, err := joint.NewStiffness(1e6, 4e6)
	require.NoError(t, err)
	fi := 1000.0
	j := joint.Joint{Preload: fi, Factor: st.Factor}

	d, err := joint.Diagram(st, fi, 11, nil)
	require.NoError(t, err)
	require.Nil(t, d.Applied)

	pre := series.Point{X: fi / 1e6, Y: fi}
	require.Equal(t, pre, d.PreloadPoint)
	require.Equal(t, []series.Point{{}, pre}, d.Preload.Points())

	require.Equal(t, 11, d.Bolt.Len())
	require.Equal(t, 11, d.Member.Len())
	require.Equal(t, pre, d.Bolt.At(0))
	require.Equal(t, pre, d.Member.At(0))

	sepX := fi/1e6 + fi/4e6
	require.InDelta(t, sepX, d.SeparationDeflection, 1e-18)
	require.Equal(t, series.Point{X: d.SeparationDeflection, Y: j.SeparationLoad()}, d.Bolt.At(10))
	require.Equal(t, series.Point{X: d.SeparationDeflection, Y: 0}, d.Member.At(10))

	// Slopes are k_b and -k_m; both lines share abscissae.
	for i := 1; i < 10; i++ {
		b0, b1 := d.Bolt.At(i-1), d.Bolt.At(i)
		m0, m1 := d.Member.At(i-1), d.Member.At(i)
		require.InEpsilon(t, 1e6, (b1.Y-b0.Y)/(b1.X-b0.X), 1e-9)
		require.InEpsilon(t, -4e6, (m1.Y-m0.Y)/(m1.X-m0.X), 1e-9)
		require.Equal(t, b1.X, m1.X)
	}

	// Vertical distance between the lines at any deflection is the applied load.
	mid := d.Bolt.At(5)
	p := (st.Bolt + st.Member) * (mid.X - pre.X)
	r, err := j.Response(p)
	require.NoError(t, err)
	require.InDelta(t, r.BoltForce, mid.Y, 1e-9)
	require.InDelta(t, r.MemberForce, d.Member.At(5).Y, 1e-9)
}

func TestDiagram_AppliedMarkers(t *testing.T) {
	st, err := joint.NewStiffness(1e6, 4e6)
	require.NoError(t, err)

	load := 500.0
	d, err := joint.Diagram(st, 1000, 5, &load)
	require.NoError(t, err)
	require.NotNil(t, d.Applied)
	require.Equal(t, load, d.Applied.Load)
	require.InDelta(t, 1000+0.2*load, d.Applied.Bolt.Y, 1e-9)
	require.InDelta(t, 1000-0.8*load, d.Applied.Member.Y, 1e-9)
	require.InDelta(t, (1000+0.2*load)/1e6, d.Applied.Bolt.X, 1e-15)
	require.Equal(t, d.Applied.Bolt.X, d.Applied.Member.X)

	beyond := 5000.0
	d, err = joint.Diagram(st, 1000, 5, &beyond)
	require.NoError(t, err)
	require.Equal(t, 0.0, d.Applied.Member.Y)
	require.Equal(t, beyond, d.Applied.Bolt.Y)
}

func TestDiagram_Validation(t *testing.T) {
	st := domain.Stiffness{Bolt: 1, Member: 1, Factor: 0.5}

	_, err := joint.Diagram(st, 1, 1, nil)
	require.ErrorIs(t, err, serrors.ErrValidation)

	neg := -1.0
	_, err = joint.Diagram(st, 1, 10, &neg)
	require.ErrorIs(t, err, serrors.ErrValidation)
}
