package joint

import (
	"sort"

	"boltjoint/pkg/serrors"
)

// CornwellRow holds the coefficients of Cornwell's cubic fit for one
// diameter-to-grip ratio j = d/l.
type CornwellRow struct {
	Ratio  float64
	Coeffs [4]float64 // p0, p1, p2, p3
}

// CornwellTable is Norton table 15-8: Cornwell's fit of the joint constant
// against finite-element studies of two plates of one material compressed by
// a bolt. Rows are sorted by Ratio.
var CornwellTable = []CornwellRow{ //nolint: gochecknoglobals
	{0.10, [4]float64{0.4389, -0.9197, 0.8901, -0.3187}},
	{0.20, [4]float64{0.6118, -1.1715, 1.0875, -0.3806}},
	{0.30, [4]float64{0.6932, -1.2426, 1.1177, -0.3845}},
	{0.40, [4]float64{0.7351, -1.2612, 1.1111, -0.3779}},
	{0.50, [4]float64{0.7580, -1.2632, 1.0979, -0.3708}},
	{0.60, [4]float64{0.7709, -1.2600, 1.0851, -0.3647}},
	{0.70, [4]float64{0.7773, -1.2543, 1.0735, -0.3595}},
	{0.80, [4]float64{0.7800, -1.2503, 1.0672, -0.3571}},
	{0.90, [4]float64{0.7797, -1.2458, 1.0620, -0.3552}},
	{1.00, [4]float64{0.7774, -1.2413, 1.0577, -0.3537}},
	{1.25, [4]float64{0.7667, -1.2333, 1.0548, -0.3535}},
	{1.50, [4]float64{0.7518, -1.2264, 1.0554, -0.3550}},
	{1.75, [4]float64{0.7350, -1.2202, 1.0581, -0.3574}},
	{2.00, [4]float64{0.7175, -1.2133, 1.0604, -0.3596}},
}

// CornwellCoefficients linearly interpolates the coefficient row for ratio j.
// Ratios outside the published range are clamped to the nearest end row.
func CornwellCoefficients(table []CornwellRow, j float64) [4]float64 {
	if j <= table[0].Ratio {
		return table[0].Coeffs
	}
	last := table[len(table)-1]
	if j >= last.Ratio {
		return last.Coeffs
	}

	i := sort.Search(len(table), func(i int) bool { return table[i].Ratio >= j })
	hi := table[i]
	if hi.Ratio == j {
		return hi.Coeffs
	}
	lo := table[i-1]
	t := (j - lo.Ratio) / (hi.Ratio - lo.Ratio)

	var out [4]float64
	for k := range out {
		out[k] = lo.Coeffs[k] + t*(hi.Coeffs[k]-lo.Coeffs[k])
	}

	return out
}

// CornwellFactor evaluates Norton eq. 15.19, C = p3·r³ + p2·r² + p1·r + p0,
// for the diameter-to-grip ratio j and modulus ratio r = E_m/E_b.
func CornwellFactor(table []CornwellRow, j, r float64) float64 {
	p := CornwellCoefficients(table, j)

	return ((p[3]*r+p[2])*r+p[1])*r + p[0]
}

// CornwellMemberStiffness converts the Cornwell joint factor into an
// equivalent member stiffness k_m = k_b(1-C)/C for the given bolt stiffness.
func CornwellMemberStiffness(table []CornwellRow, boltStiffness, d, grip, memberModulus, boltModulus float64) (float64, error) {
	c := CornwellFactor(table, d/grip, memberModulus/boltModulus)
	if !(c > 0 && c < 1) {
		return 0, serrors.With(serrors.ErrComputation,
			"cornwell joint factor %g outside (0, 1) for d/l=%g, Em/Eb=%g",
			c, d/grip, memberModulus/boltModulus)
	}

	return boltStiffness * (1 - c) / c, nil
}
