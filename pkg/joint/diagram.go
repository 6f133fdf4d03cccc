package joint

import (
	"boltjoint/pkg/domain"
	"boltjoint/pkg/serrors"
	"boltjoint/pkg/series"
)

// DefaultDiagramSamples is the number of points per diagram line when none is
// requested.
const DefaultDiagramSamples = 50

// JointDiagram is the numeric content of the force-deflection joint diagram.
// Deflection is measured as bolt elongation; after preload both load lines
// start at (δ_i, Fi) and diverge until the member line reaches zero force at
// the separation point.
type JointDiagram struct {
	// Preload is the bolt tightening line from the origin to (δ_i, Fi).
	Preload series.Series
	// Bolt is the bolt load line, slope k_b, from (δ_i, Fi) to (δ_sep, P_sep).
	Bolt series.Series
	// Member is the member load line, slope -k_m, from (δ_i, Fi) to (δ_sep, 0).
	Member series.Series
	// PreloadPoint is (δ_i, Fi).
	PreloadPoint series.Point
	// SeparationDeflection is δ_sep = δ_i + Fi/k_m.
	SeparationDeflection float64
	// Applied holds the applied-load markers when a load was given.
	Applied *AppliedMarkers
}

// AppliedMarkers locate an applied load on the bolt and member lines.
type AppliedMarkers struct {
	Load   float64
	Bolt   series.Point
	Member series.Point
}

// Diagram builds the joint diagram for stiffness st and preload fi with the
// given number of samples per load line. When applied is non-nil its markers
// are placed on both lines.
func Diagram(st domain.Stiffness, fi float64, samples int, applied *float64) (JointDiagram, error) {
	if samples < 2 {
		return JointDiagram{}, serrors.Field(serrors.ErrValidation, "diagram.samples",
			"must be at least 2, got %d", samples)
	}
	if applied != nil {
		if err := ValidateLoad("diagram.load", *applied); err != nil {
			return JointDiagram{}, err
		}
	}

	j := Joint{Preload: fi, Factor: st.Factor}
	deltaI := fi / st.Bolt
	gap := fi / st.Member
	deltaSep := deltaI + gap
	pre := series.Point{X: deltaI, Y: fi}

	d := JointDiagram{
		Preload: series.Linear("preload", series.Point{}, pre, 2),
		Bolt: series.New("bolt", samples, func(i int) series.Point {
			if i == samples-1 {
				return series.Point{X: deltaSep, Y: j.SeparationLoad()}
			}
			dx := gap * float64(i) / float64(samples-1)

			return series.Point{X: deltaI + dx, Y: fi + st.Bolt*dx}
		}),
		Member: series.New("member", samples, func(i int) series.Point {
			if i == samples-1 {
				return series.Point{X: deltaSep, Y: 0}
			}
			dx := gap * float64(i) / float64(samples-1)

			return series.Point{X: deltaI + dx, Y: fi - st.Member*dx}
		}),
		PreloadPoint:         pre,
		SeparationDeflection: deltaSep,
	}

	if applied != nil {
		r := j.respond(*applied)
		x := r.BoltForce / st.Bolt
		d.Applied = &AppliedMarkers{
			Load:   *applied,
			Bolt:   series.Point{X: x, Y: r.BoltForce},
			Member: series.Point{X: x, Y: r.MemberForce},
		}
	}

	return d, nil
}
