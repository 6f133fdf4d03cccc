package joint

import (
	"boltjoint/pkg/domain"
	"boltjoint/pkg/serrors"
)

// Segment is one axial spring of the bolt: a constant cross-section over a
// length.
type Segment struct {
	Area   float64
	Length float64
}

// BoltStiffness combines the bolt segments in series, k_b = 1/Σ(l_i/(A_i·E)).
// Zero-length segments contribute nothing.
func BoltStiffness(modulus float64, segments ...Segment) (float64, error) {
	var compliance float64
	for _, s := range segments {
		if s.Length == 0 {
			continue
		}
		if !(s.Area > 0) || !(s.Length > 0) {
			return 0, serrors.With(serrors.ErrComputation,
				"bolt segment area %g and length %g must be positive", s.Area, s.Length)
		}
		compliance += s.Length / (s.Area * modulus)
	}
	if !(compliance > 0) || !(modulus > 0) {
		return 0, serrors.With(serrors.ErrComputation, "bolt has no compliant length inside the grip")
	}

	return 1 / compliance, nil
}

// NewStiffness builds the joint stiffness from k_b and k_m and checks that the
// resulting factor C lies strictly inside (0, 1).
func NewStiffness(bolt, member float64) (domain.Stiffness, error) {
	if !(bolt > 0) || !finite(bolt) {
		return domain.Stiffness{}, serrors.With(serrors.ErrComputation, "bolt stiffness must be positive, got %g", bolt)
	}
	if !(member > 0) || !finite(member) {
		return domain.Stiffness{}, serrors.With(serrors.ErrComputation, "member stiffness must be positive, got %g", member)
	}

	c := bolt / (bolt + member)
	if !(c > 0 && c < 1) {
		return domain.Stiffness{}, serrors.With(serrors.ErrComputation, "stiffness factor %g outside (0, 1)", c)
	}

	return domain.Stiffness{Bolt: bolt, Member: member, Factor: c}, nil
}

// ComputeStiffness derives k_b from the shank and thread segments inside the
// grip and k_m from Cornwell's fit under the equivalent-member assumption.
func ComputeStiffness(g Geometry, f domain.Fastener, m domain.Member) (domain.Stiffness, error) {
	if m.StackOrDefault() != domain.StackEquivalent {
		return domain.Stiffness{}, serrors.With(serrors.ErrComputation,
			"no member stiffness model for stack %q", m.Stack)
	}

	kb, err := BoltStiffness(f.Modulus,
		Segment{Area: g.ShankArea, Length: g.ShankLength},
		Segment{Area: g.StressArea, Length: g.ThreadLength})
	if err != nil {
		return domain.Stiffness{}, err
	}

	km, err := CornwellMemberStiffness(CornwellTable, kb, g.NominalDiameter, g.Grip, m.Modulus, f.Modulus)
	if err != nil {
		return domain.Stiffness{}, err
	}

	return NewStiffness(kb, km)
}
