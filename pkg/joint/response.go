package joint

import (
	"boltjoint/pkg/domain"
	"boltjoint/pkg/serrors"
)

// Joint is the preloaded joint state: preload Fi and stiffness factor C.
type Joint struct {
	Preload float64
	Factor  float64
}

// SeparationLoad returns P_sep = Fi/(1-C), the applied load at which the
// members lose all clamping force.
func (j Joint) SeparationLoad() float64 {
	return j.Preload / (1 - j.Factor)
}

// Response returns the bolt and member forces under the applied load p.
//
// While in contact Fb = Fi + C·P and Fm = Fi - (1-C)·P. From P_sep on the
// members carry nothing (Fm = 0) and the whole load passes through the bolt
// (Fb = P).
func (j Joint) Response(p float64) (domain.LoadResponse, error) {
	if err := ValidateLoad("load", p); err != nil {
		return domain.LoadResponse{}, err
	}

	return j.respond(p), nil
}

func (j Joint) respond(p float64) domain.LoadResponse {
	if p >= j.SeparationLoad() {
		return domain.LoadResponse{Load: p, BoltForce: p, MemberForce: 0, Separated: true}
	}

	return domain.LoadResponse{
		Load:        p,
		BoltForce:   j.Preload + j.Factor*p,
		MemberForce: j.Preload - (1-j.Factor)*p,
	}
}

// Responses evaluates every load element-wise. All loads are validated before
// any is evaluated.
func (j Joint) Responses(loads []float64) ([]domain.LoadResponse, error) {
	for i, p := range loads {
		if err := ValidateLoad("load", p); err != nil {
			return nil, serrors.Wrap(serrors.ErrValidation, err, "load point %d", i)
		}
	}

	out := make([]domain.LoadResponse, len(loads))
	for i, p := range loads {
		out[i] = j.respond(p)
	}

	return out, nil
}

// ValidateLoad rejects negative or non-finite applied loads.
func ValidateLoad(field string, p float64) error {
	return requireNonNegative(field, p)
}

// ValidateSweep checks a sweep request. Bounds must satisfy
// lower ≤ Min ≤ Max ≤ upper; open bounds are excluded.
func ValidateSweep(field string, s domain.Sweep, lower, upper float64, open bool) error {
	if s.Count < 1 {
		return serrors.Field(serrors.ErrValidation, field+".count", "must be at least 1, got %d", s.Count)
	}
	if !finite(s.Min) || !finite(s.Max) {
		return serrors.Field(serrors.ErrValidation, field, "bounds must be finite, got [%g, %g]", s.Min, s.Max)
	}
	if s.Max < s.Min {
		return serrors.Field(serrors.ErrValidation, field+".max", "must not be below min %g, got %g", s.Min, s.Max)
	}

	below := s.Min < lower
	above := s.Max > upper
	if open {
		below = s.Min <= lower
		above = s.Max >= upper
	}
	if below || above {
		if open {
			return serrors.Field(serrors.ErrValidation, field,
				"must lie in (%g, %g), got [%g, %g]", lower, upper, s.Min, s.Max)
		}

		return serrors.Field(serrors.ErrValidation, field,
			"must lie in [%g, %g], got [%g, %g]", lower, upper, s.Min, s.Max)
	}

	return nil
}
