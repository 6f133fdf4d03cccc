package joint

import (
	"math"

	"boltjoint/pkg/domain"
	"boltjoint/pkg/serrors"
)

const (
	// pitchDiameterFactor gives the basic pitch diameter d_p = d - 0.649519·p
	// of 60° unified and ISO threads.
	pitchDiameterFactor = 0.649519
	// rootDiameterFactor gives the basic minor diameter of an external ISO
	// thread, d_r = d - 1.226869·p.
	rootDiameterFactor = 1.226869
	// thicknessTolerance is the relative mismatch allowed between the member
	// thickness and the grip length.
	thicknessTolerance = 1e-9
	maxFinite          = math.MaxFloat64
)

// Geometry is the validated, derived geometry of a joint.
type Geometry struct {
	// NominalDiameter is the bolt major diameter.
	NominalDiameter float64
	// Pitch is the thread pitch, zero when the stress area was supplied
	// without thread data.
	Pitch float64
	// MinorDiameter is the thread root diameter used for the stress area.
	MinorDiameter float64
	// StressArea is the tensile stress area A_t.
	StressArea float64
	// ShankArea is the full cross-section π d²/4 of the unthreaded shank.
	ShankArea float64
	// Grip is the clamped length.
	Grip float64
	// ShankLength is the unthreaded length inside the grip.
	ShankLength float64
	// ThreadLength is the threaded length inside the grip.
	ThreadLength float64
	// ProofLoad is S_p·A_t.
	ProofLoad float64
	// FatigueConcentration is the normalized K_f (≥ 1).
	FatigueConcentration float64
}

// TensileStressArea returns A_t = π/4·((d_p + d_r)/2)² (Norton eq. 15.1) for a
// thread of major diameter d and the given pitch. A zero minor diameter uses
// the basic ISO root diameter.
func TensileStressArea(d, pitch, minor float64) float64 {
	dp := d - pitchDiameterFactor*pitch
	if minor == 0 {
		minor = d - rootDiameterFactor*pitch
	}
	mean := (dp + minor) / 2

	return math.Pi / 4 * mean * mean
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func requirePositive(field string, v float64) error {
	if !(v > 0) || !finite(v) {
		return serrors.Field(serrors.ErrValidation, field, "must be a positive finite number, got %g", v)
	}

	return nil
}

func requireNonNegative(field string, v float64) error {
	if !(v >= 0) || !finite(v) {
		return serrors.Field(serrors.ErrValidation, field, "must be a non-negative finite number, got %g", v)
	}

	return nil
}

// ValidateFastener checks the fastener description in isolation.
func ValidateFastener(f domain.Fastener) error {
	for _, c := range []struct {
		field string
		v     float64
	}{
		{"fastener.nominalDiameter", f.NominalDiameter},
		{"fastener.totalLength", f.TotalLength},
		{"fastener.gripLength", f.GripLength},
		{"fastener.modulus", f.Modulus},
		{"fastener.proofStrength", f.ProofStrength},
		{"fastener.yieldStrength", f.YieldStrength},
		{"fastener.ultimateStrength", f.UltimateStrength},
		{"fastener.enduranceLimit", f.EnduranceLimit},
	} {
		if err := requirePositive(c.field, c.v); err != nil {
			return err
		}
	}
	for _, c := range []struct {
		field string
		v     float64
	}{
		{"fastener.threadedLength", f.ThreadedLength},
		{"fastener.pitch", f.Pitch},
		{"fastener.threadsPerLength", f.ThreadsPerLength},
		{"fastener.minorDiameter", f.MinorDiameter},
		{"fastener.stressArea", f.StressArea},
		{"fastener.fatigueConcentration", f.FatigueConcentration},
	} {
		if err := requireNonNegative(c.field, c.v); err != nil {
			return err
		}
	}

	if f.ThreadedLength > f.TotalLength {
		return serrors.Field(serrors.ErrValidation, "fastener.threadedLength",
			"must not exceed total length %g, got %g", f.TotalLength, f.ThreadedLength)
	}
	if f.GripLength > f.TotalLength {
		return serrors.Field(serrors.ErrValidation, "fastener.gripLength",
			"must not exceed total length %g, got %g", f.TotalLength, f.GripLength)
	}
	if f.ProofStrength > f.UltimateStrength {
		return serrors.Field(serrors.ErrValidation, "fastener.proofStrength",
			"must not exceed ultimate strength %g, got %g", f.UltimateStrength, f.ProofStrength)
	}
	if f.YieldStrength > f.UltimateStrength {
		return serrors.Field(serrors.ErrValidation, "fastener.yieldStrength",
			"must not exceed ultimate strength %g, got %g", f.UltimateStrength, f.YieldStrength)
	}
	if f.EnduranceLimit >= f.UltimateStrength {
		return serrors.Field(serrors.ErrValidation, "fastener.enduranceLimit",
			"must be below ultimate strength %g, got %g", f.UltimateStrength, f.EnduranceLimit)
	}
	if f.FatigueConcentration != 0 && f.FatigueConcentration < 1 {
		return serrors.Field(serrors.ErrValidation, "fastener.fatigueConcentration",
			"must be zero (none) or at least 1, got %g", f.FatigueConcentration)
	}
	if f.Pitch > 0 && f.ThreadsPerLength > 0 {
		return serrors.Field(serrors.ErrValidation, "fastener.pitch",
			"set either pitch or threadsPerLength, not both")
	}
	if f.StressArea == 0 && f.Pitch == 0 && f.ThreadsPerLength == 0 {
		return serrors.Field(serrors.ErrValidation, "fastener.pitch",
			"pitch or threadsPerLength is required when stressArea is not given")
	}
	if f.MinorDiameter >= f.NominalDiameter {
		return serrors.Field(serrors.ErrValidation, "fastener.minorDiameter",
			"must be below nominal diameter %g, got %g", f.NominalDiameter, f.MinorDiameter)
	}

	return nil
}

// ValidateMember checks the member description against the fastener grip.
func ValidateMember(m domain.Member, f domain.Fastener) error {
	if err := requirePositive("member.modulus", m.Modulus); err != nil {
		return err
	}
	if err := requirePositive("member.outerDiameter", m.OuterDiameter); err != nil {
		return err
	}
	if err := requireNonNegative("member.thickness", m.Thickness); err != nil {
		return err
	}
	if m.OuterDiameter <= f.NominalDiameter {
		return serrors.Field(serrors.ErrValidation, "member.outerDiameter",
			"must exceed the bolt nominal diameter %g, got %g", f.NominalDiameter, m.OuterDiameter)
	}
	if m.Thickness != 0 && math.Abs(m.Thickness-f.GripLength) > thicknessTolerance*f.GripLength {
		return serrors.Field(serrors.ErrValidation, "member.thickness",
			"must equal the fastener grip length %g, got %g", f.GripLength, m.Thickness)
	}
	if s := m.StackOrDefault(); s != domain.StackEquivalent {
		return serrors.Field(serrors.ErrValidation, "member.stack",
			"unsupported member stack %q, only %q is modelled", s, domain.StackEquivalent)
	}

	return nil
}

// ResolveGeometry validates the fastener and member and derives the joint
// geometry used by all later stages.
func ResolveGeometry(f domain.Fastener, m domain.Member) (Geometry, error) {
	if err := ValidateFastener(f); err != nil {
		return Geometry{}, err
	}
	if err := ValidateMember(m, f); err != nil {
		return Geometry{}, err
	}

	d := f.NominalDiameter
	g := Geometry{
		NominalDiameter:      d,
		ShankArea:            math.Pi / 4 * d * d,
		Grip:                 f.GripLength,
		FatigueConcentration: max(1, f.FatigueConcentration),
	}

	switch {
	case f.Pitch > 0:
		g.Pitch = f.Pitch
	case f.ThreadsPerLength > 0:
		g.Pitch = 1 / f.ThreadsPerLength
	}

	if g.Pitch > 0 {
		g.MinorDiameter = f.MinorDiameter
		if g.MinorDiameter == 0 {
			g.MinorDiameter = d - rootDiameterFactor*g.Pitch
		}
		if g.MinorDiameter <= 0 || d-pitchDiameterFactor*g.Pitch <= 0 {
			return Geometry{}, serrors.Field(serrors.ErrValidation, "fastener.pitch",
				"pitch %g is too coarse for diameter %g", g.Pitch, d)
		}
	}

	g.StressArea = f.StressArea
	if g.StressArea == 0 {
		g.StressArea = TensileStressArea(d, g.Pitch, g.MinorDiameter)
	}
	if g.StressArea > g.ShankArea {
		return Geometry{}, serrors.Field(serrors.ErrValidation, "fastener.stressArea",
			"must not exceed the shank area %g, got %g", g.ShankArea, g.StressArea)
	}

	g.ShankLength = min(f.TotalLength-f.ThreadedLength, f.GripLength)
	g.ThreadLength = f.GripLength - g.ShankLength
	g.ProofLoad = f.ProofLoad(g.StressArea)

	return g, nil
}
