package joint

import (
	"boltjoint/pkg/domain"
	"boltjoint/pkg/serrors"
)

// ResolvePreload turns a preload request into the preload force Fi. Fractions
// must lie in (0, 1); explicit forces must be positive and below the proof
// load. Over-proof preload is rejected, never clamped.
func ResolvePreload(p domain.Preload, proofLoad float64) (float64, error) {
	if !finite(p.Value) {
		return 0, serrors.Field(serrors.ErrValidation, "preload.value", "must be finite, got %g", p.Value)
	}

	switch p.Mode {
	case domain.PreloadProofFraction:
		if !(p.Value > 0 && p.Value < 1) {
			return 0, serrors.Field(serrors.ErrValidation, "preload.value",
				"proof load fraction must lie in (0, 1), got %g", p.Value)
		}

		return p.Value * proofLoad, nil
	case domain.PreloadForce:
		if !(p.Value > 0) {
			return 0, serrors.Field(serrors.ErrValidation, "preload.value",
				"preload force must be positive, got %g", p.Value)
		}
		if p.Value >= proofLoad {
			return 0, serrors.Field(serrors.ErrValidation, "preload.value",
				"preload force %g must be below the proof load %g", p.Value, proofLoad)
		}

		return p.Value, nil
	default:
		return 0, serrors.Field(serrors.ErrValidation, "preload.mode",
			"unknown preload mode %q, expected %q or %q", p.Mode, domain.PreloadForce, domain.PreloadProofFraction)
	}
}
