package joint

import (
	"math"

	"boltjoint/pkg/domain"
)

// SeparationSafety returns P_sep/P, +Inf when no load is applied.
func SeparationSafety(j Joint, p float64) float64 {
	if p == 0 {
		return math.Inf(1)
	}

	return j.SeparationLoad() / p
}

// YieldSafety returns (S_p·A_t - Fi)/(C·P): the remaining load margin before
// the bolt reaches its proof load, divided by the share of P the bolt carries.
// It is +Inf when no load is applied.
func YieldSafety(j Joint, proofLoad, p float64) float64 {
	if p == 0 {
		return math.Inf(1)
	}

	return max(0, (proofLoad-j.Preload)/(j.Factor*p))
}

// FatigueModel holds the bolt properties used by the fatigue check.
type FatigueModel struct {
	StressArea       float64
	YieldStrength    float64
	UltimateStrength float64
	EnduranceLimit   float64
	// Concentration is K_f; values ≤ 1 disable stress concentration.
	Concentration float64
}

// NewFatigueModel builds a FatigueModel from the fastener and its geometry.
func NewFatigueModel(f domain.Fastener, g Geometry) FatigueModel {
	return FatigueModel{
		StressArea:       g.StressArea,
		YieldStrength:    f.YieldStrength,
		UltimateStrength: f.UltimateStrength,
		EnduranceLimit:   f.EnduranceLimit,
		Concentration:    g.FatigueConcentration,
	}
}

// meanConcentration returns K_fm for local yielding at the thread root
// (Norton eq. 6.17): K_f while K_f·σmax stays below S_y, otherwise the factor
// that brings the peak back to S_y.
func (m FatigueModel) meanConcentration(mean, alt float64) float64 {
	kf := m.Concentration
	if kf*(mean+alt) <= m.YieldStrength || mean <= 0 {
		return kf
	}

	return max(0, (m.YieldStrength-kf*alt)/mean)
}

// FatigueSafety evaluates the modified-Goodman fatigue factor of safety of the
// bolt for the cyclic applied load r.
//
// The bolt carries F_alt = C·(P_max-P_min)/2 and F_mean = Fi + C·(P_max+P_min)/2.
// The allowable alternating stress falls linearly from S_e at zero mean stress
// to zero at S_ut; the factor is S_a/σ_a along a constant-mean load line. A
// non-positive mean stress is clipped to zero rather than extrapolating the
// Goodman line, and a static load (σ_a = 0) yields +Inf.
func FatigueSafety(j Joint, m FatigueModel, r domain.LoadRange) (float64, domain.FatigueStress) {
	lo, hi := min(r.Min, r.Max), max(r.Min, r.Max)
	rng := domain.LoadRange{Min: lo, Max: hi}

	alt := j.Factor * rng.Alternating() / m.StressArea
	mean := (j.Preload + j.Factor*rng.Mean()) / m.StressArea

	if m.Concentration > 1 {
		kfm := m.meanConcentration(mean, alt)
		alt *= m.Concentration
		mean *= kfm
	}
	mean = max(0, mean)

	allowable := max(0, m.EnduranceLimit*(1-mean/m.UltimateStrength))
	stress := domain.FatigueStress{Alternating: alt, Mean: mean, Allowable: allowable}

	if alt == 0 {
		return math.Inf(1), stress
	}

	return allowable / alt, stress
}
