package domain

// Stiffness holds the derived spring rates of the joint.
type Stiffness struct {
	// Bolt is the axial bolt stiffness k_b.
	Bolt float64
	// Member is the equivalent member stiffness k_m.
	Member float64
	// Factor is the joint stiffness factor C = k_b/(k_b+k_m).
	Factor float64
}

// LoadResponse is the force state of the joint under an applied load.
type LoadResponse struct {
	// Load is the applied external load P.
	Load float64
	// BoltForce is the tension in the bolt Fb.
	BoltForce float64
	// MemberForce is the clamping (compressive) force in the members Fm.
	MemberForce float64
	// Separated reports whether the members no longer carry clamping force.
	Separated bool
}

// FactorsOfSafety holds the three independent safety factors. A factor is
// +Inf when its denominator vanishes (e.g. no applied load).
type FactorsOfSafety struct {
	Separation float64
	Yield      float64
	Fatigue    float64
}

// Min returns the governing (smallest) factor.
func (f FactorsOfSafety) Min() float64 {
	return min(f.Separation, f.Yield, f.Fatigue)
}

// FatigueStress is the stress state used by the fatigue check.
type FatigueStress struct {
	// Alternating is the effective alternating stress in the bolt.
	Alternating float64
	// Mean is the effective mean stress in the bolt, clipped at zero.
	Mean float64
	// Allowable is the allowable alternating stress at Mean.
	Allowable float64
}

// LoadPoint is the per-load-point result.
type LoadPoint struct {
	LoadResponse
	Fatigue FatigueStress
	Safety  FactorsOfSafety
}
