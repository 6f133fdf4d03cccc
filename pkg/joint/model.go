package joint

import (
	"boltjoint/pkg/domain"
)

// Model is a joint with resolved geometry and stiffness. Preload is not part
// of the model so that preload sweeps can reuse it.
type Model struct {
	Fastener  domain.Fastener
	Geometry  Geometry
	Stiffness domain.Stiffness
	Fatigue   FatigueModel
}

// NewModel validates the fastener and member and computes the stiffness.
func NewModel(f domain.Fastener, m domain.Member) (Model, error) {
	g, err := ResolveGeometry(f, m)
	if err != nil {
		return Model{}, err
	}

	return newModel(f, m, g)
}

func newModel(f domain.Fastener, m domain.Member, g Geometry) (Model, error) {
	st, err := ComputeStiffness(g, f, m)
	if err != nil {
		return Model{}, err
	}

	return Model{
		Fastener:  f,
		Geometry:  g,
		Stiffness: st,
		Fatigue:   NewFatigueModel(f, g),
	}, nil
}

// Joint returns the joint state for preload fi.
func (m Model) Joint(fi float64) Joint {
	return Joint{Preload: fi, Factor: m.Stiffness.Factor}
}

// Evaluate computes the load response and the three factors of safety at the
// applied load p with preload fi. The fatigue range is [fatigueMin, p]. Inputs
// are assumed validated.
func (m Model) Evaluate(fi, p, fatigueMin float64) domain.LoadPoint {
	j := m.Joint(fi)
	nf, stress := FatigueSafety(j, m.Fatigue, domain.LoadRange{Min: fatigueMin, Max: p})

	return domain.LoadPoint{
		LoadResponse: j.respond(p),
		Fatigue:      stress,
		Safety: domain.FactorsOfSafety{
			Separation: SeparationSafety(j, p),
			Yield:      YieldSafety(j, m.Geometry.ProofLoad, p),
			Fatigue:    nf,
		},
	}
}
