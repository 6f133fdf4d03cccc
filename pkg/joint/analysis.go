package joint

import (
	"boltjoint/pkg/domain"
	"boltjoint/pkg/serrors"
)

// DiagramOptions requests the joint diagram.
type DiagramOptions struct {
	// Samples is the number of points per load line; zero means
	// DefaultDiagramSamples.
	Samples int
}

// Input is the full analysis request.
type Input struct {
	Fastener domain.Fastener
	Member   domain.Member
	Preload  domain.Preload
	Load     domain.AppliedLoad
	// Diagram, when non-nil, requests the joint diagram at the largest load.
	Diagram *DiagramOptions
	// PreloadSweep, when non-nil, requests FoS-vs-proof-fraction curves at the
	// largest load.
	PreloadSweep *domain.Sweep
}

// Result is the analysis results bundle handed to external collaborators.
type Result struct {
	Geometry       Geometry
	Stiffness      domain.Stiffness
	Preload        float64
	ProofLoad      float64
	SeparationLoad float64
	Points         []domain.LoadPoint
	Diagram        *JointDiagram
	PreloadCurves  *PreloadCurves
}

// Governing returns the smallest factor of safety over all load points.
func (r *Result) Governing() float64 {
	var g float64
	for i, p := range r.Points {
		if i == 0 || p.Safety.Min() < g {
			g = p.Safety.Min()
		}
	}

	return g
}

// ValidateInput checks every input field without computing any stiffness or
// load quantity. It returns the derived geometry and the resolved preload.
func ValidateInput(in Input) (Geometry, float64, error) {
	g, err := ResolveGeometry(in.Fastener, in.Member)
	if err != nil {
		return Geometry{}, 0, err
	}

	fi, err := ResolvePreload(in.Preload, g.ProofLoad)
	if err != nil {
		return Geometry{}, 0, err
	}

	if in.Load.Sweep != nil {
		if err := ValidateSweep("load.sweep", *in.Load.Sweep, 0, maxFinite, false); err != nil {
			return Geometry{}, 0, err
		}
	} else if err := ValidateLoad("load.value", in.Load.Value); err != nil {
		return Geometry{}, 0, err
	}
	if err := ValidateLoad("load.fatigueMin", in.Load.FatigueMin); err != nil {
		return Geometry{}, 0, err
	}

	if in.Diagram != nil && in.Diagram.Samples != 0 && in.Diagram.Samples < 2 {
		return Geometry{}, 0, serrors.Field(serrors.ErrValidation, "diagram.samples",
			"must be zero (default) or at least 2, got %d", in.Diagram.Samples)
	}
	if in.PreloadSweep != nil {
		if err := ValidateSweep("preloadSweep", *in.PreloadSweep, 0, 1, true); err != nil {
			return Geometry{}, 0, err
		}
	}

	return g, fi, nil
}

// Analyze runs the whole pipeline on a fresh input snapshot.
func Analyze(in Input) (*Result, error) {
	g, fi, err := ValidateInput(in)
	if err != nil {
		return nil, err
	}

	m, err := newModel(in.Fastener, in.Member, g)
	if err != nil {
		return nil, err
	}

	loads := in.Load.Points()
	res := &Result{
		Geometry:       g,
		Stiffness:      m.Stiffness,
		Preload:        fi,
		ProofLoad:      g.ProofLoad,
		SeparationLoad: m.Joint(fi).SeparationLoad(),
		Points:         make([]domain.LoadPoint, len(loads)),
	}
	for i, p := range loads {
		res.Points[i] = m.Evaluate(fi, p, in.Load.FatigueMin)
	}

	peak := in.Load.Max()
	if in.Diagram != nil {
		samples := in.Diagram.Samples
		if samples == 0 {
			samples = DefaultDiagramSamples
		}
		d, err := Diagram(m.Stiffness, fi, samples, &peak)
		if err != nil {
			return nil, err
		}
		res.Diagram = &d
	}
	if in.PreloadSweep != nil {
		c, err := SweepPreload(m, *in.PreloadSweep, domain.LoadRange{Min: in.Load.FatigueMin, Max: peak})
		if err != nil {
			return nil, err
		}
		res.PreloadCurves = &c
	}

	return res, nil
}
