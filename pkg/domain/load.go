package domain

// Sweep describes Count evenly spaced samples over [Min, Max], endpoints
// included. A Count of one yields Min alone.
type Sweep struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Count int     `yaml:"count"`
}

// At returns the i-th sample of the sweep.
func (s Sweep) At(i int) float64 {
	if s.Count <= 1 {
		return s.Min
	}
	if i == s.Count-1 {
		return s.Max
	}

	return s.Min + (s.Max-s.Min)*float64(i)/float64(s.Count-1)
}

// Values materializes all samples.
func (s Sweep) Values() []float64 {
	out := make([]float64, 0, s.Count)
	for i := range s.Count {
		out = append(out, s.At(i))
	}

	return out
}

// AppliedLoad is the external tensile load request: either a single Value or a
// Sweep. The fatigue range at every load point P is [FatigueMin, P].
type AppliedLoad struct {
	Value float64 `yaml:"value"`
	// Sweep, when non-nil, replaces Value.
	Sweep *Sweep `yaml:"sweep"`
	// FatigueMin is the lower bound of the cyclic load range.
	FatigueMin float64 `yaml:"fatigueMin"`
}

// Points returns the load points requested.
func (a AppliedLoad) Points() []float64 {
	if a.Sweep != nil {
		return a.Sweep.Values()
	}

	return []float64{a.Value}
}

// Max returns the largest requested load.
func (a AppliedLoad) Max() float64 {
	if a.Sweep != nil {
		return max(a.Sweep.Min, a.Sweep.Max)
	}

	return a.Value
}

// LoadRange is a cyclic applied load between Min and Max.
type LoadRange struct {
	Min float64
	Max float64
}

// Alternating returns half the load excursion.
func (r LoadRange) Alternating() float64 { return (r.Max - r.Min) / 2 }

// Mean returns the mid-range load.
func (r LoadRange) Mean() float64 { return (r.Max + r.Min) / 2 }
