package joint

import (
	"boltjoint/pkg/domain"
	"boltjoint/pkg/series"
)

// DefaultPreloadSweep samples 99 proof-load fractions from 1% to 99%.
var DefaultPreloadSweep = domain.Sweep{Min: 0.01, Max: 0.99, Count: 99} //nolint: gochecknoglobals

// PreloadCurves are the factor-of-safety curves against the proof-load
// fraction p, all sharing the abscissa of Fractions.
type PreloadCurves struct {
	Fractions domain.Sweep
	// Force maps p to the resolved preload Fi.
	Force      series.Series
	Separation series.Series
	Yield      series.Series
	Fatigue    series.Series
	// Minimum is the governing envelope min(separation, yield, fatigue).
	Minimum series.Series
	// Optimum is the sample maximizing Minimum.
	Optimum OptimumPreload
}

// OptimumPreload is the best preload found by a sweep.
type OptimumPreload struct {
	Fraction float64
	Preload  float64
	Safety   domain.FactorsOfSafety
}

// SweepPreload re-resolves the preload for every fraction of the sweep and
// evaluates the factors of safety at the fixed cyclic load r. Each sample is
// independent; the returned series recompute lazily on access.
func SweepPreload(m Model, sweep domain.Sweep, r domain.LoadRange) (PreloadCurves, error) {
	if err := ValidateSweep("preloadSweep", sweep, 0, 1, true); err != nil {
		return PreloadCurves{}, err
	}
	if err := ValidateLoad("load", r.Max); err != nil {
		return PreloadCurves{}, err
	}
	if err := ValidateLoad("load.fatigueMin", r.Min); err != nil {
		return PreloadCurves{}, err
	}

	eval := func(i int) (float64, domain.LoadPoint) {
		p := sweep.At(i)
		fi, err := ResolvePreload(domain.ProofFraction(p), m.Geometry.ProofLoad)
		if err != nil {
			// bounds were validated above
			panic(err)
		}

		return fi, m.Evaluate(fi, r.Max, r.Min)
	}
	curve := func(name string, pick func(fi float64, lp domain.LoadPoint) float64) series.Series {
		return series.New(name, sweep.Count, func(i int) series.Point {
			fi, lp := eval(i)

			return series.Point{X: sweep.At(i), Y: pick(fi, lp)}
		})
	}

	c := PreloadCurves{
		Fractions:  sweep,
		Force:      curve("preload", func(fi float64, _ domain.LoadPoint) float64 { return fi }),
		Separation: curve("separation", func(_ float64, lp domain.LoadPoint) float64 { return lp.Safety.Separation }),
		Yield:      curve("yield", func(_ float64, lp domain.LoadPoint) float64 { return lp.Safety.Yield }),
		Fatigue:    curve("fatigue", func(_ float64, lp domain.LoadPoint) float64 { return lp.Safety.Fatigue }),
		Minimum:    curve("minimum", func(_ float64, lp domain.LoadPoint) float64 { return lp.Safety.Min() }),
	}

	for i := range sweep.Count {
		fi, lp := eval(i)
		if i == 0 || lp.Safety.Min() > c.Optimum.Safety.Min() {
			c.Optimum = OptimumPreload{Fraction: sweep.At(i), Preload: fi, Safety: lp.Safety}
		}
	}

	return c, nil
}
