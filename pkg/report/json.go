package report

import (
	"io"
	"math"

	"boltjoint/pkg/domain"
	"boltjoint/pkg/joint"
	"boltjoint/pkg/series"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// JSONOptions control the JSON document.
type JSONOptions struct {
	// Series includes the diagram and preload-sweep point lists.
	Series bool
	// Indent pretty-prints with the given number of spaces.
	Indent int
}

// WriteJSON encodes the document as JSON. Infinite factors of safety are
// encoded as null.
func WriteJSON(w io.Writer, doc Document, opts JSONOptions) error {
	if doc.Result == nil {
		return errors.New("document has no result")
	}

	var e jx.Encoder
	if opts.Indent > 0 {
		e.SetIdent(opts.Indent)
	}
	encodeDocument(&e, doc, opts)

	if _, err := w.Write(e.Bytes()); err != nil {
		return errors.Wrap(err, "write json")
	}

	return nil
}

func encodeFloat(e *jx.Encoder, v float64) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		e.Null()

		return
	}
	e.Float64(v)
}

func floatField(e *jx.Encoder, name string, v float64) {
	e.FieldStart(name)
	encodeFloat(e, v)
}

func encodeDocument(e *jx.Encoder, doc Document, opts JSONOptions) {
	r := doc.Result

	e.ObjStart()
	if doc.RunID != "" {
		e.Field("run", func(e *jx.Encoder) { e.Str(doc.RunID) })
	}
	if doc.Title != "" {
		e.Field("title", func(e *jx.Encoder) { e.Str(doc.Title) })
	}
	e.Field("units", func(e *jx.Encoder) { encodeUnits(e, doc.Units) })
	e.Field("geometry", func(e *jx.Encoder) { encodeGeometry(e, r.Geometry) })
	e.Field("stiffness", func(e *jx.Encoder) {
		e.ObjStart()
		floatField(e, "bolt", r.Stiffness.Bolt)
		floatField(e, "member", r.Stiffness.Member)
		floatField(e, "factor", r.Stiffness.Factor)
		e.ObjEnd()
	})
	floatField(e, "preload", r.Preload)
	floatField(e, "proofLoad", r.ProofLoad)
	floatField(e, "separationLoad", r.SeparationLoad)
	floatField(e, "governingSafety", r.Governing())
	e.Field("points", func(e *jx.Encoder) {
		e.ArrStart()
		for _, p := range r.Points {
			encodePoint(e, p)
		}
		e.ArrEnd()
	})
	if r.Diagram != nil {
		e.Field("diagram", func(e *jx.Encoder) { encodeDiagram(e, r.Diagram, opts.Series) })
	}
	if r.PreloadCurves != nil {
		e.Field("preloadCurves", func(e *jx.Encoder) { encodeCurves(e, r.PreloadCurves, opts.Series) })
	}
	e.ObjEnd()
}

func encodeUnits(e *jx.Encoder, u domain.Units) {
	e.ObjStart()
	e.Field("force", func(e *jx.Encoder) { e.Str(u.Force) })
	e.Field("length", func(e *jx.Encoder) { e.Str(u.Length) })
	e.Field("stress", func(e *jx.Encoder) { e.Str(u.Stress) })
	e.ObjEnd()
}

func encodeGeometry(e *jx.Encoder, g joint.Geometry) {
	e.ObjStart()
	floatField(e, "nominalDiameter", g.NominalDiameter)
	floatField(e, "pitch", g.Pitch)
	floatField(e, "minorDiameter", g.MinorDiameter)
	floatField(e, "stressArea", g.StressArea)
	floatField(e, "shankArea", g.ShankArea)
	floatField(e, "grip", g.Grip)
	floatField(e, "shankLength", g.ShankLength)
	floatField(e, "threadLength", g.ThreadLength)
	floatField(e, "fatigueConcentration", g.FatigueConcentration)
	e.ObjEnd()
}

func encodeSafety(e *jx.Encoder, s domain.FactorsOfSafety) {
	e.ObjStart()
	floatField(e, "separation", s.Separation)
	floatField(e, "yield", s.Yield)
	floatField(e, "fatigue", s.Fatigue)
	floatField(e, "minimum", s.Min())
	e.ObjEnd()
}

func encodePoint(e *jx.Encoder, p domain.LoadPoint) {
	e.ObjStart()
	floatField(e, "load", p.Load)
	floatField(e, "boltForce", p.BoltForce)
	floatField(e, "memberForce", p.MemberForce)
	e.Field("separated", func(e *jx.Encoder) { e.Bool(p.Separated) })
	e.Field("fatigue", func(e *jx.Encoder) {
		e.ObjStart()
		floatField(e, "alternating", p.Fatigue.Alternating)
		floatField(e, "mean", p.Fatigue.Mean)
		floatField(e, "allowable", p.Fatigue.Allowable)
		e.ObjEnd()
	})
	e.Field("safety", func(e *jx.Encoder) { encodeSafety(e, p.Safety) })
	e.ObjEnd()
}

func encodeXY(e *jx.Encoder, p series.Point) {
	e.ArrStart()
	encodeFloat(e, p.X)
	encodeFloat(e, p.Y)
	e.ArrEnd()
}

func encodeSeries(e *jx.Encoder, s series.Series) {
	e.ArrStart()
	for _, p := range s.All() {
		encodeXY(e, p)
	}
	e.ArrEnd()
}

func encodeDiagram(e *jx.Encoder, d *joint.JointDiagram, withSeries bool) {
	e.ObjStart()
	e.Field("preloadPoint", func(e *jx.Encoder) { encodeXY(e, d.PreloadPoint) })
	floatField(e, "separationDeflection", d.SeparationDeflection)
	if a := d.Applied; a != nil {
		e.Field("applied", func(e *jx.Encoder) {
			e.ObjStart()
			floatField(e, "load", a.Load)
			e.Field("bolt", func(e *jx.Encoder) { encodeXY(e, a.Bolt) })
			e.Field("member", func(e *jx.Encoder) { encodeXY(e, a.Member) })
			e.ObjEnd()
		})
	}
	if withSeries {
		e.Field("preload", func(e *jx.Encoder) { encodeSeries(e, d.Preload) })
		e.Field("bolt", func(e *jx.Encoder) { encodeSeries(e, d.Bolt) })
		e.Field("member", func(e *jx.Encoder) { encodeSeries(e, d.Member) })
	}
	e.ObjEnd()
}

func encodeCurves(e *jx.Encoder, c *joint.PreloadCurves, withSeries bool) {
	e.ObjStart()
	e.Field("fractions", func(e *jx.Encoder) {
		e.ObjStart()
		floatField(e, "min", c.Fractions.Min)
		floatField(e, "max", c.Fractions.Max)
		e.Field("count", func(e *jx.Encoder) { e.Int(c.Fractions.Count) })
		e.ObjEnd()
	})
	e.Field("optimum", func(e *jx.Encoder) {
		e.ObjStart()
		floatField(e, "fraction", c.Optimum.Fraction)
		floatField(e, "preload", c.Optimum.Preload)
		e.Field("safety", func(e *jx.Encoder) { encodeSafety(e, c.Optimum.Safety) })
		e.ObjEnd()
	})
	if withSeries {
		for _, s := range []series.Series{c.Force, c.Separation, c.Yield, c.Fatigue, c.Minimum} {
			e.Field(s.Name(), func(e *jx.Encoder) { encodeSeries(e, s) })
		}
	}
	e.ObjEnd()
}
