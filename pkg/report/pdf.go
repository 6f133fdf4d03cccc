package report

import (
	"fmt"
	"io"
	"time"

	"boltjoint/pkg/series"

	"github.com/go-faster/errors"
	"github.com/phpdave11/gofpdf"
)

const (
	pdfLine       = 6.0
	pdfLabelWidth = 70.0
	pdfValueWidth = 45.0
	// pdfMaxRows caps the load table so the summary fits the first page.
	pdfMaxRows = 12
)

type pdfWriter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (p *pdfWriter) heading(text string) {
	p.pdf.Ln(3)
	p.pdf.SetFont("Helvetica", "B", 12)
	p.pdf.Cell(0, 8, p.tr(text))
	p.pdf.Ln(8)
	p.pdf.SetFont("Helvetica", "", 10)
}

func (p *pdfWriter) quantity(label string, v float64, unit string) {
	p.pdf.CellFormat(pdfLabelWidth, pdfLine, p.tr(label), "", 0, "L", false, 0, "")
	p.pdf.CellFormat(pdfValueWidth, pdfLine, formatFloat(v), "", 0, "R", false, 0, "")
	p.pdf.CellFormat(0, pdfLine, p.tr(" "+unit), "", 1, "L", false, 0, "")
}

func (p *pdfWriter) tableRow(bold bool, widths []float64, cells ...string) {
	style := ""
	if bold {
		style = "B"
	}
	p.pdf.SetFont("Helvetica", style, 9)
	for i, c := range cells {
		p.pdf.CellFormat(widths[i], pdfLine, p.tr(c), "1", 0, "R", false, 0, "")
	}
	p.pdf.Ln(-1)
}

// plot draws the series into the box at (x, y) of size w×h with a shared
// scale and a frame.
func (p *pdfWriter) plot(x, y, w, h float64, colors [][3]int, list ...series.Series) {
	var minX, maxX, minY, maxY float64
	for _, s := range list {
		for _, pt := range s.All() {
			minX, maxX = min(minX, pt.X), max(maxX, pt.X)
			minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
		}
	}
	if maxX == minX || maxY == minY {
		return
	}

	sx := func(v float64) float64 { return x + (v-minX)/(maxX-minX)*w }
	sy := func(v float64) float64 { return y + h - (v-minY)/(maxY-minY)*h }

	p.pdf.SetDrawColor(0, 0, 0)
	p.pdf.SetLineWidth(0.2)
	p.pdf.Rect(x, y, w, h, "D")

	p.pdf.SetLineWidth(0.5)
	for i, s := range list {
		c := colors[i%len(colors)]
		p.pdf.SetDrawColor(c[0], c[1], c[2])
		prev, first := series.Point{}, true
		for _, pt := range s.All() {
			if !first {
				p.pdf.Line(sx(prev.X), sy(prev.Y), sx(pt.X), sy(pt.Y))
			}
			prev, first = pt, false
		}
	}
	p.pdf.SetDrawColor(0, 0, 0)
}

// WritePDF writes the calculation summary: inputs, derived stiffness and the
// load table, followed by a page with the joint diagram when present.
func WritePDF(w io.Writer, doc Document) error {
	r := doc.Result
	if r == nil {
		return errors.New("document has no result")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetTitle(doc.Title, true)
	p := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	u := doc.Units
	in := doc.Input

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, p.tr(doc.Title))
	pdf.Ln(10)
	if doc.RunID != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.Cell(0, 5, "Run "+doc.RunID)
		pdf.Ln(6)
	}

	p.heading("Fastener and members")
	p.quantity("Nominal diameter", r.Geometry.NominalDiameter, u.Length)
	p.quantity("Pitch", r.Geometry.Pitch, u.Length)
	p.quantity("Tensile stress area", r.Geometry.StressArea, u.Area())
	p.quantity("Grip length", r.Geometry.Grip, u.Length)
	p.quantity("Bolt modulus", in.Fastener.Modulus, u.Stress)
	p.quantity("Member modulus", in.Member.Modulus, u.Stress)
	p.quantity("Proof strength", in.Fastener.ProofStrength, u.Stress)
	p.quantity("Endurance limit", in.Fastener.EnduranceLimit, u.Stress)

	p.heading("Joint")
	p.quantity("Bolt stiffness", r.Stiffness.Bolt, u.Stiffness())
	p.quantity("Member stiffness", r.Stiffness.Member, u.Stiffness())
	p.quantity("Stiffness factor C", r.Stiffness.Factor, "")
	p.quantity("Preload", r.Preload, u.Force)
	p.quantity("Proof load", r.ProofLoad, u.Force)
	p.quantity("Separation load", r.SeparationLoad, u.Force)
	p.quantity("Governing factor of safety", r.Governing(), "")
	if c := r.PreloadCurves; c != nil {
		p.quantity("Optimum preload fraction", c.Optimum.Fraction, "")
		p.quantity("Optimum factor of safety", c.Optimum.Safety.Min(), "")
	}

	p.heading("Load points")
	widths := []float64{30, 30, 30, 25, 25, 25, 25}
	p.tableRow(true, widths, "Load", "Bolt force", "Member force", "n sep", "n yield", "n fatigue", "n min")
	points := r.Points
	if len(points) > pdfMaxRows {
		points = points[:pdfMaxRows]
	}
	for _, pt := range points {
		p.tableRow(false, widths,
			formatFloat(pt.Load), formatFloat(pt.BoltForce), formatFloat(pt.MemberForce),
			formatFloat(pt.Safety.Separation), formatFloat(pt.Safety.Yield),
			formatFloat(pt.Safety.Fatigue), formatFloat(pt.Safety.Min()))
	}
	if n := len(r.Points) - len(points); n > 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.Cell(0, pdfLine, fmt.Sprintf("%d more load points in the workbook", n))
		pdf.Ln(pdfLine)
	}

	if d := r.Diagram; d != nil {
		pdf.AddPage()
		p.heading("Joint diagram")
		x, y := pdf.GetXY()
		p.plot(x, y, 120, 60,
			[][3]int{{120, 120, 120}, {200, 30, 30}, {30, 60, 200}},
			d.Preload, d.Bolt, d.Member)
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "write pdf")
	}

	return nil
}
