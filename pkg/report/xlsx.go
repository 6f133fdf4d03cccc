package report

import (
	"fmt"
	"io"
	"math"

	"boltjoint/pkg/series"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names.
const (
	SheetSummary      = "Summary"
	SheetLoadPoints   = "LoadPoints"
	SheetJointDiagram = "JointDiagram"
	SheetPreloadSweep = "PreloadSweep"
)

// cellValue keeps finite numbers numeric; spreadsheets cannot hold infinity.
func cellValue(v float64) any {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return formatFloat(v)
	}

	return v
}

type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
	bold  int
}

func (s *sheetWriter) writeRow(header bool, values ...any) error {
	s.row++
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		return errors.Wrap(err, "cell name")
	}
	if err := s.f.SetSheetRow(s.sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "write %s row %d", s.sheet, s.row)
	}
	if header {
		last, err := excelize.CoordinatesToCellName(len(values), s.row)
		if err != nil {
			return errors.Wrap(err, "cell name")
		}
		if err := s.f.SetCellStyle(s.sheet, cell, last, s.bold); err != nil {
			return errors.Wrap(err, "style header")
		}
	}

	return nil
}

func (s *sheetWriter) writeSeries(list ...series.Series) error {
	header := make([]any, 0, 2*len(list))
	n := 0
	for _, l := range list {
		header = append(header, l.Name()+" x", l.Name()+" y")
		n = max(n, l.Len())
	}
	if err := s.writeRow(true, header...); err != nil {
		return err
	}

	for i := range n {
		row := make([]any, 0, 2*len(list))
		for _, l := range list {
			if i >= l.Len() {
				row = append(row, nil, nil)

				continue
			}
			p := l.At(i)
			row = append(row, cellValue(p.X), cellValue(p.Y))
		}
		if err := s.writeRow(false, row...); err != nil {
			return err
		}
	}

	return nil
}

// addScatter plots the column pairs of the series written by writeSeries.
func (s *sheetWriter) addScatter(anchor, title, xTitle, yTitle string, list ...series.Series) error {
	chart := &excelize.Chart{
		Type:  excelize.Scatter,
		Title: []excelize.RichTextRun{{Text: title}},
		XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: xTitle}}},
		YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: yTitle}}},
	}
	for i, l := range list {
		xCol, err := excelize.ColumnNumberToName(2*i + 1)
		if err != nil {
			return errors.Wrap(err, "column name")
		}
		yCol, err := excelize.ColumnNumberToName(2*i + 2)
		if err != nil {
			return errors.Wrap(err, "column name")
		}
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$1", s.sheet, yCol),
			Categories: fmt.Sprintf("%s!$%s$2:$%s$%d", s.sheet, xCol, xCol, l.Len()+1),
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", s.sheet, yCol, yCol, l.Len()+1),
		})
	}

	if err := s.f.AddChart(s.sheet, anchor, chart); err != nil {
		return errors.Wrapf(err, "add %s chart", s.sheet)
	}

	return nil
}

// WriteWorkbook writes an xlsx workbook with a summary sheet, the load point
// table and, when present, the joint diagram and preload sweep series with
// their charts.
func WriteWorkbook(w io.Writer, doc Document) error {
	r := doc.Result
	if r == nil {
		return errors.New("document has no result")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "create style")
	}
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return errors.Wrap(err, "rename sheet")
	}

	sheet := func(name string) (*sheetWriter, error) {
		if name != SheetSummary {
			if _, err := f.NewSheet(name); err != nil {
				return nil, errors.Wrapf(err, "create sheet %s", name)
			}
		}

		return &sheetWriter{f: f, sheet: name, bold: bold}, nil
	}

	s, err := sheet(SheetSummary)
	if err != nil {
		return err
	}
	if err := writeSummary(s, doc); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetSummary, "A", "A", 28); err != nil {
		return errors.Wrap(err, "column width")
	}

	if s, err = sheet(SheetLoadPoints); err != nil {
		return err
	}
	if err := writeLoadPoints(s, doc); err != nil {
		return err
	}

	if d := r.Diagram; d != nil {
		if s, err = sheet(SheetJointDiagram); err != nil {
			return err
		}
		if err := s.writeSeries(d.Preload, d.Bolt, d.Member); err != nil {
			return err
		}
		if err := s.addScatter("H2", "Joint diagram",
			"deflection ["+doc.Units.Length+"]", "force ["+doc.Units.Force+"]",
			d.Preload, d.Bolt, d.Member); err != nil {
			return err
		}
	}

	if c := r.PreloadCurves; c != nil {
		if s, err = sheet(SheetPreloadSweep); err != nil {
			return err
		}
		if err := s.writeSeries(c.Separation, c.Yield, c.Fatigue, c.Minimum, c.Force); err != nil {
			return err
		}
		if err := s.addScatter("L2", "Factor of safety vs preload fraction",
			"preload / proof load", "factor of safety",
			c.Separation, c.Yield, c.Fatigue, c.Minimum); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}

	return nil
}

func writeSummary(s *sheetWriter, doc Document) error {
	r := doc.Result
	u := doc.Units
	rows := [][]any{
		{"Quantity", "Value", "Unit"},
		{"Title", doc.Title, ""},
		{"Run", doc.RunID, ""},
		{"Nominal diameter", r.Geometry.NominalDiameter, u.Length},
		{"Pitch", r.Geometry.Pitch, u.Length},
		{"Tensile stress area", r.Geometry.StressArea, u.Area()},
		{"Grip length", r.Geometry.Grip, u.Length},
		{"Shank length in grip", r.Geometry.ShankLength, u.Length},
		{"Thread length in grip", r.Geometry.ThreadLength, u.Length},
		{"Bolt stiffness", r.Stiffness.Bolt, u.Stiffness()},
		{"Member stiffness", r.Stiffness.Member, u.Stiffness()},
		{"Stiffness factor C", r.Stiffness.Factor, ""},
		{"Proof load", r.ProofLoad, u.Force},
		{"Preload", r.Preload, u.Force},
		{"Separation load", r.SeparationLoad, u.Force},
		{"Governing factor of safety", cellValue(r.Governing()), ""},
	}
	if c := r.PreloadCurves; c != nil {
		rows = append(rows,
			[]any{"Optimum preload fraction", c.Optimum.Fraction, ""},
			[]any{"Optimum preload", c.Optimum.Preload, u.Force},
			[]any{"Optimum factor of safety", cellValue(c.Optimum.Safety.Min()), ""},
		)
	}

	for i, row := range rows {
		if err := s.writeRow(i == 0, row...); err != nil {
			return err
		}
	}

	return nil
}

func writeLoadPoints(s *sheetWriter, doc Document) error {
	f := doc.Units.Force
	st := doc.Units.Stress
	if err := s.writeRow(true,
		"Load ["+f+"]", "Bolt force ["+f+"]", "Member force ["+f+"]", "Separated",
		"Alternating stress ["+st+"]", "Mean stress ["+st+"]", "Allowable alternating ["+st+"]",
		"FoS separation", "FoS yield", "FoS fatigue", "FoS minimum"); err != nil {
		return err
	}

	for _, p := range doc.Result.Points {
		if err := s.writeRow(false,
			p.Load, p.BoltForce, p.MemberForce, p.Separated,
			p.Fatigue.Alternating, p.Fatigue.Mean, p.Fatigue.Allowable,
			cellValue(p.Safety.Separation), cellValue(p.Safety.Yield),
			cellValue(p.Safety.Fatigue), cellValue(p.Safety.Min())); err != nil {
			return err
		}
	}

	return nil
}
