// internal/report/plot.go
package report

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"rnafold/internal/stats"
)

// Series is one sweep: summaries indexed by the swept variable.
type Series struct {
	Title  string
	XLabel string
	X      []float64
	Rows   []stats.Summary
}

// LengthSeries plots mean score against sequence length.
func LengthSeries(rows []stats.Summary) Series {
	s := Series{Title: "Optimal fold score vs length", XLabel: "sequence length (nt)", Rows: rows}
	for _, r := range rows {
		s.X = append(s.X, float64(r.Length))
	}
	return s
}

// GCSeries plots mean score against GC fraction.
func GCSeries(rows []stats.Summary) Series {
	s := Series{Title: "Optimal fold score vs GC content", XLabel: "GC fraction", Rows: rows}
	for _, r := range rows {
		s.X = append(s.X, r.GC)
	}
	return s
}

// PlotFormats are the image formats Plot accepts.
var PlotFormats = []string{"png", "svg", "pdf"}

// meanErr adapts a Series to plotter.XYer + plotter.YErrorer (±1 stddev).
type meanErr Series

func (m meanErr) Len() int                        { return len(m.Rows) }
func (m meanErr) XY(i int) (float64, float64)     { return m.X[i], m.Rows[i].Mean }
func (m meanErr) YError(i int) (float64, float64) { return m.Rows[i].StdDev, m.Rows[i].StdDev }

// Plot renders s as a line chart with ±1 stddev error bars in the given
// image format (png, svg, pdf).
func Plot(w io.Writer, s Series, format string) error {
	if len(s.X) != len(s.Rows) {
		return fmt.Errorf("series %q: %d x values for %d rows", s.Title, len(s.X), len(s.Rows))
	}
	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = "average score (−pairs)"
	p.Add(plotter.NewGrid())

	if len(s.Rows) > 0 {
		if err := plotutil.AddLinePoints(p, "mean score", toXYs(meanErr(s))); err != nil {
			return err
		}
		bars, err := plotter.NewYErrorBars(meanErr(s))
		if err != nil {
			return err
		}
		p.Add(bars)
	}

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func toXYs(m meanErr) plotter.XYs {
	pts := make(plotter.XYs, m.Len())
	for i := range pts {
		pts[i].X, pts[i].Y = m.XY(i)
	}
	return pts
}
