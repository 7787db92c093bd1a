// internal/report/chart.go
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// ChartHTML renders s as an interactive HTML line chart with mean, min and
// max score series.
func ChartHTML(w io.Writer, s Series) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: s.Title,
			Theme:     types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    s.Title,
			Subtitle: "rnafold-bench",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: s.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "score",
			Scale: opts.Bool(true),
		}),
	)

	x := make([]string, len(s.X))
	for i, v := range s.X {
		x[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	mean := make([]opts.LineData, len(s.Rows))
	lo := make([]opts.LineData, len(s.Rows))
	hi := make([]opts.LineData, len(s.Rows))
	for i, r := range s.Rows {
		mean[i] = opts.LineData{Value: r.Mean}
		lo[i] = opts.LineData{Value: r.Min}
		hi[i] = opts.LineData{Value: r.Max}
	}
	line.SetXAxis(x).
		AddSeries("mean", mean).
		AddSeries("min", lo).
		AddSeries("max", hi)
	return line.Render(w)
}

// SaveChart writes s to path as an image (png, svg, pdf) or, for "html",
// an interactive page.
func SaveChart(path string, s Series, format string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("write %s: %v", path, r)
		}
	}()
	fh := osUtil.Create(path)
	defer simpleUtil.DeferClose(fh)

	if format == "html" {
		return ChartHTML(fh, s)
	}
	return Plot(fh, s, format)
}
