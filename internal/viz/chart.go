package viz

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/polysim/internal/kinetics"
)

type ChartFormat string

const (
	ChartPNG ChartFormat = "png"
	ChartSVG ChartFormat = "svg"
)

// ChartFormatFromPath picks the image format from a file extension.
func ChartFormatFromPath(path string) (ChartFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return ChartPNG, nil
	case ".svg":
		return ChartSVG, nil
	}
	return "", fmt.Errorf("unsupported chart format %q (want .png or .svg)", filepath.Ext(path))
}

var dashArrays = map[kinetics.Dash][]float64{
	kinetics.DashDashed:  {8, 4},
	kinetics.DashDashDot: {8, 3, 2, 3},
	kinetics.DashDotted:  {2, 3},
}

func seriesStyle(st kinetics.Style) chart.Style {
	color := drawing.ColorFromHex(strings.TrimPrefix(st.Color, "#"))
	return chart.Style{
		StrokeColor:     color,
		StrokeWidth:     2,
		StrokeDashArray: dashArrays[st.Dash],
		DotColor:        color,
		DotWidth:        2.5,
	}
}

// LegendLabel is the series name shown in charts, e.g.
// "Polyethylene: DP = 1.23".
func LegendLabel(r *kinetics.Run) string {
	return fmt.Sprintf("%s: DP = %s", r.Species.Name, FormatDP(r.DegreeOfPolymerization))
}

// ConcentrationChart builds the concentration-vs-time chart for runs.
// The y axis spans 0 to the initial concentration.
func ConcentrationChart(runs []kinetics.Run, p kinetics.Params) chart.Chart {
	series := make([]chart.Series, 0, len(runs))
	for i := range runs {
		r := &runs[i]
		series = append(series, chart.ContinuousSeries{
			Name:    LegendLabel(r),
			XValues: r.Times,
			YValues: r.Concentrations,
			Style:   seriesStyle(r.Species.Style),
		})
	}

	yMax := p.InitialConcentration
	if !(yMax > 0) {
		yMax = 1
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Polymerization at T = %g K", p.Temperature),
		Width:  1024,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Time (s)",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: p.TotalTime},
		},
		YAxis: chart.YAxis{
			Name:  "Monomer Concentration (mol/L)",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.2f", v.(float64))
			},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}
	return graph
}

// RenderChart writes the concentration chart for runs to w.
func RenderChart(w io.Writer, runs []kinetics.Run, p kinetics.Params, format ChartFormat) error {
	if len(runs) == 0 {
		return fmt.Errorf("render chart: no runs")
	}
	graph := ConcentrationChart(runs, p)

	provider := chart.PNG
	if format == ChartSVG {
		provider = chart.SVG
	}
	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
