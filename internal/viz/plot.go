package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/polysim/internal/distribution"
	"github.com/san-kum/polysim/internal/kinetics"
)

var speciesColors = map[string]asciigraph.AnsiColor{
	"#0000ff": asciigraph.Blue,
	"#ff0000": asciigraph.Red,
	"#008000": asciigraph.Green,
	"#bf00bf": asciigraph.Magenta,
	"#00bfbf": asciigraph.Cyan,
}

// SeriesColor maps a species color onto the nearest terminal color.
func SeriesColor(sp kinetics.Species) asciigraph.AnsiColor {
	if c, ok := speciesColors[sp.Style.Color]; ok {
		return c
	}
	return asciigraph.Default
}

// PlotRuns draws every run's concentration curve on one set of axes.
func PlotRuns(runs []kinetics.Run, width, height int) string {
	if len(runs) == 0 {
		return ""
	}

	data := make([][]float64, len(runs))
	colors := make([]asciigraph.AnsiColor, len(runs))
	legends := make([]string, len(runs))
	for i := range runs {
		data[i] = runs[i].Concentrations
		colors[i] = SeriesColor(runs[i].Species)
		legends[i] = runs[i].Species.Name
	}

	times := runs[0].Times
	caption := fmt.Sprintf("Concentration (mol/L), t = 0..%gs", times[len(times)-1])

	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(caption),
	)
}

// PlotHistogram draws a density histogram as a line over its bin centers.
func PlotHistogram(h *distribution.Histogram, width, height int) string {
	if h == nil || len(h.Density) == 0 {
		return ""
	}
	caption := fmt.Sprintf("Probability density, Mw %.0f..%.0f g/mol", h.Edges[0], h.Edges[len(h.Edges)-1])
	return asciigraph.Plot(h.Density,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.Precision(6),
		asciigraph.Caption(caption),
	)
}
