package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/polysim/internal/heatmap"
)

const colorbarWidth = 32

var shades = []rune("░▒▓█")

// shade picks a glyph by intensity so the strip reads without color.
func shade(v float64) rune {
	i := int(v * float64(len(shades)))
	if i >= len(shades) {
		i = len(shades) - 1
	}
	if i < 0 {
		i = 0
	}
	return shades[i]
}

func cell(v float64) string {
	c := lipgloss.Color(heatmap.CoolWarm(v).Hex())
	return lipgloss.NewStyle().
		Foreground(c).
		Background(c).
		Render(string(shade(v)))
}

// HeatStrip renders one colored cell per segment, wrapped at width cells,
// followed by a colorbar labelled with the weight range.
func HeatStrip(weights []float64, width int) string {
	if len(weights) == 0 {
		return ""
	}
	if width <= 0 {
		width = len(weights)
	}

	norm := heatmap.Normalize(weights)

	var b strings.Builder
	for i, v := range norm {
		if i > 0 && i%width == 0 {
			b.WriteByte('\n')
		}
		b.WriteString(cell(v))
	}
	b.WriteString("\n\n")
	b.WriteString(Colorbar(floats.Min(weights), floats.Max(weights)))
	return b.String()
}

// Colorbar renders the color ramp with its low and high labels.
func Colorbar(lo, hi float64) string {
	var bar strings.Builder
	for i := 0; i < colorbarWidth; i++ {
		bar.WriteString(cell(float64(i) / float64(colorbarWidth-1)))
	}
	low := labelStyle().Render(fmt.Sprintf("%.0f", lo))
	high := labelStyle().Render(fmt.Sprintf("%.0f", hi))
	return lipgloss.JoinHorizontal(lipgloss.Center, low, " ", bar.String(), " ", high) +
		"\n" + labelStyle().Render("Molecular Weight (g/mol)")
}
