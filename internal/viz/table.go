package viz

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/polysim/internal/analysis"
	"github.com/san-kum/polysim/internal/kinetics"
)

// FormatDP prints a degree of polymerization, spelling out infinity.
func FormatDP(dp float64) string {
	if math.IsInf(dp, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", dp)
}

// RunTable summarizes runs one row per species.
func RunTable(runs []kinetics.Run, gelPoint float64) string {
	rows := make([][]string, 0, len(runs))
	for i := range runs {
		r := &runs[i]
		gel := "-"
		if t, ok := analysis.GelTime(r, gelPoint); ok {
			gel = fmt.Sprintf("%.2f", t)
		}
		rows = append(rows, []string{
			r.Species.Name,
			fmt.Sprintf("%.4g", r.RateConstant),
			fmt.Sprintf("%.4f", r.Final()),
			fmt.Sprintf("%.1f%%", 100*analysis.Conversion(r)),
			gel,
			FormatDP(r.DegreeOfPolymerization),
		})
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Primary).Padding(0, 1)
	body := lipgloss.NewStyle().Foreground(CurrentTheme.Text).Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(CurrentTheme.Muted)).
		Headers("SPECIES", "k (1/s)", "C final", "CONVERSION", "GEL TIME (s)", "DP").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return body
		})
	return t.Render()
}
