// Package report writes kinetics runs and sweeps as CSV and JSON.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/polysim/internal/analysis"
	"github.com/san-kum/polysim/internal/kinetics"
)

type RunExport struct {
	Species        string    `json:"species"`
	RateConstant   float64   `json:"rate_constant"`
	Times          []float64 `json:"times"`
	Concentrations []float64 `json:"concentrations"`
	// nil when no monomer was consumed
	DegreeOfPolymerization *float64 `json:"degree_of_polymerization"`
	Conversion             float64  `json:"conversion"`
	GelTime                *float64 `json:"gel_time"`
	Steps                  int      `json:"steps"`
}

type ExportData struct {
	Params kinetics.Params `json:"params"`
	Runs   []RunExport     `json:"runs"`
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// NewExportData converts runs into their serializable form.
func NewExportData(p kinetics.Params, runs []kinetics.Run) ExportData {
	data := ExportData{Params: p, Runs: make([]RunExport, len(runs))}
	for i := range runs {
		r := &runs[i]
		re := RunExport{
			Species:                r.Species.Name,
			RateConstant:           r.RateConstant,
			Times:                  r.Times,
			Concentrations:         r.Concentrations,
			DegreeOfPolymerization: finite(r.DegreeOfPolymerization),
			Conversion:             analysis.Conversion(r),
			Steps:                  r.Steps,
		}
		if t, ok := analysis.GelTime(r, p.GelPoint); ok {
			re.GelTime = &t
		}
		data.Runs[i] = re
	}
	return data
}

func WriteJSON(w io.Writer, p kinetics.Params, runs []kinetics.Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExportData(p, runs))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// WriteCSV writes a wide table: one time column followed by one
// concentration column per species. All runs must share a time grid.
func WriteCSV(w io.Writer, runs []kinetics.Run) error {
	if len(runs) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)

	header := []string{"time"}
	for _, r := range runs {
		header = append(header, r.Species.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	times := runs[0].Times
	for _, r := range runs[1:] {
		if len(r.Concentrations) != len(times) {
			return fmt.Errorf("report: %s has %d samples, want %d", r.Species.Name, len(r.Concentrations), len(times))
		}
	}

	for i, t := range times {
		row := []string{formatFloat(t)}
		for _, r := range runs {
			row = append(row, formatFloat(r.Concentrations[i]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSweepCSV writes one row per swept value with the degree of
// polymerization of every species. Infinite values are written as "inf".
func WriteSweepCSV(w io.Writer, param string, points []analysis.SweepPoint) error {
	cw := csv.NewWriter(w)
	if len(points) == 0 {
		return nil
	}

	header := []string{param}
	for _, r := range points[0].Runs {
		header = append(header, r.Species.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, pt := range points {
		row := []string{strconv.FormatFloat(pt.Value, 'g', -1, 64)}
		for _, r := range pt.Runs {
			if math.IsInf(r.DegreeOfPolymerization, 1) {
				row = append(row, "inf")
				continue
			}
			row = append(row, formatFloat(r.DegreeOfPolymerization))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a table written by WriteCSV back into its species
// names, times and per-species concentration columns.
func ReadCSV(r io.Reader) (species []string, times []float64, columns [][]float64, err error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil, fmt.Errorf("report: empty csv")
	}

	species = records[0][1:]
	columns = make([][]float64, len(species))
	times = make([]float64, 0, len(records)-1)

	for i, rec := range records[1:] {
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("report: row %d: %w", i+1, err)
		}
		times = append(times, t)
		for j := range species {
			v, err := strconv.ParseFloat(rec[j+1], 64)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("report: row %d col %d: %w", i+1, j+1, err)
			}
			columns[j] = append(columns[j], v)
		}
	}
	return species, times, columns, nil
}

// ReadRuns rebuilds runs from a table written by WriteCSV. Species are
// resolved against the catalog; rate constants are not recoverable and
// are left zero.
func ReadRuns(r io.Reader) ([]kinetics.Run, error) {
	species, times, columns, err := ReadCSV(r)
	if err != nil {
		return nil, err
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("report: csv has no samples")
	}

	runs := make([]kinetics.Run, len(species))
	for i, name := range species {
		sp, ok := kinetics.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("report: unknown species %q", name)
		}
		conc := columns[i]
		runs[i] = kinetics.Run{
			Species:                sp,
			Times:                  times,
			Concentrations:         conc,
			DegreeOfPolymerization: kinetics.DegreeOfPolymerization(conc[0], conc[len(conc)-1]),
		}
	}
	return runs, nil
}
