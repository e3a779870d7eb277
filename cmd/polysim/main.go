package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/polysim/internal/analysis"
	"github.com/san-kum/polysim/internal/config"
	"github.com/san-kum/polysim/internal/distribution"
	"github.com/san-kum/polysim/internal/heatmap"
	"github.com/san-kum/polysim/internal/integrators"
	"github.com/san-kum/polysim/internal/kinetics"
	"github.com/san-kum/polysim/internal/report"
	"github.com/san-kum/polysim/internal/viz"
)

var (
	configFile string
	preset     string
	verbose    bool

	temperature     float64
	gelPoint        float64
	diffusionFactor float64
	c0              float64
	totalTime       float64
	speciesNames    []string

	format  string
	noPlot  bool
	output  string
	fromCSV string

	mn      float64
	pdi     float64
	samples int
	bins    int
	seed    uint64

	chainLength int
	baseWeight  float64
	variance    float64
	stripWidth  int

	solverNames []string
	stepSize    float64

	sweepParam string
	sweepFrom  float64
	sweepTo    float64
	sweepStep  float64
	workers    int
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "polysim",
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
})

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Registering the flags resets every
// flag variable to its default.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "polysim",
		Short: "polymerization kinetics lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: runDashboard,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	addReactionFlags(rootCmd)

	reactCmd := &cobra.Command{
		Use:   "react",
		Short: "simulate every species and print the results",
		RunE:  runReact,
	}
	addReactionFlags(reactCmd)
	reactCmd.Flags().StringVar(&format, "format", "table", "output format: table, csv, json")
	reactCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the ascii plot")

	speciesCmd := &cobra.Command{
		Use:   "species",
		Short: "list the species catalog",
		RunE:  listSpecies,
	}
	speciesCmd.Flags().Float64Var(&temperature, "temperature", kinetics.DefaultTemperature, "temperature (K) for the rate constant column")

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "render a concentration chart to png or svg",
		RunE:  runChart,
	}
	addReactionFlags(chartCmd)
	chartCmd.Flags().StringVarP(&output, "output", "o", "reaction.png", "output file (.png or .svg)")
	chartCmd.Flags().StringVar(&fromCSV, "from-csv", "", "chart runs from a csv written by react --format csv")

	distCmd := &cobra.Command{
		Use:   "distribution",
		Short: "sample a Schulz-Zimm molecular weight distribution",
		RunE:  runDistribution,
	}
	distCmd.Flags().Float64Var(&mn, "mn", config.DefaultMn, "number-average molecular weight")
	distCmd.Flags().Float64Var(&pdi, "pdi", config.DefaultPDI, "polydispersity index")
	distCmd.Flags().IntVar(&samples, "samples", config.DefaultDistSamples, "sample size")
	distCmd.Flags().IntVar(&bins, "bins", config.DefaultDistBins, "histogram bins")
	distCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")

	heatCmd := &cobra.Command{
		Use:   "heatmap",
		Short: "draw a molecular weight heat map along a chain",
		RunE:  runHeatMap,
	}
	heatCmd.Flags().IntVar(&chainLength, "length", config.DefaultChainLength, "chain length (segments)")
	heatCmd.Flags().Float64Var(&baseWeight, "base-weight", config.DefaultBaseWeight, "base molecular weight (g/mol)")
	heatCmd.Flags().Float64Var(&variance, "variance", config.DefaultWeightSpread, "molecular weight spread")
	heatCmd.Flags().IntVar(&stripWidth, "width", 50, "cells per row")
	heatCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "degree of polymerization per species across a parameter range",
		RunE:  runSweep,
	}
	addReactionFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "temperature", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", config.TemperatureSlider.Min, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", config.TemperatureSlider.Max, "last value")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 50, "increment")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel simulations (0 uses all cores)")
	sweepCmd.Flags().StringVar(&format, "format", "table", "output format: table, csv")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare integrators against adaptive rk45",
		RunE:  compareIntegrators,
	}
	addReactionFlags(compareCmd)
	compareCmd.Flags().StringSliceVar(&solverNames, "integrators", []string{"euler", "rk4"}, "integrators to compare")
	compareCmd.Flags().Float64Var(&stepSize, "dt", 0.01, "fixed-step timestep")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list reaction presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(reactCmd, speciesCmd, chartCmd, distCmd, heatCmd, sweepCmd, compareCmd, presetsCmd, configCmd)

	return rootCmd
}

func addReactionFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&temperature, "temperature", kinetics.DefaultTemperature, "temperature (K)")
	cmd.Flags().Float64Var(&gelPoint, "gel-point", kinetics.DefaultGelPoint, "gel point (mol/L)")
	cmd.Flags().Float64Var(&diffusionFactor, "diffusion", kinetics.DefaultDiffusionFactor, "diffusion factor")
	cmd.Flags().Float64Var(&c0, "c0", kinetics.DefaultInitialConcentration, "initial monomer concentration (mol/L)")
	cmd.Flags().Float64Var(&totalTime, "time", kinetics.DefaultTotalTime, "total reaction time (s)")
	cmd.Flags().StringSliceVar(&speciesNames, "species", nil, "species to simulate (default all)")
}

// loadConfig starts from the preset; a config file replaces the preset.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	return cfg, nil
}

// reactionSetup resolves the simulation inputs. Flags override the config
// only when set explicitly.
func reactionSetup(cmd *cobra.Command) (*config.Config, kinetics.Params, []kinetics.Species, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, kinetics.Params{}, nil, err
	}

	rc := &cfg.Reaction
	if cmd.Flags().Changed("temperature") {
		rc.Temperature = temperature
	}
	if cmd.Flags().Changed("gel-point") {
		rc.GelPoint = gelPoint
	}
	if cmd.Flags().Changed("diffusion") {
		rc.DiffusionFactor = diffusionFactor
	}
	if cmd.Flags().Changed("c0") {
		rc.InitialConcentration = c0
	}
	if cmd.Flags().Changed("time") {
		rc.TotalTime = totalTime
	}
	if cmd.Flags().Changed("species") {
		rc.Species = speciesNames
	}

	species, err := rc.SelectedSpecies()
	if err != nil {
		return nil, kinetics.Params{}, nil, err
	}

	p := rc.Params()
	warnOutOfRange(config.ReactionSliders, p.GetParams())
	if err := p.Validate(); err != nil {
		return nil, kinetics.Params{}, nil, err
	}

	viz.SetTheme(cfg.Theme)
	return cfg, p, species, nil
}

func warnOutOfRange(sliders []config.Slider, values map[string]float64) {
	for _, s := range config.OutOfRange(sliders, values) {
		logger.Warn("outside dashboard range", "param", s.Name, "value", values[s.Name], "min", s.Min, "max", s.Max)
	}
}

func simulate(ctx context.Context, p kinetics.Params, species []kinetics.Species) ([]kinetics.Run, error) {
	start := time.Now()
	runs, err := kinetics.NewSimulator(species...).Run(ctx, p)
	if err != nil {
		return nil, err
	}
	for _, r := range runs {
		logger.Debug("simulated", "species", r.Species.Name, "k", r.RateConstant, "steps", r.Steps)
	}
	logger.Debug("done", "species", len(runs), "elapsed", time.Since(start))
	return runs, nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	_, p, species, err := reactionSetup(cmd)
	if err != nil {
		return err
	}

	d := viz.NewDashboard(kinetics.NewSimulator(species...), p)
	if err := d.Err(); err != nil {
		return err
	}
	_, err = tea.NewProgram(d, tea.WithAltScreen()).Run()
	return err
}

func runReact(cmd *cobra.Command, args []string) error {
	_, p, species, err := reactionSetup(cmd)
	if err != nil {
		return err
	}

	runs, err := simulate(cmd.Context(), p, species)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "csv":
		return report.WriteCSV(out, runs)
	case "json":
		return report.WriteJSON(out, p, runs)
	case "table":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	fmt.Fprintf(out, "T = %g K, gel point = %g mol/L, diffusion = %g, C0 = %g mol/L, %g s\n\n",
		p.Temperature, p.GelPoint, p.DiffusionFactor, p.InitialConcentration, p.TotalTime)
	if !noPlot {
		fmt.Fprintln(out, viz.PlotRuns(runs, 70, 15))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, viz.RunTable(runs, p.GelPoint))
	return nil
}

func listSpecies(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "NAME\tEa (J/mol)\tA (1/s)\tk @ %gK\tCOLOR\tLINE\tMARKER\n", temperature)
	for _, s := range kinetics.Catalog() {
		fmt.Fprintf(w, "%s\t%g\t%g\t%.4g\t%s\t%s\t%c\n",
			s.Name, s.ActivationEnergy, s.PreExponential, s.RateConstant(temperature),
			s.Style.Color, s.Style.Dash, s.Style.Marker)
	}
	return w.Flush()
}

func runChart(cmd *cobra.Command, args []string) error {
	f, err := viz.ChartFormatFromPath(output)
	if err != nil {
		return err
	}

	_, p, species, err := reactionSetup(cmd)
	if err != nil {
		return err
	}

	var runs []kinetics.Run
	if fromCSV != "" {
		runs, p, err = readRuns(fromCSV, p)
	} else {
		runs, err = simulate(cmd.Context(), p, species)
	}
	if err != nil {
		return err
	}

	file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := viz.RenderChart(file, runs, p, f); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
	return nil
}

// readRuns loads exported runs and fits the chart axes to them.
func readRuns(path string, p kinetics.Params) ([]kinetics.Run, kinetics.Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, p, err
	}
	defer f.Close()

	runs, err := report.ReadRuns(f)
	if err != nil {
		return nil, p, fmt.Errorf("read %s: %w", path, err)
	}

	times := runs[0].Times
	p.TotalTime = times[len(times)-1]
	p.InitialConcentration = 0
	for _, r := range runs {
		p.InitialConcentration = math.Max(p.InitialConcentration, r.Initial())
	}
	logger.Debug("loaded runs", "path", path, "species", len(runs), "samples", len(times))
	return runs, p, nil
}

func pickSeed(configured uint64) uint64 {
	if seed != 0 {
		return seed
	}
	if configured != 0 {
		return configured
	}
	return uint64(time.Now().UnixNano())
}

func runDistribution(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dc := cfg.Distribution
	if cmd.Flags().Changed("mn") {
		dc.Mn = mn
	}
	if cmd.Flags().Changed("pdi") {
		dc.PDI = pdi
	}
	if cmd.Flags().Changed("samples") {
		dc.Samples = samples
	}
	if cmd.Flags().Changed("bins") {
		dc.Bins = bins
	}
	warnOutOfRange(config.DistributionSliders, dc.Values())
	s := pickSeed(dc.Seed)
	logger.Debug("sampling", "mn", dc.Mn, "pdi", dc.PDI, "n", dc.Samples, "seed", s)

	sz := distribution.SchulzZimm{Mn: dc.Mn, PDI: dc.PDI}
	x, err := sz.Sample(dc.Samples, distribution.NewSource(s))
	if err != nil {
		return err
	}
	h, err := distribution.NewHistogram(x, dc.Bins)
	if err != nil {
		return err
	}
	m := distribution.Measure(x)

	viz.SetTheme(cfg.Theme)
	fmt.Printf("Schulz-Zimm Mn = %g, PDI = %g (z = %.4g), T = %g K\n\n", sz.Mn, sz.PDI, sz.Z(), dc.Temperature)
	fmt.Println(viz.PlotHistogram(h, 70, 12))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tTARGET\tSAMPLE")
	fmt.Fprintf(w, "Mn\t%.0f\t%.0f\n", sz.Mn, m.Mn)
	fmt.Fprintf(w, "Mw\t%.0f\t%.0f\n", sz.Mn*sz.PDI, m.Mw)
	fmt.Fprintf(w, "PDI\t%.3f\t%.3f\n", sz.PDI, m.PDI)
	return w.Flush()
}

func runHeatMap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	hc := cfg.HeatMap
	if cmd.Flags().Changed("length") {
		hc.Length = chainLength
	}
	if cmd.Flags().Changed("base-weight") {
		hc.BaseWeight = baseWeight
	}
	if cmd.Flags().Changed("variance") {
		hc.Variance = variance
	}

	warnOutOfRange(config.HeatMapSliders, hc.Values())
	chain := heatmap.Chain{Length: hc.Length, BaseWeight: hc.BaseWeight, Variance: hc.Variance}
	weights, err := chain.Weights(distribution.NewSource(pickSeed(hc.Seed)))
	if err != nil {
		return err
	}

	viz.SetTheme(cfg.Theme)
	fmt.Printf("Molecular weight distribution along a %d-segment chain\n\n", chain.Length)
	fmt.Println(viz.HeatStrip(weights, stripWidth))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	_, p, species, err := reactionSetup(cmd)
	if err != nil {
		return err
	}

	values := analysis.Range(sweepFrom, sweepTo, sweepStep)
	logger.Debug("sweeping", "param", sweepParam, "points", len(values), "workers", workers)

	points, err := analysis.Sweep(cmd.Context(), species, p, sweepParam, values, workers)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		return report.WriteSweepCSV(os.Stdout, sweepParam, points)
	case "table":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, sweepParam)
	for _, s := range species {
		fmt.Fprintf(w, "\t%s", s.Name)
	}
	fmt.Fprintln(w)
	for _, pt := range points {
		fmt.Fprint(w, strconv.FormatFloat(pt.Value, 'g', -1, 64))
		for _, r := range pt.Runs {
			fmt.Fprintf(w, "\t%s", viz.FormatDP(r.DegreeOfPolymerization))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	_, p, species, err := reactionSetup(cmd)
	if err != nil {
		return err
	}

	ref, err := simulate(cmd.Context(), p, species)
	if err != nil {
		return err
	}

	registry := integrators.NewRegistry()
	fmt.Printf("comparing integrators (dt=%g, duration=%gs) against rk45\n\n", stepSize, p.TotalTime)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tSPECIES\tC FINAL\tMAX |dC|\tSTEPS\tTIME (ms)")
	for _, name := range solverNames {
		solver, err := registry.Get(name, stepSize)
		if err != nil {
			return err
		}

		start := time.Now()
		runs, err := kinetics.NewSimulatorWith(solver, species...).Run(cmd.Context(), p)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		for i, r := range runs {
			maxErr := 0.0
			for j, c := range r.Concentrations {
				maxErr = math.Max(maxErr, math.Abs(c-ref[i].Concentrations[j]))
			}
			fmt.Fprintf(w, "%s\t%s\t%.6f\t%.2e\t%d\t%.2f\n",
				name, r.Species.Name, r.Final(), maxErr, r.Steps, float64(elapsed.Microseconds())/1000/float64(len(runs)))
		}
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tT (K)\tGEL POINT\tDIFFUSION\tC0\tTIME (s)")
	for _, name := range config.ListPresets() {
		rc := config.Presets[name]
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%g\n",
			name, rc.Temperature, rc.GelPoint, rc.DiffusionFactor, rc.InitialConcentration, rc.TotalTime)
	}
	return w.Flush()
}
