// Package viz renders kinetics runs, distributions and chain heat maps for
// the terminal and for image files:
//
//   - [PlotRuns]: ASCII concentration curves, one colored series per species
//   - [PlotHistogram]: ASCII density histogram
//   - [RunTable]: per-species summary table
//   - [HeatStrip]: colored segment strip with a min/max colorbar
//   - [RenderChart]: PNG or SVG concentration chart
//   - [Dashboard]: interactive Bubble Tea dashboard driven by sliders
//
// # Key Bindings
//
//	Up/Down    - Select slider
//	Left/Right - Move slider by one step
//	R          - Reset sliders
//	T          - Cycle color themes
//	Q          - Quit
package viz
