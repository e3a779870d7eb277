// Package analysis derives summary quantities from kinetics runs and
// sweeps reaction parameters:
//
//   - [TimeToReach]: first time a run's concentration drops below a level
//   - [GelTime]: [TimeToReach] at the gel point
//   - [Conversion]: fraction of monomer consumed by the end of a run
//   - [Sweep]: one full species run per value of a named parameter
//
// # Sweeps
//
// Sweep points are independent, so they are simulated concurrently with a
// bounded number of workers. Results are returned in input order:
//
//	temps := analysis.Range(250, 500, 50)
//	points, err := analysis.Sweep(ctx, kinetics.Catalog(), base, "temperature", temps, 0)
package analysis
