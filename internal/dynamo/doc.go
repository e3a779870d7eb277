// Package dynamo provides the core primitives for integrating ordinary
// differential equations:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE right-hand sides (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical stepper
//   - [AdaptiveIntegrator]: stepper with embedded error control
//   - [Trajectory]: states reported on an evaluation grid
//
// # Example
//
//	rxn := kinetics.NewReaction(k, gelPoint, diffusionFactor)
//	solver := integrators.NewRK45()
//	traj, err := solver.Solve(ctx, rxn, dynamo.State{c0}, grid)
//
// Integrator values may cache scratch buffers and are NOT safe for
// concurrent use; create one per goroutine.
package dynamo
