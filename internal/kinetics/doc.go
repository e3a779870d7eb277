// Package kinetics simulates diffusion-limited polymerization for a fixed
// catalog of polymer species.
//
// Monomer concentration follows
//
//	dC/dt = -k * d(C) * C
//
// where k is the Arrhenius rate constant of the species at the run
// temperature and d(C) is the diffusion-limit multiplier:
//
//	d(C) = max(1 - f*C/Cgel, 0)   for C < Cgel
//	d(C) = 0.1                    for C >= Cgel
//
// Every run reports exactly [SampleCount] evenly spaced samples over
// [0, TotalTime], and a degree of polymerization computed from the first
// and last sample.
//
//	sim := kinetics.NewSimulator()
//	runs, err := sim.Run(ctx, kinetics.DefaultParams())
package kinetics
