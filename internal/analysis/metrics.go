package analysis

import "github.com/san-kum/polysim/internal/kinetics"

// TimeToReach returns the first time the sampled concentration falls
// below level, interpolating linearly between samples. ok is false when
// the run never drops below level.
func TimeToReach(run *kinetics.Run, level float64) (t float64, ok bool) {
	c := run.Concentrations
	if len(c) == 0 {
		return 0, false
	}
	if c[0] < level {
		return run.Times[0], true
	}
	for i := 1; i < len(c); i++ {
		if c[i] >= level {
			continue
		}
		t0, t1 := run.Times[i-1], run.Times[i]
		frac := (c[i-1] - level) / (c[i-1] - c[i])
		return t0 + frac*(t1-t0), true
	}
	return 0, false
}

// GelTime is the time at which the concentration crosses the gel point.
func GelTime(run *kinetics.Run, gelPoint float64) (float64, bool) {
	return TimeToReach(run, gelPoint)
}

// Conversion is (C0 - Cf) / C0, or 0 for an empty reactor.
func Conversion(run *kinetics.Run) float64 {
	if len(run.Concentrations) == 0 || run.Initial() == 0 {
		return 0
	}
	return (run.Initial() - run.Final()) / run.Initial()
}
