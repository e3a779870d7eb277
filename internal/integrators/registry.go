package integrators

import (
	"fmt"
	"sort"
)

// Registry maps solver names to constructors. dt is the step of the
// fixed-step solvers and is ignored by adaptive ones.
type Registry struct {
	solvers map[string]func(dt float64) Solver
}

func NewRegistry() *Registry {
	r := &Registry{
		solvers: make(map[string]func(dt float64) Solver),
	}

	r.solvers["euler"] = func(dt float64) Solver { return NewFixedStep(NewEuler(), dt) }
	r.solvers["rk4"] = func(dt float64) Solver { return NewFixedStep(NewRK4(), dt) }
	r.solvers["rk45"] = func(float64) Solver { return NewRK45() }

	return r
}

func (r *Registry) Get(name string, dt float64) (Solver, error) {
	fn, ok := r.solvers[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s (available: %v)", name, r.List())
	}
	return fn(dt), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.solvers))
	for name := range r.solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
