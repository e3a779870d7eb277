package kinetics

import "math"

// GasConstant is R in J/(mol*K).
const GasConstant = 8.314

// RateConstant evaluates the Arrhenius law k = A * exp(-Ea / (R*T)).
// T must be positive; callers validate it (see Params.Validate).
func RateConstant(A, Ea, T float64) float64 {
	return A * math.Exp(-Ea/(GasConstant*T))
}
