package kinetics

// Dash is a line pattern used when plotting a species.
type Dash string

const (
	DashSolid   Dash = "solid"
	DashDashed  Dash = "dashed"
	DashDashDot Dash = "dashdot"
	DashDotted  Dash = "dotted"
)

// Style carries presentation attributes; the simulation never reads it.
type Style struct {
	Color  string
	Dash   Dash
	Marker rune
}

// Species is a polymer type with fixed Arrhenius constants.
type Species struct {
	Name             string
	ActivationEnergy float64 // Ea, J/mol
	PreExponential   float64 // A, 1/s
	Style            Style
}

// RateConstant returns the species' rate constant at temperature T.
func (s Species) RateConstant(T float64) float64 {
	return RateConstant(s.PreExponential, s.ActivationEnergy, T)
}

var catalog = [...]Species{
	{Name: "Polyethylene", ActivationEnergy: 25000, PreExponential: 1e5, Style: Style{Color: "#0000ff", Dash: DashSolid, Marker: 'o'}},
	{Name: "Polystyrene", ActivationEnergy: 30000, PreExponential: 2e5, Style: Style{Color: "#ff0000", Dash: DashDashed, Marker: 's'}},
	{Name: "Polyvinyl Chloride", ActivationEnergy: 35000, PreExponential: 1.5e5, Style: Style{Color: "#008000", Dash: DashDashDot, Marker: '^'}},
	{Name: "Nylon", ActivationEnergy: 40000, PreExponential: 2.5e5, Style: Style{Color: "#bf00bf", Dash: DashDotted, Marker: 'v'}},
	{Name: "Polymethyl Methacrylate", ActivationEnergy: 45000, PreExponential: 1.8e5, Style: Style{Color: "#00bfbf", Dash: DashSolid, Marker: 'd'}},
}

// Catalog returns the species in declaration order. The slice is a copy.
func Catalog() []Species {
	c := catalog
	return c[:]
}

// Lookup finds a catalog species by exact name.
func Lookup(name string) (Species, bool) {
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Species{}, false
}
