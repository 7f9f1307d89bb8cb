package pathsep

const (
	defaultFeastol = 1e-6
	maxPathLen     = 6

	// MIR acceptance thresholds.
	minMirFraction = 0.01
	minCutEfficacy = 1e-4
	zeroCoefTol    = 1e-12
)

// Config carries the solver-wide settings the separation layer depends on.
type Config struct {
	Feastol    float64
	RandomSeed uint64
}

func DefaultConfig() Config {
	return Config{Feastol: defaultFeastol}
}

// rowEntry is one (row, coefficient) pair in an arc list.
type rowEntry struct {
	row int
	val float64
}

// substitution records the unique equality row reserved for eliminating a
// continuous column, together with the column's coefficient in that row.
type substitution struct {
	row int
	val float64
}

// Cut is one generated inequality sum(Values[k]*x[Indices[k]]) <= Upper.
type Cut struct {
	Indices  []int
	Values   []float64
	Upper    float64
	Efficacy float64
}
