package pathsep

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

type testEntry struct {
	row, col int
	val      float64
}

// testLP is a compact description of a relaxation snapshot for tests. Zero
// fields get defaults: column bounds [0, +inf), free row bounds, zero duals
// and activities computed from the solution.
type testLP struct {
	numRows, numCols int
	entries          []testEntry

	colLower, colUpper []float64
	integer            []bool
	rowLower, rowUpper []float64

	solution []float64
	rowDual  []float64

	cfg Config
}

func (lp testLP) build() *Relaxation {
	rel := &Relaxation{
		NumRows:  lp.numRows,
		NumCols:  lp.numCols,
		ColLower: lp.colLower,
		ColUpper: lp.colUpper,
		RowLower: lp.rowLower,
		RowUpper: lp.rowUpper,
		Integer:  lp.integer,
		Config:   lp.cfg,
	}
	if rel.ColLower == nil {
		rel.ColLower = make([]float64, lp.numCols)
	}
	if rel.ColUpper == nil {
		rel.ColUpper = make([]float64, lp.numCols)
		for j := range rel.ColUpper {
			rel.ColUpper[j] = math.Inf(1)
		}
	}
	if rel.RowLower == nil {
		rel.RowLower = make([]float64, lp.numRows)
		for i := range rel.RowLower {
			rel.RowLower[i] = math.Inf(-1)
		}
	}
	if rel.RowUpper == nil {
		rel.RowUpper = make([]float64, lp.numRows)
		for i := range rel.RowUpper {
			rel.RowUpper[i] = math.Inf(1)
		}
	}
	if rel.Integer == nil {
		rel.Integer = make([]bool, lp.numCols)
	}
	if rel.Config.Feastol == 0 {
		rel.Config = DefaultConfig()
	}

	counts := make([]int, lp.numCols)
	for _, e := range lp.entries {
		counts[e.col]++
	}
	rel.ColStart = make([]int, lp.numCols+1)
	for j := range lp.numCols {
		rel.ColStart[j+1] = rel.ColStart[j] + counts[j]
	}
	rel.ColIndex = make([]int, len(lp.entries))
	rel.ColValue = make([]float64, len(lp.entries))
	next := make([]int, lp.numCols)
	copy(next, rel.ColStart[:lp.numCols])
	for _, e := range lp.entries {
		rel.ColIndex[next[e.col]] = e.row
		rel.ColValue[next[e.col]] = e.val
		next[e.col]++
	}
	rel.BuildRowwise()

	if lp.solution == nil {
		lp.solution = make([]float64, lp.numCols)
	}
	rel.ColSolution = mat.NewVecDense(lp.numCols, lp.solution)
	rel.ComputeActivities()

	if lp.rowDual == nil {
		lp.rowDual = make([]float64, lp.numRows)
	}
	rel.RowDual = mat.NewVecDense(lp.numRows, lp.rowDual)

	return rel
}

// recordedCall is one aggregation handed to a recording cut generator.
type recordedCall struct {
	inds []int
	vals []float64
	rhs  float64
}

// recordingCutGen captures every candidate row it is offered and fails each
// attempt unless told to succeed from a given call index on.
type recordingCutGen struct {
	calls        []recordedCall
	succeedFrom  int
	alwaysReject bool
}

func newRejectingCutGen() *recordingCutGen {
	return &recordingCutGen{alwaysReject: true}
}

func (g *recordingCutGen) GenerateCut(transLp *TransformedLp, inds []int, vals []float64, rhs *float64) bool {
	call := recordedCall{
		inds: append([]int(nil), inds...),
		vals: append([]float64(nil), vals...),
		rhs:  *rhs,
	}
	g.calls = append(g.calls, call)
	if g.alwaysReject {
		return false
	}
	return len(g.calls) > g.succeedFrom
}
