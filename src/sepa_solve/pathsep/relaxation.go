package pathsep

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Relaxation is a read-only snapshot of the LP relaxation at the current
// search node: bounds, constraint matrix, integrality marks and the most
// recent primal/dual solution. The matrix is stored column-major; a row-major
// copy is derived once so rows can be retrieved by index during aggregation.
type Relaxation struct {
	NumRows int
	NumCols int

	ColLower []float64
	ColUpper []float64
	RowLower []float64
	RowUpper []float64
	Integer  []bool

	ColStart []int
	ColIndex []int
	ColValue []float64

	rowStart []int
	rowIndex []int
	rowValue []float64

	ColSolution *mat.VecDense
	RowActivity *mat.VecDense
	RowDual     *mat.VecDense

	LpIterations int64
	Config       Config
}

// BuildRowwise derives the row-major copy of the constraint matrix from the
// column-major storage. Must be called once after the CSC arrays are filled
// and before any Row access.
func (rel *Relaxation) BuildRowwise() {
	counts := make([]int, rel.NumRows)
	for _, i := range rel.ColIndex {
		counts[i]++
	}

	rel.rowStart = make([]int, rel.NumRows+1)
	for i := range rel.NumRows {
		rel.rowStart[i+1] = rel.rowStart[i] + counts[i]
	}

	rel.rowIndex = make([]int, len(rel.ColIndex))
	rel.rowValue = make([]float64, len(rel.ColValue))
	next := make([]int, rel.NumRows)
	copy(next, rel.rowStart[:rel.NumRows])

	for col := range rel.NumCols {
		for k := rel.ColStart[col]; k != rel.ColStart[col+1]; k++ {
			i := rel.ColIndex[k]
			rel.rowIndex[next[i]] = col
			rel.rowValue[next[i]] = rel.ColValue[k]
			next[i]++
		}
	}
}

// Row returns the column indices and coefficients of row i. The returned
// slices alias internal storage and must not be modified.
func (rel *Relaxation) Row(i int) ([]int, []float64) {
	return rel.rowIndex[rel.rowStart[i]:rel.rowStart[i+1]],
		rel.rowValue[rel.rowStart[i]:rel.rowStart[i+1]]
}

func (rel *Relaxation) IsColIntegral(col int) bool {
	return rel.Integer[col]
}

// ComputeActivities fills RowActivity with A*x for the current column
// solution. Used when the LP solver did not report row values itself.
func (rel *Relaxation) ComputeActivities() {
	activity := mat.NewVecDense(rel.NumRows, nil)
	for col := range rel.NumCols {
		x := rel.ColSolution.AtVec(col)
		if x == 0 {
			continue
		}
		for k := rel.ColStart[col]; k != rel.ColStart[col+1]; k++ {
			i := rel.ColIndex[k]
			activity.SetVec(i, activity.AtVec(i)+rel.ColValue[k]*x)
		}
	}
	rel.RowActivity = activity
}

// feastol is the feasibility tolerance in effect for this relaxation.
func (rel *Relaxation) feastol() float64 {
	if rel.Config.Feastol > 0 {
		return rel.Config.Feastol
	}
	return defaultFeastol
}

var inf = math.Inf(1)

func isInf(v float64) bool {
	return math.IsInf(v, 0)
}
