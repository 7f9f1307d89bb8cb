package pathsep

import (
	"fmt"
	"math"
	"slices"

	"github.com/lanl/highs"
	"gonum.org/v1/gonum/mat"
)

// LpSolution carries the pieces of an LP solve the separation layer consumes.
type LpSolution struct {
	ColValue  []float64
	RowValue  []float64
	RowDual   []float64
	Objective float64
}

// SolveRelaxation solves lp, which must be a pure LP, and checks optimality.
func SolveRelaxation(lp *highs.Model) (*LpSolution, error) {
	solution, err := lp.Solve()
	if err != nil {
		return nil, err
	}
	if solution.Status != highs.Optimal {
		return nil, fmt.Errorf("status: %v", solution.Status.String())
	}

	return &LpSolution{
		ColValue:  solution.ColumnPrimal,
		RowValue:  solution.RowPrimal,
		RowDual:   solution.RowDual,
		Objective: solution.Objective,
	}, nil
}

// NewRelaxationFromModel assembles the separator's snapshot of a solved LP
// relaxation: the model's bounds and matrix in column-major form plus the
// solution's primal values, row activities and row duals. lpIterations is the
// cumulative LP iteration counter used in the tie-break seed derivation.
func NewRelaxationFromModel(lp *highs.Model, sol *LpSolution, lpIterations int64, cfg Config) *Relaxation {
	numCols := len(lp.ColLower)
	numRows := len(lp.RowLower)

	rel := &Relaxation{
		NumRows:      numRows,
		NumCols:      numCols,
		ColLower:     slices.Clone(lp.ColLower),
		ColUpper:     slices.Clone(lp.ColUpper),
		RowLower:     slices.Clone(lp.RowLower),
		RowUpper:     slices.Clone(lp.RowUpper),
		Integer:      make([]bool, numCols),
		LpIterations: lpIterations,
		Config:       cfg,
	}
	for j, vt := range lp.VarTypes {
		rel.Integer[j] = vt == highs.IntegerType
	}

	// Triplets to CSC.
	counts := make([]int, numCols)
	for _, nz := range lp.ConstMatrix {
		counts[nz.Col]++
	}
	rel.ColStart = make([]int, numCols+1)
	for j := range numCols {
		rel.ColStart[j+1] = rel.ColStart[j] + counts[j]
	}
	rel.ColIndex = make([]int, len(lp.ConstMatrix))
	rel.ColValue = make([]float64, len(lp.ConstMatrix))
	next := make([]int, numCols)
	copy(next, rel.ColStart[:numCols])
	for _, nz := range lp.ConstMatrix {
		rel.ColIndex[next[nz.Col]] = nz.Row
		rel.ColValue[next[nz.Col]] = nz.Val
		next[nz.Col]++
	}
	rel.BuildRowwise()

	rel.ColSolution = mat.NewVecDense(numCols, slices.Clone(sol.ColValue))
	if len(sol.RowValue) == numRows {
		rel.RowActivity = mat.NewVecDense(numRows, slices.Clone(sol.RowValue))
	} else {
		rel.ComputeActivities()
	}
	if len(sol.RowDual) == numRows {
		rel.RowDual = mat.NewVecDense(numRows, slices.Clone(sol.RowDual))
	} else {
		rel.RowDual = mat.NewVecDense(numRows, nil)
	}

	return rel
}

// ApplyCuts appends the given cuts to lp as new <= rows.
func ApplyCuts(lp *highs.Model, cuts []Cut) {
	for _, cut := range cuts {
		row := len(lp.RowLower)
		for k, col := range cut.Indices {
			lp.ConstMatrix = append(lp.ConstMatrix, highs.Nonzero{Row: row, Col: col, Val: cut.Values[k]})
		}
		lp.RowLower = append(lp.RowLower, math.Inf(-1))
		lp.RowUpper = append(lp.RowUpper, cut.Upper)
	}
}
