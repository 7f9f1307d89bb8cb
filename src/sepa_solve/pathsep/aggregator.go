package pathsep

import "math"

// Aggregator maintains one working row as a weighted sum of relaxation rows.
// The column sums and the per-row weights are kept in dense scratch arrays
// with explicit nonzero lists, so Clear costs only the touched entries. The
// accumulation is >=-oriented: a contribution with positive weight consumes
// the row's lower bound, a negative weight its upper bound.
type Aggregator struct {
	rel *Relaxation

	colVal  []float64
	colSeen []bool
	colList []int

	rowWeight []float64
	rowSeen   []bool
	rowList   []int
}

func NewAggregator(rel *Relaxation) *Aggregator {
	return &Aggregator{
		rel:       rel,
		colVal:    make([]float64, rel.NumCols),
		colSeen:   make([]bool, rel.NumCols),
		rowWeight: make([]float64, rel.NumRows),
		rowSeen:   make([]bool, rel.NumRows),
	}
}

// AddRow accumulates weight*row into the working row. A row may be added any
// number of times; its weights accumulate additively.
func (a *Aggregator) AddRow(row int, weight float64) {
	inds, vals := a.rel.Row(row)
	for k, col := range inds {
		if !a.colSeen[col] {
			a.colSeen[col] = true
			a.colList = append(a.colList, col)
		}
		a.colVal[col] += weight * vals[k]
	}

	if !a.rowSeen[row] {
		a.rowSeen[row] = true
		a.rowList = append(a.rowList, row)
	}
	a.rowWeight[row] += weight
}

// CurrentAggregation materializes the working row as parallel index/value
// slices, in first-touch column order. Entries whose sums cancelled to
// (numerically) zero are dropped. With negate set, every coefficient is
// returned sign-flipped; the aggregator state is not changed either way.
func (a *Aggregator) CurrentAggregation(negate bool) ([]int, []float64) {
	inds := make([]int, 0, len(a.colList))
	vals := make([]float64, 0, len(a.colList))
	for _, col := range a.colList {
		v := a.colVal[col]
		if math.Abs(v) <= zeroCoefTol {
			continue
		}
		if negate {
			v = -v
		}
		inds = append(inds, col)
		vals = append(vals, v)
	}
	return inds, vals
}

// RightHandSide derives the right-hand side of the >=-oriented working row
// from the recorded row weights: positive weights take the row's lower bound,
// negative weights the upper bound. The second result is false when a needed
// bound is infinite, in which case the orientation has no finite side.
func (a *Aggregator) RightHandSide(negate bool) (float64, bool) {
	rhs := 0.0
	for _, row := range a.rowList {
		w := a.rowWeight[row]
		if negate {
			w = -w
		}
		switch {
		case w > 0:
			if isInf(a.rel.RowLower[row]) {
				return 0, false
			}
			rhs += w * a.rel.RowLower[row]
		case w < 0:
			if isInf(a.rel.RowUpper[row]) {
				return 0, false
			}
			rhs += w * a.rel.RowUpper[row]
		}
	}
	return rhs, true
}

// Clear resets the working row to empty.
func (a *Aggregator) Clear() {
	for _, col := range a.colList {
		a.colVal[col] = 0
		a.colSeen[col] = false
	}
	for _, row := range a.rowList {
		a.rowWeight[row] = 0
		a.rowSeen[row] = false
	}
	a.colList = a.colList[:0]
	a.rowList = a.rowList[:0]
}
