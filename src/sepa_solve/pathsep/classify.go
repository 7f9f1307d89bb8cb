package pathsep

type rowType int8

const (
	rowTypeUnusable rowType = iota
	rowTypeEq
	rowTypeLeq
	rowTypeGeq
)

// classifyRows types every row from its bounds and the current activity. A row
// with equal finite bounds is an equality. Otherwise the tighter side decides:
// if both slacks exceed the feasibility tolerance the row is not binding
// enough to aggregate and is marked unusable for this round.
func classifyRows(rel *Relaxation) []rowType {
	feastol := rel.feastol()
	rowtype := make([]rowType, rel.NumRows)

	for i := range rel.NumRows {
		if rel.RowLower[i] == rel.RowUpper[i] {
			rowtype[i] = rowTypeEq
			continue
		}

		lowerslack := inf
		upperslack := inf
		if !isInf(rel.RowLower[i]) {
			lowerslack = rel.RowActivity.AtVec(i) - rel.RowLower[i]
		}
		if !isInf(rel.RowUpper[i]) {
			upperslack = rel.RowUpper[i] - rel.RowActivity.AtVec(i)
		}

		if lowerslack > feastol && upperslack > feastol {
			rowtype[i] = rowTypeUnusable
		} else if lowerslack < upperslack {
			rowtype[i] = rowTypeGeq
		} else {
			rowtype[i] = rowTypeLeq
		}
	}

	return rowtype
}

// countEligibleContinuous counts, per row, the eligible continuous columns
// touching it (continuous, nonzero bound distance) and returns the total
// nonzero count over those columns for sizing the arc lists.
func countEligibleContinuous(rel *Relaxation, transLp *TransformedLp) (perRow []int, total int) {
	perRow = make([]int, rel.NumRows)
	for col := range rel.NumCols {
		if rel.Integer[col] || transLp.BoundDistance(col) == 0 {
			continue
		}
		total += rel.ColStart[col+1] - rel.ColStart[col]
		for k := rel.ColStart[col]; k != rel.ColStart[col+1]; k++ {
			perRow[rel.ColIndex[k]]++
		}
	}
	return perRow, total
}

// findSubstitutions locates equality rows containing exactly one eligible
// continuous column and reserves each such row for substituting that column
// away. Only the first row found per column is kept; reserved rows are flipped
// to unusable so they never serve as base or extension rows.
func findSubstitutions(rel *Relaxation, transLp *TransformedLp, rowtype []rowType, numContinuous []int) []substitution {
	subst := make([]substitution, rel.NumCols)
	for col := range subst {
		subst[col].row = -1
	}

	for i := range rel.NumRows {
		if rowtype[i] != rowTypeEq || numContinuous[i] != 1 {
			continue
		}

		inds, vals := rel.Row(i)
		for j, col := range inds {
			if rel.Integer[col] || transLp.BoundDistance(col) == 0 {
				continue
			}
			if subst[col].row == -1 {
				subst[col].row = i
				subst[col].val = vals[j]
				rowtype[i] = rowTypeUnusable
			}
			break
		}
	}

	return subst
}
