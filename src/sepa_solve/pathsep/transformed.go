package pathsep

// TransformedLp is the bound-distance view of the current solution: for every
// column the distance from its value to the nearest finite bound, floored to
// zero within the feasibility tolerance. A zero distance marks the column as
// pinned, so it can neither be complemented by the cut generator nor serve as
// a hop on an aggregation path.
type TransformedLp struct {
	boundDist []float64
}

func NewTransformedLp(rel *Relaxation) *TransformedLp {
	feastol := rel.feastol()
	dist := make([]float64, rel.NumCols)

	for col := range rel.NumCols {
		x := rel.ColSolution.AtVec(col)
		d := -1.0
		if !isInf(rel.ColLower[col]) {
			d = x - rel.ColLower[col]
		}
		if !isInf(rel.ColUpper[col]) {
			if up := rel.ColUpper[col] - x; d < 0 || up < d {
				d = up
			}
		}
		// Free columns stay pinned: there is no bound to complement to.
		if d <= feastol {
			d = 0
		}
		dist[col] = d
	}

	return &TransformedLp{boundDist: dist}
}

func (t *TransformedLp) BoundDistance(col int) float64 {
	return t.boundDist[col]
}
