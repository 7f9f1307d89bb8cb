package pathsep

import "math"

// CutGeneration turns candidate aggregated rows into mixed-integer-rounding
// cuts. Every support column is first complemented towards its nearest finite
// bound, nonnegative continuous terms are relaxed away, and the remaining
// inequality is MIR-rounded. A cut is accepted only when it is violated by the
// current solution with sufficient efficacy; accepted cuts are written to the
// pool in the original variable space.
type CutGeneration struct {
	rel  *Relaxation
	pool *CutPool
}

func NewCutGeneration(rel *Relaxation, pool *CutPool) *CutGeneration {
	return &CutGeneration{rel: rel, pool: pool}
}

type mirTerm struct {
	col     int
	coef    float64
	cutCoef float64
	dist    float64
	atUpper bool
	integer bool
}

// GenerateCut attempts to derive a cut from the >=-oriented candidate row
// sum(vals[j]*x[inds[j]]) >= *rhs. On success *rhs holds the produced cut's
// right-hand side and true is returned. The passed slices are not retained.
func (cg *CutGeneration) GenerateCut(transLp *TransformedLp, inds []int, vals []float64, rhs *float64) bool {
	feastol := cg.rel.feastol()

	// Work on the <= orientation of the candidate and shift every column to
	// its distance from the nearest finite bound.
	b := -*rhs
	terms := make([]mirTerm, 0, len(inds))
	for j, col := range inds {
		a := -vals[j]
		if math.Abs(a) <= zeroCoefTol {
			continue
		}

		x := cg.rel.ColSolution.AtVec(col)
		lowerDist := inf
		upperDist := inf
		if !isInf(cg.rel.ColLower[col]) {
			lowerDist = x - cg.rel.ColLower[col]
		}
		if !isInf(cg.rel.ColUpper[col]) {
			upperDist = cg.rel.ColUpper[col] - x
		}
		if isInf(lowerDist) && isInf(upperDist) {
			return false
		}

		t := mirTerm{col: col, dist: transLp.BoundDistance(col), integer: cg.rel.Integer[col]}
		if lowerDist <= upperDist {
			b -= a * cg.rel.ColLower[col]
			t.coef = a
		} else {
			b -= a * cg.rel.ColUpper[col]
			t.coef = -a
			t.atUpper = true
		}
		terms = append(terms, t)
	}

	f := b - math.Floor(b)
	if f < minMirFraction || f > 1-minMirFraction {
		return false
	}

	cutRhs := math.Floor(b)
	violation := -cutRhs
	norm := 0.0
	hasIntegerSupport := false
	for k := range terms {
		t := &terms[k]
		switch {
		case t.integer:
			fj := t.coef - math.Floor(t.coef)
			t.cutCoef = math.Floor(t.coef)
			if fj > f {
				t.cutCoef += (fj - f) / (1 - f)
			}
			hasIntegerSupport = hasIntegerSupport || t.cutCoef != 0
		case t.coef < 0:
			t.cutCoef = t.coef / (1 - f)
		default:
			// Nonnegative continuous terms are relaxed away.
			t.cutCoef = 0
		}
		violation += t.cutCoef * t.dist
		norm += t.cutCoef * t.cutCoef
	}

	if !hasIntegerSupport || violation <= 10*feastol {
		return false
	}
	efficacy := violation / math.Max(1, math.Sqrt(norm))
	if efficacy < minCutEfficacy {
		return false
	}

	// Uncomplement back to the original variable space.
	cutInds := make([]int, 0, len(terms))
	cutVals := make([]float64, 0, len(terms))
	for _, t := range terms {
		if t.cutCoef == 0 {
			continue
		}
		if t.atUpper {
			cutInds = append(cutInds, t.col)
			cutVals = append(cutVals, -t.cutCoef)
			cutRhs -= t.cutCoef * cg.rel.ColUpper[t.col]
		} else {
			cutInds = append(cutInds, t.col)
			cutVals = append(cutVals, t.cutCoef)
			cutRhs += t.cutCoef * cg.rel.ColLower[t.col]
		}
	}

	cg.pool.Add(cutInds, cutVals, cutRhs, efficacy)
	*rhs = cutRhs
	return true
}
