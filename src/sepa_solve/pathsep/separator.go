package pathsep

import (
	"math"

	"golang.org/x/exp/rand"
)

// PathSeparator aggregates chains of matrix rows into candidate cut rows. For
// every usable base row it walks a bounded-length path through continuous
// columns, substituting each hop away with a weighted row, and hands every
// intermediate aggregation to the cut generator in both orientations.
type PathSeparator struct {
	cfg Config
}

func NewPathSeparator(cfg Config) *PathSeparator {
	if cfg.Feastol <= 0 {
		cfg.Feastol = defaultFeastol
	}
	return &PathSeparator{cfg: cfg}
}

// CutGenerator is the contract the separator drives: attempt to turn one
// candidate row sum(vals[j]*x[inds[j]]) >= *rhs into a cut, reporting
// success. Implementations may mutate *rhs but must not retain the slices.
type CutGenerator interface {
	GenerateCut(transLp *TransformedLp, inds []int, vals []float64, rhs *float64) bool
}

// SeparateLpSolution runs one separation round against the given relaxation
// snapshot. All classification, substitution and adjacency structures are
// rebuilt from scratch; generated cuts land in pool as a side effect of the
// cut generation. Returns the number of cuts added during this call.
func (sep *PathSeparator) SeparateLpSolution(rel *Relaxation, transLp *TransformedLp, agg *Aggregator, pool *CutPool) int {
	return sep.separate(rel, transLp, agg, NewCutGeneration(rel, pool))
}

func (sep *PathSeparator) separate(rel *Relaxation, transLp *TransformedLp, agg *Aggregator, cutGen CutGenerator) int {
	feastol := sep.cfg.Feastol
	rng := rand.New(rand.NewSource(sep.cfg.RandomSeed + uint64(rel.LpIterations)))

	rowtype := classifyRows(rel)
	numContinuous, maxAggrRowSize := countEligibleContinuous(rel, transLp)
	subst := findSubstitutions(rel, transLp, rowtype, numContinuous)
	arcs := buildArcLists(rel, transLp, rowtype, subst, maxAggrRowSize)

	added := 0

	for i := range rel.NumRows {
		switch rowtype[i] {
		case rowTypeUnusable:
			continue
		case rowTypeLeq:
			agg.AddRow(i, -1.0)
		default:
			agg.AddRow(i, 1.0)
		}

		currPathLen := 1
		for currPathLen != maxPathLen {
			baseRowInds, baseRowVals := agg.CurrentAggregation(false)
			addedSubstitutionRows := false

			bestOutArcCol := -1
			outArcColVal := 0.0
			outArcColBoundDist := 0.0

			bestInArcCol := -1
			inArcColVal := 0.0
			inArcColBoundDist := 0.0

			for j, col := range baseRowInds {
				if transLp.BoundDistance(col) == 0 || rel.IsColIntegral(col) {
					continue
				}

				if subst[col].row != -1 {
					addedSubstitutionRows = true
					agg.AddRow(subst[col].row, -baseRowVals[j]/subst[col].val)
					continue
				}

				if addedSubstitutionRows {
					continue
				}

				if baseRowVals[j] < 0 {
					if !arcs.hasInArcs(col) {
						continue
					}
					if bestOutArcCol == -1 || transLp.BoundDistance(col) > outArcColBoundDist {
						bestOutArcCol = col
						outArcColVal = baseRowVals[j]
						outArcColBoundDist = transLp.BoundDistance(col)
					}
				} else {
					if !arcs.hasOutArcs(col) {
						continue
					}
					if bestInArcCol == -1 || transLp.BoundDistance(col) > inArcColBoundDist {
						bestInArcCol = col
						inArcColVal = baseRowVals[j]
						inArcColBoundDist = transLp.BoundDistance(col)
					}
				}
			}

			if addedSubstitutionRows {
				continue
			}

			success := false
			if rhs, ok := agg.RightHandSide(false); ok {
				success = cutGen.GenerateCut(transLp, baseRowInds, baseRowVals, &rhs)
			}
			if !success {
				negInds, negVals := agg.CurrentAggregation(true)
				if rhs, ok := agg.RightHandSide(true); ok {
					success = cutGen.GenerateCut(transLp, negInds, negVals, &rhs)
				}
			}
			if success {
				added++
			}

			if success || (bestOutArcCol == -1 && bestInArcCol == -1) {
				break
			}

			currPathLen++
			// Out arcs are preferred unless the in-arc candidate's bound
			// distance wins by more than feastol; only the out-arc attempt
			// falls through to the in-arc candidate, not the reverse.
			row, weight := -1, 0.0
			if bestInArcCol == -1 ||
				(bestOutArcCol != -1 && outArcColBoundDist >= inArcColBoundDist-feastol) {
				row, weight = sep.pickArcRow(rel, rng, arcs.inArcs(bestOutArcCol), outArcColVal)
				if row == -1 && bestInArcCol != -1 {
					row, weight = sep.pickArcRow(rel, rng, arcs.outArcs(bestInArcCol), inArcColVal)
				}
			} else {
				row, weight = sep.pickArcRow(rel, rng, arcs.outArcs(bestInArcCol), inArcColVal)
			}

			if row == -1 {
				break
			}
			agg.AddRow(row, weight)
		}

		agg.Clear()
	}

	return added
}

// pickArcRow selects, among the arc rows able to eliminate a column with
// aggregated coefficient colVal, the row maximizing |weight * dual|. Implied
// weights outside [feastol, 1/feastol] in magnitude are rejected outright.
// Scores within feastol of the incumbent are settled by a coin flip.
func (sep *PathSeparator) pickArcRow(rel *Relaxation, rng *rand.Rand, arcRows []rowEntry, colVal float64) (int, float64) {
	feastol := sep.cfg.Feastol
	maxWeight := 1.0 / feastol

	row := -1
	weight := 0.0
	score := 0.0
	for _, arc := range arcRows {
		thisWeight := -colVal / arc.val
		if w := math.Abs(thisWeight); w < feastol || w > maxWeight {
			continue
		}
		thisScore := math.Abs(thisWeight * rel.RowDual.AtVec(arc.row))

		if row == -1 || thisScore > score+feastol ||
			(thisScore >= score-feastol && rng.Uint64()&1 == 1) {
			row = arc.row
			score = thisScore
			weight = thisWeight
		}
	}

	return row, weight
}
