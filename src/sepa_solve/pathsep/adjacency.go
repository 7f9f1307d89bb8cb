package pathsep

// arcLists holds, for every eligible continuous column, the rows that can
// absorb it (in-arcs) and the rows that can emit it (out-arcs), as two flat
// arrays with a (start,end) range per column. For <= rows a negative
// coefficient routes to the in-arcs and a positive one to the out-arcs;
// equality and >= rows route the opposite way. Only one coefficient sign is
// stored per arc set; the cut generation tries the reversed orientation of
// every aggregation anyway.
type arcLists struct {
	inRows  []rowEntry
	outRows []rowEntry

	colInStart  []int
	colInEnd    []int
	colOutStart []int
	colOutEnd   []int
}

// buildArcLists scans the matrix column of every continuous, non-substituted
// column with nonzero bound distance and routes each nonzero by row type and
// coefficient sign. Unusable rows, including substitution-reserved ones, are
// skipped. Capacity is precomputed so the flat arrays never reallocate.
func buildArcLists(rel *Relaxation, transLp *TransformedLp, rowtype []rowType, subst []substitution, capacity int) *arcLists {
	arcs := &arcLists{
		inRows:      make([]rowEntry, 0, capacity),
		outRows:     make([]rowEntry, 0, capacity),
		colInStart:  make([]int, rel.NumCols),
		colInEnd:    make([]int, rel.NumCols),
		colOutStart: make([]int, rel.NumCols),
		colOutEnd:   make([]int, rel.NumCols),
	}

	for col := range rel.NumCols {
		if rel.Integer[col] || transLp.BoundDistance(col) == 0 {
			continue
		}
		if subst[col].row != -1 {
			continue
		}

		arcs.colInStart[col] = len(arcs.inRows)
		arcs.colOutStart[col] = len(arcs.outRows)
		for k := rel.ColStart[col]; k != rel.ColStart[col+1]; k++ {
			row := rel.ColIndex[k]
			val := rel.ColValue[k]
			switch rowtype[row] {
			case rowTypeUnusable:
				continue
			case rowTypeLeq:
				if val < 0 {
					arcs.inRows = append(arcs.inRows, rowEntry{row, val})
				} else {
					arcs.outRows = append(arcs.outRows, rowEntry{row, val})
				}
			default:
				if val > 0 {
					arcs.inRows = append(arcs.inRows, rowEntry{row, val})
				} else {
					arcs.outRows = append(arcs.outRows, rowEntry{row, val})
				}
			}
		}
		arcs.colInEnd[col] = len(arcs.inRows)
		arcs.colOutEnd[col] = len(arcs.outRows)
	}

	return arcs
}

func (a *arcLists) inArcs(col int) []rowEntry {
	return a.inRows[a.colInStart[col]:a.colInEnd[col]]
}

func (a *arcLists) outArcs(col int) []rowEntry {
	return a.outRows[a.colOutStart[col]:a.colOutEnd[col]]
}

func (a *arcLists) hasInArcs(col int) bool {
	return a.colInEnd[col] > a.colInStart[col]
}

func (a *arcLists) hasOutArcs(col int) bool {
	return a.colOutEnd[col] > a.colOutStart[col]
}
