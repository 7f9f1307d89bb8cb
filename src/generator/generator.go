package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

func GenerateMIPInstance(numRows, numCols int, meanDensity, stdDevDensity, intShare float64, rng *rand.Rand) string {
	s := new(strings.Builder)
	fmt.Fprintf(s, "%d %d\n", numRows, numCols)

	for range numCols {
		isInt := 0
		if rng.Float64() < intShare {
			isInt = 1
		}
		fmt.Fprintf(s, "0 %d %d %d\n", 1+rng.Intn(10), isInt, 1+rng.Intn(20))
	}

	cols := mapset.NewSet[int]()
	for range numRows {
		r := math.Max(0, math.Min(1, meanDensity+stdDevDensity*rng.NormFloat64()))
		rowLen := min(numCols, int(math.Max(2, float64(numCols)*r)))

		cols.Clear()
		for cols.Cardinality() < rowLen {
			cols.Add(rng.Intn(numCols))
		}

		activity := 0.0
		entries := new(strings.Builder)
		for col := range cols.Iter() {
			val := float64(1 + rng.Intn(5))
			if rng.Intn(2) == 0 {
				val = -val
			}
			activity += val
			fmt.Fprintf(entries, " %d %g", col, val)
		}

		rhs := math.Ceil(activity + float64(rng.Intn(10)))
		switch rng.Intn(3) {
		case 0:
			fmt.Fprintf(s, "-inf %g %d%s\n", rhs, rowLen, entries.String())
		case 1:
			fmt.Fprintf(s, "%g +inf %d%s\n", -rhs, rowLen, entries.String())
		default:
			fmt.Fprintf(s, "%g %g %d%s\n", rhs, rhs, rowLen, entries.String())
		}
	}

	return s.String()
}

func main() {
	var outPath string
	var numRows, numCols int
	var meanDensity, stdDevDensity, intShare float64
	var seed int64

	flag.StringVar(&outPath, "out", "out.txt", "The output file")
	flag.IntVar(&numRows, "rows", 0, "The number of rows")
	flag.IntVar(&numCols, "cols", 0, "The number of columns")
	flag.Float64Var(&meanDensity, "density", 0.2, "Mean fraction of columns per row")
	flag.Float64Var(&stdDevDensity, "stddev", 0.05, "Standard deviation of the row density")
	flag.Float64Var(&intShare, "intshare", 0.7, "Fraction of integer columns")
	flag.Int64Var(&seed, "seed", 1, "Random seed")

	flag.Parse()

	if numRows <= 0 || numCols <= 0 {
		fmt.Fprintln(os.Stderr, "Must specify positive -rows and -cols")
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(seed))
	out := GenerateMIPInstance(numRows, numCols, meanDensity, stdDevDensity, intShare, rng)
	if err := os.WriteFile(outPath, []byte(out), 0666); err != nil {
		fmt.Fprintln(os.Stderr, "Error while writing the instance:", err)
		os.Exit(1)
	}
}
