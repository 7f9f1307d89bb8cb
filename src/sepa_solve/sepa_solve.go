package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"mip_path_cuts/src/sepa_solve/pathsep"
)

func separateInstance(inst *pathsep.Instance, rounds, maxCuts int, cfg pathsep.Config) error {
	lp := inst.RelaxedModel()
	pool := pathsep.NewCutPool()
	sep := pathsep.NewPathSeparator(cfg)
	var lpIterations int64

	for round := range rounds {
		sol, err := pathsep.SolveRelaxation(lp)
		if err != nil {
			return err
		}
		fmt.Printf("Round %d: relaxation objective %f, %d rows\n", round, sol.Objective, len(lp.RowLower))

		// The bindings expose no simplex iteration count; the growing row
		// count stands in so the tie-break seed still varies across rounds.
		lpIterations += int64(len(lp.RowLower))

		rel := pathsep.NewRelaxationFromModel(lp, sol, lpIterations, cfg)
		transLp := pathsep.NewTransformedLp(rel)
		agg := pathsep.NewAggregator(rel)

		found := sep.SeparateLpSolution(rel, transLp, agg, pool)
		if found == 0 {
			fmt.Println("No violated cuts found, stopping")
			return nil
		}

		cuts := pool.TakeBest(maxCuts)
		pathsep.ApplyCuts(lp, cuts)
		fmt.Printf("Generated %d cuts, applied the best %d\n", found, len(cuts))
	}

	return nil
}

func main() {
	var rounds, maxCuts int
	var seed uint64
	var feastol float64
	var paths []string

	flag.Func("inst", "a list of instance file paths, separated by a whitespace", func(s string) error {
		paths = strings.Fields(s)
		return nil
	})
	flag.IntVar(&rounds, "rounds", 5, "Number of separation rounds per instance")
	flag.IntVar(&maxCuts, "maxcuts", 10, "Maximum number of cuts applied per round")
	flag.Uint64Var(&seed, "seed", 0, "Random seed for tie-breaking")
	flag.Float64Var(&feastol, "feastol", 1e-6, "Feasibility tolerance")

	flag.Parse()

	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Must specify at least a path")
		os.Exit(1)
	}

	cfg := pathsep.Config{Feastol: feastol, RandomSeed: seed}
	for _, p := range paths {
		inst, err := pathsep.LoadInstance(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error for instance \"%v\": %v. Skipping...\n", p, err)
			continue
		}

		fmt.Printf("Separating %v:\n%v", p, inst)
		if err := separateInstance(inst, rounds, maxCuts, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "An error occured while separating instance \"%v\": %v\n", p, err)
		}
	}
}
