// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command covertree-bench builds a cover tree over random vectors and
// times Insert and KNN against it, printing a short report.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/SignalEmpoweringTechnology/covertree"
	"github.com/SignalEmpoweringTechnology/covertree/diag"
	"github.com/SignalEmpoweringTechnology/covertree/internal/golden"
	"github.com/SignalEmpoweringTechnology/covertree/metric"
)

func main() {
	n := flag.Int("n", 10_000, "number of points to insert")
	dims := flag.Int("dims", 8, "vector dimensionality")
	k := flag.Int("k", 10, "k for KNN queries")
	queries := flag.Int("queries", 1000, "number of KNN queries to time")
	base := flag.Float64("base", 2, "cover tree base")
	rebalance := flag.Bool("rebalance", false, "use the rebalance insertion strategy")
	seed := flag.Uint64("seed", 1, "PRNG seed")
	flag.Parse()

	prng := rand.New(rand.NewPCG(*seed, *seed))
	points := golden.RandomVectors(prng, *n, *dims, 1000)

	tree := covertree.New[[]float64](*base, covertree.NoTruncation, metric.Euclidean,
		covertree.WithRebalance[[]float64](*rebalance))

	insertStart := time.Now()
	for _, p := range points {
		tree.Insert(p)
	}
	insertElapsed := time.Since(insertStart)

	queryPoints := golden.RandomVectors(prng, *queries, *dims, 1000)
	queryStart := time.Now()
	for _, q := range queryPoints {
		tree.KNN(q, *k)
	}
	queryElapsed := time.Since(queryStart)

	fmt.Fprintf(os.Stdout, "inserted %d points in %s (%s/insert)\n",
		*n, insertElapsed, insertElapsed/time.Duration(*n))
	fmt.Fprintf(os.Stdout, "ran %d KNN(k=%d) queries in %s (%s/query)\n",
		*queries, *k, queryElapsed, queryElapsed/time.Duration(*queries))
	fmt.Fprintf(os.Stdout, "tree size=%d levels=%d\n", tree.Size(), tree.LevelSize())

	for _, lc := range diag.Histogram(tree) {
		fmt.Fprintf(os.Stdout, "  level %d: %d nodes\n", lc.Level, lc.Count)
	}
}
