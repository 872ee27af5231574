// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden provides a simple, slow, unmistakably-correct
// linear-scan index used as a reference in agreement tests against the
// cover tree's pruning-based queries.
package golden

import "sort"

// Metric mirrors the covertree.Metric signature without importing the
// package under test, so golden can be used from any internal test
// package without an import cycle.
type Metric[R any] func(a, b R) float64

// Index is a golden reference index: a flat slice of points searched by
// brute force, as a correctness oracle for the cover tree's NN, KNN and
// RNN.
type Index[R any] struct {
	metric Metric[R]
	points []R
}

// New returns an empty golden Index using metric.
func New[R any](metric Metric[R]) *Index[R] {
	return &Index[R]{metric: metric}
}

// Insert appends p to the index.
func (g *Index[R]) Insert(p R) {
	g.points = append(g.points, p)
}

// Len returns the number of indexed points.
func (g *Index[R]) Len() int {
	return len(g.points)
}

// NN returns the point nearest x and its distance, by scanning every
// indexed point.
func (g *Index[R]) NN(x R) (best R, dist float64, ok bool) {
	if len(g.points) == 0 {
		return best, 0, false
	}
	best = g.points[0]
	dist = g.metric(best, x)
	for _, p := range g.points[1:] {
		if d := g.metric(p, x); d < dist {
			best, dist = p, d
		}
	}
	return best, dist, true
}

// KNN returns the k points nearest x, ascending by distance.
func (g *Index[R]) KNN(x R, k int) []Neighbor[R] {
	result := make([]Neighbor[R], len(g.points))
	for i, p := range g.points {
		result[i] = Neighbor[R]{Data: p, Dist: g.metric(p, x)}
	}
	sort.SliceStable(result, func(a, b int) bool { return result[a].Dist < result[b].Dist })
	if k > len(result) {
		k = len(result)
	}
	return result[:k]
}

// RNN returns every point within distance r of x (dist < r).
func (g *Index[R]) RNN(x R, r float64) []Neighbor[R] {
	var result []Neighbor[R]
	for _, p := range g.points {
		if d := g.metric(p, x); d < r {
			result = append(result, Neighbor[R]{Data: p, Dist: d})
		}
	}
	return result
}

// Neighbor is one golden query result.
type Neighbor[R any] struct {
	Data R
	Dist float64
}
