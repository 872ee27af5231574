// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package covertree

import "sort"

// sortChildrenByDistance returns the permutation of p's children sorted
// ascending by distance to x, plus the precomputed distance of every
// child (indexed by the *original* child-slice position, not the
// permutation). Ties break by original child-slice order.
//
// Every descent (insert, erase, NN, KNN, RNN, clustering) enumerates
// children through this helper, visiting the nearest first so that the
// running bound tightens as early as possible; each child is still
// tested against d(child, x) - child.parentDist >= bound on its own.
func sortChildrenByDistance[R any](metric Metric[R], p *node[R], x R) (order []int, dists []float64) {
	n := len(p.children)
	dists = make([]float64, n)
	order = make([]int, n)
	for i, c := range p.children {
		dists[i] = c.dist(metric, x)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return dists[order[a]] < dists[order[b]]
	})
	return order, dists
}
