// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package covertree

import (
	"math"
	"sort"
)

// Neighbor is one result of KNN or RNN.
type Neighbor[R any] struct {
	Data R
	ID   int
	Dist float64
}

// NN returns the record nearest to x, its id, and the distance, or
// ok == false if the tree is empty.
func (t *Tree[R]) NN(x R) (data R, id int, dist float64, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root == nil {
		var zero R
		return zero, 0, 0, false
	}

	best := t.root
	bestDist := t.root.dist(t.metric, x)
	t.nnDescend(t.root, bestDist, x, &best, &bestDist)
	return best.data, best.id, bestDist, true
}

// nnDescend recurses the subtree rooted at current, keeping (*best,
// *bestDist) updated with the closest node seen so far.
func (t *Tree[R]) nnDescend(current *node[R], distCurrent float64, x R, best **node[R], bestDist *float64) {
	if distCurrent < *bestDist {
		*best = current
		*bestDist = distCurrent
	}

	order, dists := sortChildrenByDistance(t.metric, current, x)
	for _, i := range order {
		child := current.children[i]
		distChild := dists[i]
		if *bestDist > distChild-child.parentDist {
			t.nnDescend(child, distChild, x, best, bestDist)
		}
	}
}

// KNN returns up to k records nearest to x, sorted ascending by distance.
// Fewer than k entries are returned if the tree holds fewer than k points.
func (t *Tree[R]) KNN(x R, k int) []Neighbor[R] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root == nil || k <= 0 {
		return nil
	}

	list := make([]Neighbor[R], k)
	for i := range list {
		list[i].Dist = math.Inf(1)
	}

	distRoot := t.root.dist(t.metric, x)
	n := t.knnDescend(t.root, distRoot, x, list, 0)
	return list[:n]
}

func (t *Tree[R]) knnDescend(current *node[R], distCurrent float64, x R, list []Neighbor[R], n int) int {
	k := len(list)
	if distCurrent < list[k-1].Dist {
		i := sort.Search(n, func(i int) bool { return list[i].Dist > distCurrent })
		copy(list[i+1:], list[i:k-1])
		list[i] = Neighbor[R]{Data: current.data, ID: current.id, Dist: distCurrent}
		if n < k {
			n++
		}
	}

	order, dists := sortChildrenByDistance(t.metric, current, x)
	for _, i := range order {
		child := current.children[i]
		distChild := dists[i]
		if list[k-1].Dist > distChild-child.parentDist {
			n = t.knnDescend(child, distChild, x, list, n)
		}
	}
	return n
}

// RNN returns every record within distance r of x (dist < r), in
// traversal order (not sorted by distance).
func (t *Tree[R]) RNN(x R, r float64) []Neighbor[R] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root == nil {
		return nil
	}

	var result []Neighbor[R]
	distRoot := t.root.dist(t.metric, x)
	t.rnnDescend(t.root, distRoot, x, r, &result)
	return result
}

func (t *Tree[R]) rnnDescend(current *node[R], distCurrent float64, x R, r float64, result *[]Neighbor[R]) {
	if distCurrent < r {
		*result = append(*result, Neighbor[R]{Data: current.data, ID: current.id, Dist: distCurrent})
	}

	order, dists := sortChildrenByDistance(t.metric, current, x)
	for _, i := range order {
		child := current.children[i]
		distChild := dists[i]
		if r > distChild-child.parentDist {
			t.rnnDescend(child, distChild, x, r, result)
		}
	}
}
