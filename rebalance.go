// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package covertree

// rebalanceRoot implements the Izbicki-Shelton rebalance insertion
// strategy, selected via [WithRebalance]. Rather than descending into the
// single first covering child (the insertPlain regime), it re-partitions
// every child of p between "stays near p" and "moves to x", which keeps
// the tree shallower under adversarial or sorted insertion orders at the
// cost of touching more of p's subtree per insert.
func (t *Tree[R]) rebalanceRoot(p, x *node[R]) *node[R] {
	children := p.children
	p.children = p.children[:0]
	for _, q := range children {
		q1, moveset, stayset := t.rebalanceInto(p, q, x)
		if q1 != nil {
			q1.parent = p
			q1.parentDist = p.dist(t.metric, q1.data)
			p.children = append(p.children, q1)
		}
		for _, r := range moveset {
			x = t.insert(x, r)
		}
		for _, r := range stayset {
			p = t.insertPlain(p, r)
		}
	}

	x.setLevelRecursive(p.level - 1)
	x.parent = p
	x.parentDist = p.dist(t.metric, x.data)
	p.children = append(p.children, x)
	return p
}

// rebalanceInto partitions q (together with everything in q's subtree)
// between x's side and p's side, reattaching as many of the evicted
// points as possible back under q before handing the remainder up to the
// caller.
//
// If q as a whole is closer to x than to p, the entire subtree is given
// up: every descendant of q is individually sorted into moveset (closer
// to x) or stayset (closer to or equal to p), and q is removed from p's
// children (reported via a nil replacement). Otherwise q is kept, each of
// its own children is recursively rebalanced first, and any stayset
// bubbling up from below is reinserted under q while it still fits
// within q's covering ball.
func (t *Tree[R]) rebalanceInto(p, q, x *node[R]) (replacement *node[R], moveset, stayset []*node[R]) {
	if p.distNode(t.metric, q) > q.dist(t.metric, x.data) {
		// q's whole subtree is dismantled: every point it contains is
		// individually re-homed as a bare leaf, never as a sub-graft, so
		// no point is ever counted (or attached) twice below.
		for _, r := range descendants(q) {
			r.parent = nil
			r.children = nil
			if r.dist(t.metric, p.data) > r.dist(t.metric, x.data) {
				moveset = append(moveset, r)
			} else {
				stayset = append(stayset, r)
			}
		}
		return nil, moveset, stayset
	}

	q1 := q
	kept := q.children[:0]
	for _, r := range q.children {
		r1, m, s := t.rebalanceInto(p, r, x)
		moveset = append(moveset, m...)
		stayset = append(stayset, s...)
		if r1 != nil {
			kept = append(kept, r1)
		}
	}
	q1.children = kept

	remaining := stayset[:0]
	for _, r := range stayset {
		if r.dist(t.metric, q1.data) <= q1.covdist(t.base) {
			q1 = t.insert(q1, r)
		} else {
			remaining = append(remaining, r)
		}
	}
	return q1, moveset, remaining
}

// descendants returns n together with every node in its subtree, via an
// explicit stack rather than recursion.
func descendants[R any](n *node[R]) []*node[R] {
	var result []*node[R]
	stack := []*node[R]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = append(result, cur)
		stack = append(stack, cur.children...)
	}
	return result
}
