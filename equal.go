// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package covertree

// SameTree reports whether t and other hold the same tree: every node
// pair, compared positionally (id, level, parentDist, data, children),
// matches exactly (ids are compared too, since a true structural match
// implies the same construction history assigned the same ids). Record
// equality is judged by t's own Metric returning zero distance, which
// works for any R without requiring it be comparable.
func (t *Tree[R]) SameTree(other *Tree[R]) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	if t.size != other.size {
		return false
	}
	if t.root == nil || other.root == nil {
		return t.root == nil && other.root == nil
	}
	return t.sameSubtree(t.root, other.root)
}

func (t *Tree[R]) sameSubtree(a, b *node[R]) bool {
	if a.id != b.id {
		return false
	}
	if a.level != b.level {
		return false
	}
	if a.parentDist != b.parentDist {
		return false
	}
	if a.dist(t.metric, b.data) != 0 {
		return false
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i, ca := range a.children {
		if !t.sameSubtree(ca, b.children[i]) {
			return false
		}
	}
	return true
}
