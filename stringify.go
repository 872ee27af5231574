// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package covertree

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// String returns a hierarchical tree diagram of the cover tree, with
// default-formatted payloads. Panics if Fprint returns an error (it
// never does for an [io.Writer] backed by a [strings.Builder]).
func (t *Tree[R]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}
	return w.String()
}

// Fprint writes a hierarchical tree diagram to w, children in their stored
// order. Each line carries the node's level; every line but the root's
// also carries its parent distance. For [2]float64 records under a
// Euclidean metric:
//
//	▼
//	└─ (0) [10 10] level=3
//	   ├─ (1) [11.5 9.8] level=2 pdist=1.513
//	   └─ (2) [9.1 11.2] level=2 pdist=1.5
//	      └─ (3) [9 11] level=1 pdist=0.2236
func (t *Tree[R]) Fprint(w io.Writer) error {
	if w == nil {
		return errors.New("covertree: Fprint: nil writer")
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root == nil {
		return nil
	}
	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}
	return fprintRec(w, t.root, "", true)
}

func fprintRec[R any](w io.Writer, n *node[R], pad string, isLast bool) error {
	glyphe, spacer := "├─ ", "│  "
	if isLast {
		glyphe, spacer = "└─ ", "   "
	}

	if n.parent == nil {
		if _, err := fmt.Fprintf(w, "%s(%d) %v level=%d\n", pad+glyphe, n.id, n.data, n.level); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "%s(%d) %v level=%d pdist=%.4g\n", pad+glyphe, n.id, n.data, n.level, n.parentDist); err != nil {
			return err
		}
	}

	for i, c := range n.children {
		if err := fprintRec(w, c, pad+spacer, i == len(n.children)-1); err != nil {
			return err
		}
	}
	return nil
}
