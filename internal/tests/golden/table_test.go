// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package golden

import (
	"math"
	"testing"

	"github.com/SignalEmpoweringTechnology/covertree/internal/golden"
)

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func TestIndexNN(t *testing.T) {
	idx := golden.New[[]float64](euclidean)
	if _, _, ok := idx.NN([]float64{0, 0}); ok {
		t.Fatal("NN on empty index should report ok=false")
	}

	idx.Insert([]float64{0, 0})
	idx.Insert([]float64{10, 0})
	idx.Insert([]float64{3, 4})

	best, dist, ok := idx.NN([]float64{3, 5})
	if !ok {
		t.Fatal("expected ok=true")
	}
	if best[0] != 3 || best[1] != 4 {
		t.Fatalf("expected nearest {3,4}, got %v", best)
	}
	if math.Abs(dist-1) > 1e-9 {
		t.Fatalf("expected distance 1, got %v", dist)
	}
}

func TestIndexKNN(t *testing.T) {
	idx := golden.New[[]float64](euclidean)
	for _, p := range [][]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}} {
		idx.Insert(p)
	}

	neighbors := idx.KNN([]float64{0, 0}, 2)
	if len(neighbors) != 2 {
		t.Fatalf("expected 2 neighbors, got %d", len(neighbors))
	}
	if neighbors[0].Dist > neighbors[1].Dist {
		t.Fatal("expected neighbors sorted ascending by distance")
	}

	// k beyond index size is clamped
	all := idx.KNN([]float64{0, 0}, 100)
	if len(all) != idx.Len() {
		t.Fatalf("expected %d neighbors, got %d", idx.Len(), len(all))
	}
}

func TestIndexRNN(t *testing.T) {
	idx := golden.New[[]float64](euclidean)
	for _, p := range [][]float64{{0, 0}, {1, 0}, {5, 0}} {
		idx.Insert(p)
	}

	within := idx.RNN([]float64{0, 0}, 2)
	if len(within) != 2 {
		t.Fatalf("expected 2 points within radius 2, got %d", len(within))
	}

	none := idx.RNN([]float64{100, 100}, 1)
	if len(none) != 0 {
		t.Fatalf("expected 0 points, got %d", len(none))
	}
}
