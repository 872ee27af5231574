// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package random

import (
	"math/rand/v2"
	"testing"

	"github.com/SignalEmpoweringTechnology/covertree/internal/golden"
)

func TestRandomVector(t *testing.T) {
	prng := rand.New(rand.NewPCG(0, 0))

	v := golden.RandomVector(prng, 4, 10)
	if len(v) != 4 {
		t.Fatalf("expected dims=4, got %d", len(v))
	}
	for _, x := range v {
		if x < 0 || x >= 10 {
			t.Errorf("component %v out of [0, 10)", x)
		}
	}
}

func TestRandomVectors(t *testing.T) {
	prng := rand.New(rand.NewPCG(0, 0))

	vs := golden.RandomVectors(prng, 50, 3, 1)
	if len(vs) != 50 {
		t.Fatalf("expected 50 vectors, got %d", len(vs))
	}
	for _, v := range vs {
		if len(v) != 3 {
			t.Fatalf("expected dims=3, got %d", len(v))
		}
	}
}

func TestRandomClusteredVectors(t *testing.T) {
	prng := rand.New(rand.NewPCG(1, 1))

	centres := [][]float64{{0, 0}, {100, 100}}
	pts := golden.RandomClusteredVectors(prng, 200, centres, 1)
	if len(pts) != 200 {
		t.Fatalf("expected 200 points, got %d", len(pts))
	}

	nearFirst, nearSecond := 0, 0
	for _, p := range pts {
		switch {
		case p[0] < 50:
			nearFirst++
		default:
			nearSecond++
		}
	}
	if nearFirst == 0 || nearSecond == 0 {
		t.Fatal("expected points jittered around both centres")
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	prng1 := rand.New(rand.NewPCG(12345, 67890))
	prng2 := rand.New(rand.NewPCG(12345, 67890))

	v1 := golden.RandomVectors(prng1, 20, 5, 3)
	v2 := golden.RandomVectors(prng2, 20, 5, 3)

	for i := range v1 {
		for j := range v1[i] {
			if v1[i][j] != v2[i][j] {
				t.Fatalf("mismatch at [%d][%d]: %v vs %v", i, j, v1[i][j], v2[i][j])
			}
		}
	}
}
