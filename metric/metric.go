// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package metric collects ready-made [covertree.Metric] implementations
// over []float64 vectors, built on gonum's floats package.
package metric

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Euclidean returns the L2 distance between a and b. Panics if a and b
// have different lengths.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Manhattan returns the L1 distance between a and b.
func Manhattan(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// Minkowski returns a Metric for the Lp distance with the given order p
// (p >= 1). Minkowski(2) is equivalent to Euclidean.
func Minkowski(p float64) func(a, b []float64) float64 {
	return func(a, b []float64) float64 {
		return floats.Distance(a, b, p)
	}
}

// Cosine returns 1 - cosine-similarity(a, b), so that identical
// directions have distance 0 and orthogonal vectors have distance 1.
// Zero vectors are treated as maximally distant (1) from everything but
// themselves.
func Cosine(a, b []float64) float64 {
	dot := floats.Dot(a, b)
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		if na == 0 && nb == 0 {
			return 0
		}
		return 1
	}
	cos := dot / (na * nb)
	// guard against floating point drift pushing cos slightly outside [-1,1]
	cos = math.Max(-1, math.Min(1, cos))
	return 1 - cos
}

// Thresholded wraps base so that any distance at or above cutoff is
// reported as cutoff itself, bounding the effect of outliers on
// covering-radius bookkeeping; it remains a valid metric as long as base
// is (triangle inequality holds for min(d, cutoff) whenever base does).
func Thresholded(base func(a, b []float64) float64, cutoff float64) func(a, b []float64) float64 {
	return func(a, b []float64) float64 {
		if d := base(a, b); d < cutoff {
			return d
		}
		return cutoff
	}
}
