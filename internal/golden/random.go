// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package golden

import "math/rand/v2"

// RandomVector returns a uniformly random point in [0, scale)^dims.
func RandomVector(prng *rand.Rand, dims int, scale float64) []float64 {
	v := make([]float64, dims)
	for i := range v {
		v[i] = prng.Float64() * scale
	}
	return v
}

// RandomVectors returns n independent random points, each produced by
// RandomVector.
func RandomVectors(prng *rand.Rand, n, dims int, scale float64) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = RandomVector(prng, dims, scale)
	}
	return out
}

// RandomClusteredVectors returns n points drawn from clusters centres,
// each point jittered from a uniformly chosen centre by up to spread in
// every dimension. Useful for exercising Clustering and adversarial,
// non-uniform insertion orders.
func RandomClusteredVectors(prng *rand.Rand, n int, centres [][]float64, spread float64) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		c := centres[prng.IntN(len(centres))]
		p := make([]float64, len(c))
		for j := range p {
			p[j] = c[j] + (prng.Float64()*2-1)*spread
		}
		out[i] = p
	}
	return out
}
