// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package covertree

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SignalEmpoweringTechnology/covertree/internal/golden"
)

// TestConcurrentQueriesDuringMutation exercises the tree's RWMutex under
// the race detector: one goroutine inserts/erases while several others
// hammer NN/KNN/RNN/Traverse concurrently. Nothing here asserts a
// particular query result, since the tree is mutating out from under the
// readers; the point is that every call returns without racing or
// panicking.
func TestConcurrentQueriesDuringMutation(t *testing.T) {
	prng := rand.New(rand.NewPCG(99, 100))
	seed := golden.RandomVectors(prng, 200, 3, 100)

	tr := New[[]float64](2, NoTruncation, euclideanSlice)
	for _, p := range seed {
		tr.Insert(p)
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		localPrng := rand.New(rand.NewPCG(1, 1))
		for i := 0; i < 200; i++ {
			p := golden.RandomVector(localPrng, 3, 100)
			tr.Insert(p)
			if i%5 == 0 {
				tr.Erase(p)
			}
		}
		close(stop)
	}()

	readers := 4
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func(seed uint64) {
			defer wg.Done()
			localPrng := rand.New(rand.NewPCG(seed, seed))
			for {
				select {
				case <-stop:
					return
				default:
				}
				q := golden.RandomVector(localPrng, 3, 100)
				tr.NN(q)
				tr.KNN(q, 5)
				tr.RNN(q, 10)
				tr.Traverse(func(int, []float64, int, int, bool) {})
			}
		}(uint64(r + 2))
	}

	wg.Wait()
	assert.True(t, tr.CheckCovering())
}
