// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package covertree

import "errors"

// Sentinel errors returned by Tree methods. Test with [errors.Is].
var (
	// ErrUnsortedDistribution is returned by Clustering/ClusteringAround
	// when the distribution argument is not ascending.
	ErrUnsortedDistribution = errors.New("covertree: clustering distribution is not ascending")

	// ErrBadDistribution is returned by Clustering/ClusteringAround
	// when a distribution fraction lies outside [0, 1].
	ErrBadDistribution = errors.New("covertree: clustering distribution fraction out of [0,1]")

	// ErrEmptyTree is returned by queries that cannot produce a
	// meaningful result against an empty tree.
	ErrEmptyTree = errors.New("covertree: tree is empty")

	// ErrNotFound is returned by AtErr when no live node carries the
	// requested id.
	ErrNotFound = errors.New("covertree: id not found")

	// ErrCorruptStream is returned by Deserialize, wrapping the decoder's
	// error, when Decode fails before the stream is complete (including a
	// stream that ends before the sentinel closing an open child list).
	// Frames after the root's subtree are not read, so trailing data is
	// not detected.
	ErrCorruptStream = errors.New("covertree: corrupt frame stream")
)
