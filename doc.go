// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package covertree provides a generic metric cover tree: a hierarchical
// spatial index over points drawn from an arbitrary metric space (X, d),
// where d is a user-supplied [Metric] satisfying non-negativity,
// identity-of-indiscernibles, symmetry and the triangle inequality.
//
// The tree supports dynamic insertion and deletion, exact nearest-neighbour
// ([Tree.NN]), k-nearest-neighbour ([Tree.KNN]) and range queries
// ([Tree.RNN]), plus a distribution-based [Tree.Clustering] that samples
// points at successive distance tiers around a centre.
//
// Unlike a kd-tree or an R-tree, a cover tree makes no assumption about the
// record type beyond the existence of d: records can be vectors, strings,
// graphs or anything else a [Metric] can compare.
//
// A [Tree] is safe for concurrent queries; mutations ([Tree.Insert],
// [Tree.Erase], [Tree.Deserialize]) are serialized against queries and each
// other by an internal [sync.RWMutex]. The zero value of [Tree] is not
// ready to use — construct one with [New], [NewFromPoint] or
// [NewFromPoints].
//
// Concrete distance functions, wire encodings and diagnostic rendering are
// deliberately kept out of this package; see the sibling packages metric,
// codec/msgpack, codec/cbor and diag.
package covertree
