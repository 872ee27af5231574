// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package diag renders a [covertree.Tree] for inspection: a JSON
// document describing every node, and a per-level population histogram,
// built on the tree's public traversal and serialization contracts.
package diag

import (
	"encoding/json"

	"github.com/SignalEmpoweringTechnology/covertree"
)

// NodeView is one node's data in a JSON-friendly shape.
type NodeView[R any] struct {
	ID         int     `json:"id"`
	Data       R       `json:"data"`
	Level      int     `json:"level"`
	ParentID   int     `json:"parentId,omitempty"`
	HasParent  bool    `json:"hasParent"`
	ParentDist float64 `json:"parentDist,omitempty"`
}

// frameCollector is an in-memory [covertree.Encoder] that reassembles
// parent ids from the depth-first pre-order frame stream's end-of-children
// sentinels, the same stream a real codec would write to the wire.
type frameCollector[R any] struct {
	views []NodeView[R]
	stack []int
}

func (c *frameCollector[R]) Encode(f covertree.Frame[R]) error {
	view := NodeView[R]{
		ID:         f.ID,
		Data:       f.Data,
		Level:      f.Level,
		ParentDist: f.ParentDist,
	}
	if len(c.stack) > 0 {
		view.HasParent = true
		view.ParentID = c.stack[len(c.stack)-1]
	}
	c.views = append(c.views, view)
	if f.HasChildren {
		c.stack = append(c.stack, f.ID)
	}
	return nil
}

func (c *frameCollector[R]) EncodeEnd() error {
	if len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
	}
	return nil
}

// Dump collects every node in t, in depth-first pre-order, with each
// view's ParentDist carrying the real distance to its parent.
func Dump[R any](t *covertree.Tree[R]) []NodeView[R] {
	c := &frameCollector[R]{}
	// frameCollector never errors, so Serialize cannot fail here.
	_ = t.Serialize(c)
	return c.views
}

// ToJSON renders t as an indented JSON array of [NodeView].
func ToJSON[R any](t *covertree.Tree[R]) ([]byte, error) {
	return json.MarshalIndent(Dump(t), "", "  ")
}

// LevelCount is one level/count pair of the slice Histogram builds from
// t.PrintLevels(), useful for eyeballing how balanced the tree is.
type LevelCount struct {
	Level int `json:"level"`
	Count int `json:"count"`
}

// Histogram returns t's per-level population, sorted ascending by level.
func Histogram[R any](t *covertree.Tree[R]) []LevelCount {
	levels := t.PrintLevels()
	out := make([]LevelCount, 0, len(levels))
	for level, count := range levels {
		out = append(out, LevelCount{Level: level, Count: count})
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Level > out[j].Level; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
