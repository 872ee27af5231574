// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package covertree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringEmptyTree(t *testing.T) {
	tr := New[[2]float64](2, NoTruncation, euclidean2)
	assert.Equal(t, "", tr.String())
}

func TestStringSingleRoot(t *testing.T) {
	tr := NewFromPoint[[2]float64]([2]float64{1, 2}, 2, NoTruncation, euclidean2)
	s := tr.String()
	assert.True(t, strings.HasPrefix(s, "▼\n"))
	assert.Contains(t, s, "(0)")
	assert.Contains(t, s, "level=0")
}

func TestFprintNilWriterErrors(t *testing.T) {
	tr := New[[2]float64](2, NoTruncation, euclidean2)
	err := tr.Fprint(nil)
	require.Error(t, err)
}

func TestFprintShowsHierarchy(t *testing.T) {
	tr := New[[2]float64](2, NoTruncation, euclidean2)
	tr.Insert([2]float64{0, 0})
	tr.Insert([2]float64{1, 0})

	s := tr.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	assert.GreaterOrEqual(t, len(lines), 3) // header + root + child
}
