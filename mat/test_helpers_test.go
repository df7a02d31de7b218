// SPDX-License-Identifier: MIT
// Package mat_test contains shared helpers for the mat test suite.
package mat_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wiebecommajonas/libmat/mat"
)

// floatTol is the tolerance used when comparing float64 results that pass
// through LU elimination or Gauss-Jordan reduction.
const floatTol = 1e-9

// MustMatrix builds a matrix from a row-major value slice and fails the test
// on any constructor error.
func MustMatrix[T mat.Number](t testing.TB, rows, cols int, values []T) *mat.Matrix[T] {
	t.Helper()
	m, err := mat.FromSlice(rows, cols, values)
	require.NoError(t, err)
	return m
}

// MustVector builds a column vector from entries and fails the test on error.
func MustVector[T mat.Number](t testing.TB, entries []T) *mat.Vector[T] {
	t.Helper()
	v, err := mat.VectorOf(entries)
	require.NoError(t, err)
	return v
}

// MustAt reads one element and fails the test on an out-of-bounds error.
func MustAt[T mat.Number](t testing.TB, m *mat.Matrix[T], row, col int) T {
	t.Helper()
	v, err := m.At(row, col)
	require.NoError(t, err)
	return v
}

// CompareExact checks every element of got against want using ==.
// Use for integer matrices and float results known to be exact.
func CompareExact[T mat.Number](t testing.TB, want [][]T, got *mat.Matrix[T]) {
	t.Helper()
	require.Equal(t, len(want), got.Rows())
	require.Equal(t, len(want[0]), got.Cols())
	var i, j int // loop iterators
	for i = 0; i < got.Rows(); i++ {
		for j = 0; j < got.Cols(); j++ {
			require.Equal(t, want[i][j], MustAt(t, got, i, j), "element [%d,%d]", i, j)
		}
	}
}

// CompareNear checks every element of got against want within floatTol.
func CompareNear(t testing.TB, want [][]float64, got *mat.Matrix[float64]) {
	t.Helper()
	require.Equal(t, len(want), got.Rows())
	require.Equal(t, len(want[0]), got.Cols())
	var i, j int // loop iterators
	for i = 0; i < got.Rows(); i++ {
		for j = 0; j < got.Cols(); j++ {
			require.InDelta(t, want[i][j], MustAt(t, got, i, j), floatTol, "element [%d,%d]", i, j)
		}
	}
}
