// SPDX-License-Identifier: MIT
// Package mat_test contains unit tests for LU decomposition and the
// determinant.
package mat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wiebecommajonas/libmat/mat"
)

func TestLUDecompose_Identity(t *testing.T) {
	t.Parallel()

	id, err := mat.Identity[float64](4)
	require.NoError(t, err)

	f, ok, err := mat.LUDecompose(id)
	require.NoError(t, err)
	require.True(t, ok)

	// I = I·I: the combined factors equal the identity, no swaps recorded.
	CompareNear(t, [][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}, f.LU)
	require.Equal(t, []int{0, 1, 2, 3, 4}, f.Perm)
}

func TestLUDecompose_PivotSwapsLargestRowUp(t *testing.T) {
	t.Parallel()

	// Column 0 of row 1 dominates, so rows 0 and 1 swap on the first step.
	m := MustMatrix(t, 3, 3, []float64{1, 2, 3, 3, 2, 1, 2, 1, 3})
	f, ok, err := mat.LUDecompose(m)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, []int{1, 0, 2}, f.Perm[:3])
	require.Equal(t, 4, f.Perm[3]) // exactly one swap: counter 3 -> 4

	// U's first row is the swapped-up pivot row.
	row0, err := f.LU.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 2, 1}, row0)
}

func TestLUDecompose_ReconstructsPermutedInput(t *testing.T) {
	t.Parallel()

	src := [][]float64{
		{3, 1, 0, 2},
		{0, 2, 1, 4},
		{1, 0, 3, 1},
		{2, 5, 0, 1},
	}
	flat := make([]float64, 0, 16)
	for _, r := range src {
		flat = append(flat, r...)
	}
	m := MustMatrix(t, 4, 4, flat)

	f, ok, err := mat.LUDecompose(m)
	require.NoError(t, err)
	require.True(t, ok)

	// Expand L (unit diagonal, multipliers below) and U (diagonal and above),
	// multiply, and compare against the permuted input: (L·U)[i] == src[Perm[i]].
	const n = 4
	var i, j, k int
	var lik, ukj, sum float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sum = 0
			for k = 0; k < n; k++ {
				switch {
				case k < i:
					lik = MustAt(t, f.LU, i, k)
				case k == i:
					lik = 1
				default:
					lik = 0
				}
				if k <= j {
					ukj = MustAt(t, f.LU, k, j)
				} else {
					ukj = 0
				}
				sum += lik * ukj
			}
			require.InDelta(t, src[f.Perm[i]][j], sum, floatTol, "element [%d,%d]", i, j)
		}
	}
}

func TestLUDecompose_SingularIsOkFalse(t *testing.T) {
	t.Parallel()

	// Row 1 is a multiple of row 0.
	m := MustMatrix(t, 2, 2, []float64{1, 2, 2, 4})
	f, ok, err := mat.LUDecompose(m)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, f)

	// All-zero matrix is singular too.
	z, err := mat.Zero[float64](3, 3)
	require.NoError(t, err)
	_, ok, err = mat.LUDecompose(z)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLUDecompose_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := mat.LUDecompose[float64](nil)
	require.ErrorIs(t, err, mat.ErrNilMatrix)

	rect := MustMatrix(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	_, _, err = mat.LUDecompose(rect)
	require.ErrorIs(t, err, mat.ErrNonSquare)
}

func TestLUDecompose_InputNotMutated(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, 3, 3, []float64{1, 2, 3, 3, 2, 1, 2, 1, 3})
	_, ok, err := mat.LUDecompose(m)
	require.NoError(t, err)
	require.True(t, ok)
	CompareExact(t, [][]float64{{1, 2, 3}, {3, 2, 1}, {2, 1, 3}}, m)
}

func TestDet_KnownValues(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		n    int
		in   []float64
		want float64
	}{
		{"1x1", 1, []float64{5}, 5},
		{"2x2", 2, []float64{1, 2, 3, 4}, -2},
		{"permutation 2x2", 2, []float64{0, 1, 1, 0}, -1},
		{"3x3", 3, []float64{1, 2, 3, 3, 2, 1, 2, 1, 3}, -12},
		{"diagonal 3x3", 3, []float64{2, 0, 0, 0, 3, 0, 0, 0, 4}, 24},
		{"4x4", 4, []float64{3, 1, 0, 2, 0, 2, 1, 4, 1, 0, 3, 1, 2, 5, 0, 1}, -158},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := MustMatrix(t, tc.n, tc.n, tc.in)
			got, err := mat.Det(m)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, floatTol)
		})
	}
}

func TestDet_IntegerElements(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, 3, 3, []int{1, 2, 3, 3, 2, 1, 2, 1, 3})
	got, err := mat.Det(m)
	require.NoError(t, err)
	require.InDelta(t, -12.0, got, floatTol)
}

func TestDet_8x8RoundsToInteger(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, 8, 8, []int{
		8, 6, 1, 0, 1, 9, 5, 9,
		9, 9, 0, 8, 4, 3, 4, 0,
		5, 6, 5, 1, 0, 9, 4, 6,
		4, 9, 8, 3, 5, 1, 10, 6,
		3, 10, 7, 4, 9, 2, 0, 1,
		2, 1, 6, 8, 7, 3, 2, 9,
		1, 7, 1, 4, 4, 9, 0, 0,
		7, 6, 4, 0, 10, 4, 5, 9,
	})
	got, err := mat.Det(m)
	require.NoError(t, err)
	require.Equal(t, -15546220.0, math.Round(got))
}

func TestDet_SingularIsZero(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, 2, 2, []float64{1, 2, 2, 4})
	got, err := mat.Det(m)
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestDet_IdentityOfLargeOrder(t *testing.T) {
	t.Parallel()

	id, err := mat.Identity[float64](100)
	require.NoError(t, err)
	got, err := mat.Det(id)
	require.NoError(t, err)
	require.Equal(t, 1.0, got)
}

func TestDet_Errors(t *testing.T) {
	t.Parallel()

	_, err := mat.Det[float64](nil)
	require.ErrorIs(t, err, mat.ErrNilMatrix)

	rect := MustMatrix(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	_, err = mat.Det(rect)
	require.ErrorIs(t, err, mat.ErrNonSquare)
}
