// SPDX-License-Identifier: MIT
// Package mat: LU decomposition with partial pivoting and the determinant
// derived from it. The engine always works on a float64 copy of the input, so
// integer matrices decompose without overflow surprises; callers that need an
// exact integer determinant should round the result.

package mat

import "math"

// luPivotTol is the fixed singularity tolerance: a pivot column whose largest
// absolute candidate falls below it marks the matrix as numerically singular.
const luPivotTol = 1e-6

// LUFactors holds a combined LU factorization with its row permutation.
type LUFactors struct {
	// LU stores both triangular factors in one matrix: the multipliers of L
	// strictly below the diagonal (L's unit diagonal is implied) and U on and
	// above the diagonal.
	LU *Matrix[float64]
	// Perm has length n+1. Perm[0..n-1] is the row permutation applied to the
	// input; Perm[n] starts at n and increments once per row swap, so
	// Perm[n]-n is the total swap count (its parity fixes the determinant sign).
	Perm []int
}

// LUDecompose factorizes a square matrix into combined L/U factors with
// partial pivoting.
//
// Implementation:
//   - Stage 1 (Validate): input non-nil and square; copy into a float64
//     working matrix; initialize Perm to [0..n-1, n].
//   - Stage 2 (Pivot): for each column i, scan |a[k][i]| for k in i..n-1 with
//     a strictly-greater comparison, so the first maximal entry wins. A
//     maximum below the 1e-6 tolerance means the matrix is singular.
//   - Stage 3 (Swap): when the pivot row differs from i, swap the two working
//     rows in place, swap Perm[i] and Perm[imax], and bump the swap counter.
//   - Stage 4 (Eliminate): for each row j below i, store the multiplier
//     a[j][i] /= a[i][i], then subtract its multiple of the pivot row from the
//     trailing columns.
//
// Returns:
//   - *LUFactors and ok == true on success.
//   - ok == false (with nil factors and nil error) when the matrix is
//     numerically singular — a valid outcome, not a failure.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, wrapped with opLU.
//
// Determinism: fixed i→k/j loop orders, left-to-right row updates.
// Complexity: O(n³) time, O(n²) space.
func LUDecompose[T Signed](m *Matrix[T]) (*LUFactors, bool, error) {
	if err := validateSquare(m); err != nil {
		return nil, false, matErrorf(opLU, err)
	}

	// Working float64 copy; the input is never mutated.
	n := m.dims.rows
	a := toFloat64(m)

	// Permutation with the swap counter in the last slot.
	p := make([]int, n+1)
	for i := range p {
		p[i] = i
	}

	var i, j, k, imax int
	var maxA, v, mult float64
	for i = 0; i < n; i++ {
		// Pivot search down column i; strictly-greater keeps the first maximum.
		maxA, imax = 0.0, i
		for k = i; k < n; k++ {
			if v = math.Abs(a.data[k*n+i]); v > maxA {
				maxA, imax = v, k
			}
		}

		// No usable pivot: numerically singular.
		if maxA < luPivotTol {
			return nil, false, nil
		}

		if imax != i {
			// Record the swap in the permutation and count it.
			p[i], p[imax] = p[imax], p[i]
			p[n]++
			// Apply the swap to the working matrix in place.
			ri := a.data[i*n : i*n+n]
			rx := a.data[imax*n : imax*n+n]
			for k = 0; k < n; k++ {
				ri[k], rx[k] = rx[k], ri[k]
			}
		}

		// Eliminate below the pivot, storing multipliers in L's slot.
		for j = i + 1; j < n; j++ {
			a.data[j*n+i] /= a.data[i*n+i]
			mult = a.data[j*n+i]
			for k = i + 1; k < n; k++ {
				a.data[j*n+k] -= mult * a.data[i*n+k]
			}
		}
	}

	return &LUFactors{LU: a, Perm: p}, true, nil
}

// Det computes the determinant of a square matrix via LU decomposition.
//
// Implementation:
//   - Stage 1: LUDecompose; a singular matrix has determinant 0.
//   - Stage 2: multiply the diagonal of the combined factors (that diagonal
//     belongs to U; L's diagonal is the implied unit) and negate when the swap
//     count is odd.
//
// Caution: the result is a float64 and may carry rounding error; callers that
// need an exact integer determinant must round.
//
// Errors: ErrNilMatrix, ErrNonSquare, wrapped with opDet.
// Complexity: O(n³).
func Det[T Signed](m *Matrix[T]) (float64, error) {
	f, ok, err := LUDecompose(m)
	if err != nil {
		return 0, matErrorf(opDet, err)
	}
	// Singular: determinant is the additive zero, not an error.
	if !ok {
		return 0, nil
	}

	n := f.LU.dims.rows
	det := f.LU.data[0]
	for i := 1; i < n; i++ {
		det *= f.LU.data[i*n+i]
	}
	// An odd number of row swaps flips the sign.
	if (f.Perm[n]-n)%2 != 0 {
		det = -det
	}

	return det, nil
}

// toFloat64 copies a matrix into a float64 working matrix of the same shape.
// Complexity: O(rows*cols).
func toFloat64[T Signed](m *Matrix[T]) *Matrix[float64] {
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = float64(v)
	}

	return &Matrix[float64]{dims: m.dims, data: data}
}
