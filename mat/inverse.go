// SPDX-License-Identifier: MIT
// Package mat: matrix inversion. Two strategies are provided: Inverse runs
// Gauss-Jordan elimination on an augmented [A | I] block (the canonical path),
// and InverseLU solves the unit columns against the LU factors. Both report a
// singular input through ok == false rather than an error, and both compute in
// float64 regardless of the element type.

package mat

// Inverse computes A⁻¹ by Gauss-Jordan elimination.
//
// Implementation:
//   - Stage 1 (Validate): input non-nil and square.
//   - Stage 2 (Augment): build the n×2n block [A | I] in float64.
//   - Stage 3 (Reduce): bring the block to reduced row echelon form.
//   - Stage 4 (Check): the left half must equal the identity — pivot rows are
//     normalized by exact division and pivot columns eliminated exactly, so
//     the comparison needs no tolerance. Anything else means A is singular.
//   - Stage 5 (Extract): the right half is A⁻¹.
//
// Returns:
//   - *Matrix[float64] and ok == true when A is invertible.
//   - ok == false (nil matrix, nil error) when A is singular.
//
// Errors: ErrNilMatrix, ErrNonSquare, wrapped with opInverse.
// Complexity: O(n³) time, O(n²) space.
func Inverse[T Signed](m *Matrix[T]) (*Matrix[float64], bool, error) {
	if err := validateSquare(m); err != nil {
		return nil, false, matErrorf(opInverse, err)
	}

	// Build the augmented block [A | I].
	n := m.dims.rows
	width := 2 * n
	aug := &Matrix[float64]{
		dims: Dimensions{rows: n, cols: width},
		data: make([]float64, n*width),
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			aug.data[i*width+j] = float64(m.data[i*n+j])
		}
		aug.data[i*width+n+i] = 1
	}

	rrefInPlace(aug)

	// The left half must have reduced to the identity.
	var want float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if aug.data[i*width+j] != want {
				return nil, false, nil
			}
		}
	}

	// Extract the right half.
	inv := &Matrix[float64]{
		dims: Dimensions{rows: n, cols: n},
		data: make([]float64, n*n),
	}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:i*n+n], aug.data[i*width+n:i*width+width])
	}

	return inv, true, nil
}

// InverseLU computes A⁻¹ from the LU factors by solving L·U·x = e for each of
// the n permuted unit columns.
//
// Implementation:
//   - Stage 1: LUDecompose (validation and singularity detection live there).
//   - Stage 2 (Forward): for column j, seed x[i] = 1 when Perm[i] == j else 0,
//     then subtract Σ_{k<i} L[i][k]·x[k] top-down.
//   - Stage 3 (Backward): from the last row up, subtract Σ_{k>i} U[i][k]·x[k]
//     and divide by U[i][i].
//
// The permutation is fully absorbed by the seeded unit columns; no
// post-processing of the result is needed or performed.
//
// Returns:
//   - *Matrix[float64] and ok == true when A is invertible.
//   - ok == false (nil matrix, nil error) when A is singular.
//
// Errors: ErrNilMatrix, ErrNonSquare, wrapped with opInvLU.
// Complexity: O(n³) time, O(n²) space.
func InverseLU[T Signed](m *Matrix[T]) (*Matrix[float64], bool, error) {
	f, ok, err := LUDecompose(m)
	if err != nil {
		return nil, false, matErrorf(opInvLU, err)
	}
	if !ok {
		return nil, false, nil
	}

	n := f.LU.dims.rows
	lu := f.LU.data
	inv := &Matrix[float64]{
		dims: Dimensions{rows: n, cols: n},
		data: make([]float64, n*n),
	}

	var i, j, k int
	for j = 0; j < n; j++ {
		// Forward substitution against L (unit diagonal implied).
		for i = 0; i < n; i++ {
			if f.Perm[i] == j {
				inv.data[i*n+j] = 1
			} else {
				inv.data[i*n+j] = 0
			}
			for k = 0; k < i; k++ {
				inv.data[i*n+j] -= lu[i*n+k] * inv.data[k*n+j]
			}
		}
		// Backward substitution against U.
		for i = n - 1; i >= 0; i-- {
			for k = i + 1; k < n; k++ {
				inv.data[i*n+j] -= lu[i*n+k] * inv.data[k*n+j]
			}
			inv.data[i*n+j] /= lu[i*n+i]
		}
	}

	return inv, true, nil
}
