// SPDX-License-Identifier: MIT

package mat

// RREF computes the reduced row echelon form of a matrix via Gauss-Jordan
// elimination on a float64 working copy. The input is never mutated.
//
// Implementation:
//   - Stage 1 (Validate): input non-nil; copy into float64.
//   - Stage 2 (Reduce): rrefInPlace (see below).
//
// Errors: ErrNilMatrix wrapped with opRREF.
// Complexity: O(rows²·cols) time, O(rows*cols) space.
func RREF[T Signed](m *Matrix[T]) (*Matrix[float64], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matErrorf(opRREF, err)
	}

	w := toFloat64(m)
	rrefInPlace(w)

	return w, nil
}

// rrefInPlace reduces a float64 matrix to reduced row echelon form in place.
//
// The pivot cursor starts at (0, 0) and walks column-by-column:
//  1. If the pivot candidate a[row][col] is zero, search downward for a
//     nonzero entry in the column and swap it into place; if the whole
//     sub-column is zero, advance col only and retry.
//  2. Normalize the pivot row so the pivot entry becomes exactly 1.
//  3. Eliminate the pivot column from every other row by subtracting the
//     appropriate multiple of the pivot row.
//  4. Advance both row and col; stop when either runs off the matrix.
//
// Deterministic: fixed downward pivot search and fixed row elimination order.
// Complexity: O(rows²·cols).
func rrefInPlace(a *Matrix[float64]) {
	rows, cols := a.dims.rows, a.dims.cols

	var r, j, sw int
	var pivot, factor float64
	row, col := 0, 0
	for row < rows && col < cols {
		// Locate a usable pivot in the current column.
		if a.data[row*cols+col] == 0 {
			sw = -1
			for r = row + 1; r < rows; r++ {
				if a.data[r*cols+col] != 0 {
					sw = r
					break
				}
			}
			if sw < 0 {
				// Column has no pivot below the cursor: move right, same row.
				col++
				continue
			}
			// Swap the found row up into pivot position.
			ra := a.data[row*cols : row*cols+cols]
			rb := a.data[sw*cols : sw*cols+cols]
			for j = 0; j < cols; j++ {
				ra[j], rb[j] = rb[j], ra[j]
			}
		}

		// Normalize the pivot row; the pivot entry becomes exactly 1.
		pivot = a.data[row*cols+col]
		for j = 0; j < cols; j++ {
			a.data[row*cols+j] /= pivot
		}

		// Eliminate the pivot column from every other row.
		for r = 0; r < rows; r++ {
			if r == row {
				continue
			}
			factor = a.data[r*cols+col]
			if factor == 0 {
				continue
			}
			for j = 0; j < cols; j++ {
				a.data[r*cols+j] -= factor * a.data[row*cols+j]
			}
		}

		row++
		col++
	}
}
