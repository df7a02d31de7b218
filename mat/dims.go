// SPDX-License-Identifier: MIT

package mat

import "fmt"

// Dimensions is an immutable, validated (rows, cols) pair. Both sides are
// always ≥ 1; the zero value is invalid and only NewDimensions /
// SquareDimensions produce usable values. Equality is structural (==).
type Dimensions struct {
	rows, cols int
}

// NewDimensions builds a Dimensions value.
//
// Implementation:
//   - Stage 1 (Validate): reject rows < 1 or cols < 1 with ErrInvalidDimensions.
//   - Stage 2 (Finalize): return the immutable pair.
//
// Complexity: O(1).
func NewDimensions(rows, cols int) (Dimensions, error) {
	// Validate both sides before constructing anything.
	if rows < 1 || cols < 1 {
		return Dimensions{}, ErrInvalidDimensions
	}

	return Dimensions{rows: rows, cols: cols}, nil
}

// SquareDimensions builds a dim×dim Dimensions value.
// Errors: ErrInvalidDimensions when dim < 1. Complexity: O(1).
func SquareDimensions(dim int) (Dimensions, error) {
	return NewDimensions(dim, dim)
}

// Rows returns the row count. Complexity: O(1).
func (d Dimensions) Rows() int { return d.rows }

// Cols returns the column count. Complexity: O(1).
func (d Dimensions) Cols() int { return d.cols }

// IsSquare reports whether rows == cols. Complexity: O(1).
func (d Dimensions) IsSquare() bool { return d.rows == d.cols }

// String renders the pair as "RxC", e.g. "3x4".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.rows, d.cols)
}
