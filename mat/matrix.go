// Package mat: Matrix[T] is a dense, row-major container over a generic real
// numeric element type. It owns its flat backing storage exclusively; entry
// (i, j) lives at data[i*cols+j] and len(data) == rows*cols is enforced at
// every construction path.

package mat

import (
	"fmt"
	"strings"
)

// Matrix is a dense row-major matrix of T values.
type Matrix[T Number] struct {
	dims Dimensions // validated shape, immutable after construction
	data []T        // flat backing storage, length == rows*cols
}

// New creates a rows×cols matrix with every entry set to init.
//
// Implementation:
//   - Stage 1 (Validate): shape via NewDimensions.
//   - Stage 2 (Prepare): allocate flat backing slice and fill with init.
//
// Errors:
//   - ErrInvalidDimensions when rows < 1 or cols < 1.
//
// Complexity: O(rows*cols) time and memory.
func New[T Number](rows, cols int, init T) (*Matrix[T], error) {
	// Validate dimensions once; all other constructors funnel through here.
	dims, err := NewDimensions(rows, cols)
	if err != nil {
		return nil, err
	}

	// Allocate and fill the flat slice.
	data := make([]T, rows*cols)
	if init != T(0) {
		for i := range data {
			data[i] = init
		}
	}

	return &Matrix[T]{dims: dims, data: data}, nil
}

// FromSlice creates a rows×cols matrix from a flat row-major slice, where
// values[i*cols+j] becomes the entry in row i and column j. The slice is
// copied; the matrix never aliases caller memory.
//
// Errors:
//   - ErrInvalidDimensions when rows < 1 or cols < 1.
//   - *InputLengthError (ErrInvalidInputDimensions) when len(values) != rows*cols.
//
// Complexity: O(rows*cols).
func FromSlice[T Number](rows, cols int, values []T) (*Matrix[T], error) {
	dims, err := NewDimensions(rows, cols)
	if err != nil {
		return nil, err
	}
	// The flat input must cover the shape exactly.
	if len(values) != rows*cols {
		return nil, &InputLengthError{Actual: len(values), Expected: rows * cols}
	}

	// Copy into owned storage.
	data := make([]T, len(values))
	copy(data, values)

	return &Matrix[T]{dims: dims, data: data}, nil
}

// Zero creates a rows×cols matrix filled with the additive identity T(0).
// Errors: ErrInvalidDimensions. Complexity: O(rows*cols).
func Zero[T Number](rows, cols int) (*Matrix[T], error) {
	var zero T
	return New(rows, cols, zero)
}

// Identity creates the dim×dim identity matrix: T(1) on the diagonal, T(0)
// elsewhere.
// Errors: ErrInvalidDimensions. Complexity: O(dim²).
func Identity[T Number](dim int) (*Matrix[T], error) {
	return Diag(dim, T(1))
}

// Diag creates a dim×dim matrix with init on every diagonal entry and T(0)
// elsewhere (a scalar multiple of the identity).
// Errors: ErrInvalidDimensions. Complexity: O(dim²).
func Diag[T Number](dim int, init T) (*Matrix[T], error) {
	res, err := Zero[T](dim, dim)
	if err != nil {
		return nil, err
	}
	// Walk the diagonal with a fixed stride over the flat storage.
	for i := 0; i < dim; i++ {
		res.data[i*dim+i] = init
	}

	return res, nil
}

// DiagFrom creates a dim×dim matrix whose diagonal is the given slice and
// whose off-diagonal entries are T(0).
//
// Errors:
//   - ErrInvalidDimensions when dim < 1.
//   - *InputLengthError (ErrInvalidInputDimensions) when len(entries) != dim.
//
// Complexity: O(dim²).
func DiagFrom[T Number](dim int, entries []T) (*Matrix[T], error) {
	res, err := Zero[T](dim, dim)
	if err != nil {
		return nil, err
	}
	// The diagonal slice must match the requested dimension exactly.
	if len(entries) != dim {
		return nil, &InputLengthError{Actual: len(entries), Expected: dim}
	}
	for i := 0; i < dim; i++ {
		res.data[i*dim+i] = entries[i]
	}

	return res, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.dims.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.dims.cols }

// Dims returns the matrix shape. Complexity: O(1).
func (m *Matrix[T]) Dims() Dimensions { return m.dims }

// IsSquare reports whether the matrix is square. Complexity: O(1).
func (m *Matrix[T]) IsSquare() bool { return m.dims.IsSquare() }

// indexOf computes the flat index for (row, col) or reports the offending
// index. Complexity: O(1).
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.dims.rows {
		return 0, &IndexError{Index: row}
	}
	// Validate column index.
	if col < 0 || col >= m.dims.cols {
		return 0, &IndexError{Index: col}
	}

	return row*m.dims.cols + col, nil
}

// At retrieves the entry at (row, col).
// Errors: *IndexError (ErrIndexOutOfBounds). Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col), mutating the backing storage in place.
// Errors: *IndexError (ErrIndexOutOfBounds). Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return fmt.Errorf("Matrix.Set(%d,%d): %w", row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Row returns the contiguous backing slice of row i: a view of length Cols()
// into the matrix's own storage, no allocation. Writing through the returned
// slice mutates the matrix. The capacity is clipped so the view cannot grow
// into the next row.
//
// Errors: *IndexError (ErrIndexOutOfBounds) when i is outside [0, Rows()).
// Complexity: O(1).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.dims.rows {
		return nil, fmt.Errorf("Matrix.Row(%d): %w", i, &IndexError{Index: i})
	}
	start := i * m.dims.cols

	return m.data[start : start+m.dims.cols : start+m.dims.cols], nil
}

// Clone returns a deep copy; the copy owns fresh storage.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Matrix[T]{dims: m.dims, data: data}
}

// Equal reports whether o has the same shape and identical entries.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if o == nil || m.dims != o.dims {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Transpose returns a new matrix with rows and columns swapped: entry (j, i)
// of the result equals entry (i, j) of the receiver. Always succeeds for a
// valid matrix; the receiver is never mutated.
//
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	rows, cols := m.dims.rows, m.dims.cols
	res := &Matrix[T]{
		dims: Dimensions{rows: cols, cols: rows},
		data: make([]T, len(m.data)),
	}

	// data[i*cols+j] → res.data[j*rows+i], fixed i→j order.
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[base+j]
		}
	}

	return res
}

// String renders the matrix for human debugging: columns separated by tabs,
// rows terminated by newlines except the final row. Not a parseable format.
// Complexity: O(rows*cols).
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.dims.rows; i++ {
		for j = 0; j < m.dims.cols; j++ {
			fmt.Fprintf(&sb, "%v", m.data[i*m.dims.cols+j])
			if j < m.dims.cols-1 {
				sb.WriteByte('\t')
			}
		}
		if i < m.dims.rows-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
