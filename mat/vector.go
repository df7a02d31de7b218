// Package mat: Vector[T] is a thin specialization of a one-dimensional matrix.
// Its Dimensions tag marks it as row-shaped (1×N) or column-shaped (N×1); the
// ToRow/ToCol conversions re-tag a copy with the same entries — a reshape, not
// a mathematical transpose.

package mat

import "fmt"

// Vector is a shape-tagged dense vector of T values.
type Vector[T Number] struct {
	dims    Dimensions // 1×N (row) or N×1 (column)
	entries []T        // backing storage, length == max(rows, cols)
}

// NewVector creates a column-shaped vector of the given size with every entry
// set to init.
// Errors: ErrInvalidDimensions when size < 1. Complexity: O(size).
func NewVector[T Number](size int, init T) (*Vector[T], error) {
	dims, err := NewDimensions(size, 1)
	if err != nil {
		return nil, err
	}

	entries := make([]T, size)
	if init != T(0) {
		for i := range entries {
			entries[i] = init
		}
	}

	return &Vector[T]{dims: dims, entries: entries}, nil
}

// VectorOf creates a column-shaped vector from the given entries. The slice is
// copied.
// Errors: ErrInvalidDimensions when len(entries) == 0. Complexity: O(len).
func VectorOf[T Number](entries []T) (*Vector[T], error) {
	dims, err := NewDimensions(len(entries), 1)
	if err != nil {
		return nil, err
	}

	data := make([]T, len(entries))
	copy(data, entries)

	return &Vector[T]{dims: dims, entries: data}, nil
}

// Len returns the number of entries. Complexity: O(1).
func (v *Vector[T]) Len() int { return len(v.entries) }

// Dims returns the shape tag (1×N or N×1). Complexity: O(1).
func (v *Vector[T]) Dims() Dimensions { return v.dims }

// IsRow reports whether the vector is row-shaped (1×N). Complexity: O(1).
func (v *Vector[T]) IsRow() bool { return v.dims.rows == 1 }

// IsColumn reports whether the vector is column-shaped (N×1). Complexity: O(1).
func (v *Vector[T]) IsColumn() bool { return v.dims.cols == 1 }

// ToRow returns a row-shaped (1×N) copy with the same entries. This re-tags
// the shape only; entry order is unchanged.
// Complexity: O(n).
func (v *Vector[T]) ToRow() *Vector[T] {
	c := v.Clone()
	c.dims = Dimensions{rows: 1, cols: len(v.entries)}

	return c
}

// ToCol returns a column-shaped (N×1) copy with the same entries. This re-tags
// the shape only; entry order is unchanged.
// Complexity: O(n).
func (v *Vector[T]) ToCol() *Vector[T] {
	c := v.Clone()
	c.dims = Dimensions{rows: len(v.entries), cols: 1}

	return c
}

// At retrieves entry i.
// Errors: *IndexError (ErrIndexOutOfBounds). Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.entries) {
		var zero T
		return zero, fmt.Errorf("Vector.At(%d): %w", i, &IndexError{Index: i})
	}

	return v.entries[i], nil
}

// Set assigns entry i in place.
// Errors: *IndexError (ErrIndexOutOfBounds). Complexity: O(1).
func (v *Vector[T]) Set(i int, val T) error {
	if i < 0 || i >= len(v.entries) {
		return fmt.Errorf("Vector.Set(%d): %w", i, &IndexError{Index: i})
	}
	v.entries[i] = val

	return nil
}

// Clone returns a deep copy; the copy owns fresh storage. Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	entries := make([]T, len(v.entries))
	copy(entries, v.entries)

	return &Vector[T]{dims: v.dims, entries: entries}
}

// Equal reports whether o has the same shape tag and identical entries.
// Complexity: O(n).
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if o == nil || v.dims != o.dims {
		return false
	}
	for i := range v.entries {
		if v.entries[i] != o.entries[i] {
			return false
		}
	}

	return true
}

// AsMatrix materializes the vector as a 1×N or N×1 matrix (per its shape tag)
// with copied storage, ready for the matrix product.
// Complexity: O(n).
func (v *Vector[T]) AsMatrix() *Matrix[T] {
	data := make([]T, len(v.entries))
	copy(data, v.entries)

	return &Matrix[T]{dims: v.dims, data: data}
}

// VectorFromMatrix converts a matrix into a vector. One of the matrix's two
// dimensions must equal 1; the resulting vector keeps the matrix's shape tag.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (neither dimension is 1),
//     wrapped with opToVector.
//
// Complexity: O(n).
func VectorFromMatrix[T Number](m *Matrix[T]) (*Vector[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matErrorf(opToVector, err)
	}
	if m.dims.rows != 1 && m.dims.cols != 1 {
		return nil, matErrorf(opToVector, ErrDimensionMismatch)
	}

	entries := make([]T, len(m.data))
	copy(entries, m.data)

	return &Vector[T]{dims: m.dims, entries: entries}, nil
}

// String renders the vector like its matrix form: tab-separated entries for a
// row vector, newline-separated entries for a column vector.
func (v *Vector[T]) String() string {
	return v.AsMatrix().String()
}
