// SPDX-License-Identifier: MIT
// Package mat: the arithmetic layer. Elementwise kernels, the matrix product,
// and scalar scaling/division. All kernels perform strict fail-fast validation
// via validators.go, allocate exactly one fresh result, never mutate their
// operands, and run fixed deterministic loop orders.

package mat

// Add computes the elementwise sum C = A + B and returns a fresh result.
//
// Implementation:
//   - Stage 1 (Validate): both operands non-nil with identical shapes.
//   - Stage 2 (Execute): single flat loop 0..rows*cols-1 over backing storage.
//
// Errors:
//   - ErrNilMatrix, *NoMatchError (ErrDimensionMismatch), both wrapped with opAdd.
//
// Complexity: O(rows*cols) time and space.
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validateSameShape(a, b, opAdd); err != nil {
		return nil, matErrorf(opAdd, err)
	}

	res := a.Clone()
	for i := range res.data { // deterministic 0..n-1
		res.data[i] += b.data[i]
	}

	return res, nil
}

// Sub computes the elementwise difference C = A - B and returns a fresh result.
//
// Implementation:
//   - Stage 1 (Validate): both operands non-nil with identical shapes.
//   - Stage 2 (Execute): single flat loop 0..rows*cols-1 over backing storage.
//
// Errors:
//   - ErrNilMatrix, *NoMatchError (ErrDimensionMismatch), both wrapped with opSub.
//
// Complexity: O(rows*cols) time and space.
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validateSameShape(a, b, opSub); err != nil {
		return nil, matErrorf(opSub, err)
	}

	res := a.Clone()
	for i := range res.data {
		res.data[i] -= b.data[i]
	}

	return res, nil
}

// Neg returns a fresh matrix with the sign of every entry flipped. Always
// succeeds for a non-nil input.
//
// Errors: ErrNilMatrix wrapped with opNeg. Complexity: O(rows*cols).
func Neg[T Signed](m *Matrix[T]) (*Matrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matErrorf(opNeg, err)
	}

	res := m.Clone()
	for i := range res.data {
		res.data[i] = -res.data[i]
	}

	return res, nil
}

// Hadamard computes the elementwise product C[i,j] = A[i,j] * B[i,j] with a
// fresh result. This is NOT the matrix product; use Mul for A×B.
//
// Errors:
//   - ErrNilMatrix, *NoMatchError (ErrDimensionMismatch), wrapped with opHadamard.
//
// Complexity: O(rows*cols) time and space.
func Hadamard[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validateSameShape(a, b, opHadamard); err != nil {
		return nil, matErrorf(opHadamard, err)
	}

	res := a.Clone()
	for i := range res.data {
		res.data[i] *= b.data[i]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B: the left operand's
// column count must equal the right operand's row count, and
// C[i,j] = Σₖ A[i,k]*B[k,j]. The plain triple loop is the reference algorithm;
// accumulation per output cell is left-to-right over k, so floating-point
// results are reproducible.
//
// Implementation:
//   - Stage 1 (Validate): operands non-nil, A.Cols == B.Rows.
//   - Stage 2 (Execute): i→k→j loops with row-major strides; zero entries of A
//     are skipped (they contribute nothing to any cell of row i).
//
// Errors:
//   - ErrNilMatrix, *NoMatchError (ErrDimensionMismatch), wrapped with opMul.
//
// Complexity: O(aRows*aCols*bCols) time, O(aRows*bCols) space.
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validateMulCompatible(a, b, opMul); err != nil {
		return nil, matErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.dims.rows, a.dims.cols, b.dims.cols
	res := &Matrix[T]{
		dims: Dimensions{rows: aRows, cols: bCols},
		data: make([]T, aRows*bCols),
	}

	// Row-major multiplication over the flat slices:
	// a.data layout i*aCols+k, b.data layout k*bCols+j.
	var i, j, k int
	var av T
	var rowOffsetA, rowOffsetB, rowOffsetR int
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == T(0) {
				continue // zero rows of the k-panel contribute nothing
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Scale returns a fresh matrix whose entries are m[i,j] * scalar.
//
// Errors: ErrNilMatrix wrapped with opScale. Complexity: O(rows*cols).
func Scale[T Number](m *Matrix[T], scalar T) (*Matrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matErrorf(opScale, err)
	}

	res := m.Clone()
	for i := range res.data {
		res.data[i] *= scalar
	}

	return res, nil
}

// Div returns a fresh matrix whose entries are m[i,j] / scalar. Division by
// the additive zero of T is rejected explicitly — also for floating-point
// element types, so a zero divisor can never silently produce ±Inf or NaN.
//
// Errors:
//   - ErrNilMatrix, ErrZeroDivisor, wrapped with opDiv.
//
// Complexity: O(rows*cols).
func Div[T Number](m *Matrix[T], scalar T) (*Matrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matErrorf(opDiv, err)
	}
	// Guard the zero divisor before touching any entry.
	if scalar == T(0) {
		return nil, matErrorf(opDiv, ErrZeroDivisor)
	}

	res := m.Clone()
	for i := range res.data {
		res.data[i] /= scalar
	}

	return res, nil
}
