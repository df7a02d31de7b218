// SPDX-License-Identifier: MIT
// Package mat: vector arithmetic and the mixed matrix-vector products. Shapes
// and lengths are validated fail-fast; operands are never mutated; loop orders
// are fixed, so floating-point accumulation is reproducible.

package mat

// VecAdd computes the elementwise sum of two vectors of equal length. The
// result carries the left operand's shape tag.
//
// Errors:
//   - ErrNilMatrix, *NoMatchError (ErrDimensionMismatch), wrapped with opAdd.
//
// Complexity: O(n).
func VecAdd[T Number](a, b *Vector[T]) (*Vector[T], error) {
	if err := validateSameLen(a, b, opAdd); err != nil {
		return nil, matErrorf(opAdd, err)
	}

	res := a.Clone()
	for i := range res.entries {
		res.entries[i] += b.entries[i]
	}

	return res, nil
}

// VecSub computes the elementwise difference of two vectors of equal length.
// The result carries the left operand's shape tag.
//
// Errors:
//   - ErrNilMatrix, *NoMatchError (ErrDimensionMismatch), wrapped with opSub.
//
// Complexity: O(n).
func VecSub[T Number](a, b *Vector[T]) (*Vector[T], error) {
	if err := validateSameLen(a, b, opSub); err != nil {
		return nil, matErrorf(opSub, err)
	}

	res := a.Clone()
	for i := range res.entries {
		res.entries[i] -= b.entries[i]
	}

	return res, nil
}

// VecNeg returns a fresh vector with the sign of every entry flipped.
// Errors: ErrNilMatrix wrapped with opNeg. Complexity: O(n).
func VecNeg[T Signed](v *Vector[T]) (*Vector[T], error) {
	if err := validateVecNotNil(v); err != nil {
		return nil, matErrorf(opNeg, err)
	}

	res := v.Clone()
	for i := range res.entries {
		res.entries[i] = -res.entries[i]
	}

	return res, nil
}

// Dot computes the dot product Σ a[i]*b[i] of two vectors of equal length.
// The result is a scalar, not a vector; accumulation is left-to-right.
//
// Errors:
//   - ErrNilMatrix, *NoMatchError (ErrDimensionMismatch), wrapped with opDot.
//
// Complexity: O(n).
func Dot[T Number](a, b *Vector[T]) (T, error) {
	var sum T
	if err := validateSameLen(a, b, opDot); err != nil {
		return sum, matErrorf(opDot, err)
	}

	for i := range a.entries {
		sum += a.entries[i] * b.entries[i]
	}

	return sum, nil
}

// VecScale returns a fresh vector whose entries are v[i] * scalar.
// Errors: ErrNilMatrix wrapped with opScale. Complexity: O(n).
func VecScale[T Number](v *Vector[T], scalar T) (*Vector[T], error) {
	if err := validateVecNotNil(v); err != nil {
		return nil, matErrorf(opScale, err)
	}

	res := v.Clone()
	for i := range res.entries {
		res.entries[i] *= scalar
	}

	return res, nil
}

// VecDiv returns a fresh vector whose entries are v[i] / scalar. Division by
// the additive zero of T is rejected explicitly, also for floating-point
// element types.
//
// Errors: ErrNilMatrix, ErrZeroDivisor, wrapped with opDiv. Complexity: O(n).
func VecDiv[T Number](v *Vector[T], scalar T) (*Vector[T], error) {
	if err := validateVecNotNil(v); err != nil {
		return nil, matErrorf(opDiv, err)
	}
	if scalar == T(0) {
		return nil, matErrorf(opDiv, ErrZeroDivisor)
	}

	res := v.Clone()
	for i := range res.entries {
		res.entries[i] /= scalar
	}

	return res, nil
}

// MulVec computes the product m × v. The vector is treated as a 1×N or N×1
// matrix per its current shape tag, multiplied under ordinary matrix-product
// rules, and the result is reshaped back into a vector.
//
// Errors:
//   - ErrNilMatrix.
//   - *NoMatchError (ErrDimensionMismatch) when m.Cols != v rows.
//   - ErrDimensionMismatch when the product is not vector-shaped.
//     All wrapped with opMulVec.
//
// Complexity: O(m.Rows * m.Cols * v.Cols).
func MulVec[T Number](m *Matrix[T], v *Vector[T]) (*Vector[T], error) {
	if err := validateVecNotNil(v); err != nil {
		return nil, matErrorf(opMulVec, err)
	}

	prod, err := Mul(m, v.AsMatrix())
	if err != nil {
		return nil, matErrorf(opMulVec, err)
	}

	res, err := VectorFromMatrix(prod)
	if err != nil {
		return nil, matErrorf(opMulVec, err)
	}

	return res, nil
}

// VecMul computes the product v × m. The vector is treated as a 1×N or N×1
// matrix per its current shape tag, multiplied under ordinary matrix-product
// rules, and the result is reshaped back into a vector.
//
// Errors:
//   - ErrNilMatrix.
//   - *NoMatchError (ErrDimensionMismatch) when v cols != m.Rows.
//   - ErrDimensionMismatch when the product is not vector-shaped.
//     All wrapped with opVecMul.
//
// Complexity: O(v.Rows * v.Cols * m.Cols).
func VecMul[T Number](v *Vector[T], m *Matrix[T]) (*Vector[T], error) {
	if err := validateVecNotNil(v); err != nil {
		return nil, matErrorf(opVecMul, err)
	}

	prod, err := Mul(v.AsMatrix(), m)
	if err != nil {
		return nil, matErrorf(opVecMul, err)
	}

	res, err := VectorFromMatrix(prod)
	if err != nil {
		return nil, matErrorf(opVecMul, err)
	}

	return res, nil
}
