// SPDX-License-Identifier: MIT
// Package mat: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for the guard logic shared by the
//     arithmetic kernels and the decomposition engine.
//   - Return the structured errors of errors.go so call sites can wrap them
//     uniformly with an operation tag (matErrorf).
//
// All checks are pure, deterministic and allocate nothing on the success path.

package mat

// validateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix otherwise. Complexity: O(1).
func validateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameShape ensures a and b are non-nil and have identical dimensions,
// reporting both shapes and the operation name on mismatch.
// Errors: ErrNilMatrix, *NoMatchError (ErrDimensionMismatch). Complexity: O(1).
func validateSameShape[T Number](a, b *Matrix[T], op string) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.dims != b.dims {
		return &NoMatchError{A: a.dims, B: b.dims, Op: op}
	}

	return nil
}

// validateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows,
// reporting both shapes and the operation name on mismatch.
// Errors: ErrNilMatrix, *NoMatchError (ErrDimensionMismatch). Complexity: O(1).
func validateMulCompatible[T Number](a, b *Matrix[T], op string) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.dims.cols != b.dims.rows {
		return &NoMatchError{A: a.dims, B: b.dims, Op: op}
	}

	return nil
}

// validateSquare ensures m is non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func validateSquare[T Number](m *Matrix[T]) error {
	if err := validateNotNil(m); err != nil {
		return err
	}
	if !m.dims.IsSquare() {
		return ErrNonSquare
	}

	return nil
}

// validateVecNotNil ensures the vector reference is non-nil.
// Returns ErrNilMatrix otherwise. Complexity: O(1).
func validateVecNotNil[T Number](v *Vector[T]) error {
	if v == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameLen ensures vectors a and b are non-nil and have equal length,
// reporting both shape tags and the operation name on mismatch.
// Errors: ErrNilMatrix, *NoMatchError (ErrDimensionMismatch). Complexity: O(1).
func validateSameLen[T Number](a, b *Vector[T], op string) error {
	if err := validateVecNotNil(a); err != nil {
		return err
	}
	if err := validateVecNotNil(b); err != nil {
		return err
	}
	if len(a.entries) != len(b.entries) {
		return &NoMatchError{A: a.dims, B: b.dims, Op: op}
	}

	return nil
}
