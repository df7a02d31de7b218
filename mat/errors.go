// SPDX-License-Identifier: MIT
// Package mat: sentinel error set and structured error payloads.
// This file defines the package-level sentinel errors used across the mat
// package, plus the typed errors that carry operand details (dimensions,
// lengths, indices). All operations MUST return these values and callers MUST
// match them via errors.Is / errors.As. No operation panics on user input.

package mat

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mat: ..." for consistency and to allow easy
// grepping across logs. The typed errors below wrap their sentinel via
// Unwrap(), so errors.Is(err, ErrDimensionMismatch) matches a *NoMatchError
// and errors.As recovers the payload when context is needed.

var (
	// ErrInvalidDimensions is returned when a requested shape has a zero side
	// (rows < 1 or cols < 1). Construction must validate before allocation.
	ErrInvalidDimensions = errors.New("mat: dimensions must be > 0")

	// ErrInvalidInputDimensions indicates that supplied flat data does not
	// match the requested shape (len != rows*cols, or a diagonal slice whose
	// length differs from the requested dimension). Carried by *InputLengthError.
	ErrInvalidInputDimensions = errors.New("mat: input length does not match dimensions")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	// Carried by *NoMatchError together with both shapes and the operation name.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (LU decomposition,
	// determinant, inversion) but the input wasn't.
	ErrNonSquare = errors.New("mat: matrix is not square")

	// ErrIndexOutOfBounds indicates that a row or element index is outside the
	// valid range. Public indexers (At/Set/Row) MUST return this, not panic.
	// Carried by *IndexError together with the offending index.
	ErrIndexOutOfBounds = errors.New("mat: index out of bounds")

	// ErrZeroDivisor is returned by scalar division when the divisor equals the
	// additive zero of the element type. Detected locally so that float inputs
	// never silently produce ±Inf or NaN.
	ErrZeroDivisor = errors.New("mat: division by zero scalar")

	// ErrNilMatrix indicates that a nil matrix or vector was passed where a
	// value is required.
	ErrNilMatrix = errors.New("mat: nil matrix")
)

// Operation name constants for unified error reporting and reducing magic
// strings. NoMatchError.Op always holds one of these.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opNeg      = "Neg"
	opMul      = "Mul"
	opHadamard = "Hadamard"
	opScale    = "Scale"
	opDiv      = "Div"
	opDot      = "Dot"
	opMulVec   = "MulVec"
	opVecMul   = "VecMul"
	opToVector = "ToVector"
	opLU       = "LUDecompose"
	opDet      = "Det"
	opInverse  = "Inverse"
	opInvLU    = "InverseLU"
	opRREF     = "RREF"
)

// matErrorf wraps err with an operation tag, preserving the original error via
// %w. Keeps a stable "Op: underlying" shape for uniform reporting across the
// package. Use only when err != nil.
func matErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NoMatchError reports two operands whose dimensions are incompatible for the
// named operation. It unwraps to ErrDimensionMismatch.
type NoMatchError struct {
	A, B Dimensions // shapes of the left and right operand
	Op   string     // operation that detected the mismatch
}

// Error renders the mismatch with both shapes and the operation name.
func (e *NoMatchError) Error() string {
	return fmt.Sprintf("mat: dimensions do not match: cannot %s %s matrix with %s matrix", e.Op, e.A, e.B)
}

// Unwrap makes errors.Is(err, ErrDimensionMismatch) hold for *NoMatchError.
func (e *NoMatchError) Unwrap() error { return ErrDimensionMismatch }

// InputLengthError reports flat input whose length does not match the
// requested shape. It unwraps to ErrInvalidInputDimensions.
type InputLengthError struct {
	Actual   int // length of the supplied slice
	Expected int // rows*cols (or dim for a diagonal slice)
}

// Error renders both the supplied and the required length.
func (e *InputLengthError) Error() string {
	return fmt.Sprintf("mat: invalid input dimensions: input has length %d, but should have length %d", e.Actual, e.Expected)
}

// Unwrap makes errors.Is(err, ErrInvalidInputDimensions) hold.
func (e *InputLengthError) Unwrap() error { return ErrInvalidInputDimensions }

// IndexError reports an access beyond the container bounds. It unwraps to
// ErrIndexOutOfBounds.
type IndexError struct {
	Index int // the offending index
}

// Error renders the offending index.
func (e *IndexError) Error() string {
	return fmt.Sprintf("mat: index %d is out of bounds", e.Index)
}

// Unwrap makes errors.Is(err, ErrIndexOutOfBounds) hold.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }
