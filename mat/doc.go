// SPDX-License-Identifier: MIT

// Package mat provides dense, dimension-checked linear algebra over generic
// real numeric element types.
//
// The mat package provides:
//
//   - Dimensions — an immutable, validated (rows, cols) pair shared by every
//     container in the package.
//   - Matrix[T] — a dense row-major matrix over any Number type, with
//     constructors for filled, zero, identity and diagonal matrices, flat-slice
//     ingestion, bounds-checked element and row access, and transposition.
//   - Vector[T] — a shape-tagged thin matrix (1×N row or N×1 column) with
//     reshape conversions and a dot product.
//   - Arithmetic kernels — elementwise Add/Sub/Neg/Hadamard, the plain
//     triple-loop matrix product Mul, scalar Scale/Div, and the mixed
//     matrix-vector forms MulVec/VecMul.
//   - A decomposition engine — LUDecompose with partial pivoting, Det,
//     Gauss-Jordan RREF, and two inversion strategies (Inverse, InverseLU).
//
// Every operation validates its inputs and reports precondition violations as
// returned errors matched via errors.Is; nothing in this package panics on
// user input. A numerically singular matrix is a valid outcome, not an error:
// decomposition and inversion report it through an explicit ok result and Det
// maps it to 0.
//
// All kernels run single-threaded with fixed loop orders, so floating-point
// results are reproducible across runs.
package mat
