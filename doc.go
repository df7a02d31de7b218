// Package libmat is a small dense linear-algebra core: generic Matrix and
// Vector containers with dimension-checked arithmetic, transposition, LU
// decomposition, determinants and matrix inversion.
//
// 🚀 What is libmat?
//
//	A compact, dependency-light library that brings together:
//		• Generic containers: Matrix[T] and Vector[T] over any real numeric type
//		• Constructors: filled, zero, identity, diagonal, from flat slices
//		• Arithmetic: elementwise add/sub/negate, matrix product, scalar scale/divide
//		• Decomposition: LU with partial pivoting, determinant from LU
//		• Inversion: Gauss-Jordan (canonical) and LU back-substitution
//		• RREF: reduced row echelon form via Gauss-Jordan elimination
//
// ✨ Why choose libmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Recoverable by design – every precondition violation is a returned error,
//     never a panic; singular matrices are a result, not a failure
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, reproducible floating-point results
//
// Everything lives in one subpackage:
//
//	mat/ — Dimensions, Matrix[T], Vector[T], arithmetic kernels and the
//	       decomposition/inversion engine
//
// Quick example:
//
//	a, _ := mat.FromSlice(3, 3, []int{1, 2, 3, 3, 2, 1, 2, 1, 3})
//	d, _ := mat.Det(a) // -12
//
// Dive into the mat package docs for the full API.
//
//	go get github.com/wiebecommajonas/libmat/mat
package libmat
