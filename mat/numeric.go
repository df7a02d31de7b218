// SPDX-License-Identifier: MIT
// Package mat: numeric capability constraints.
// Operations declare exactly the capability set they need: containers and the
// elementwise/product kernels require only Number, while negation and the
// decomposition engine (absolute value, sign, float64 working copies) require
// Signed. Nothing in the package demands one monolithic numeric interface.

package mat

// Signed is the set of real numeric kinds with a meaningful sign: negation
// and absolute value are well defined, and values convert exactly enough to
// float64 for the decomposition engine.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Unsigned is the set of unsigned integer kinds. They participate in
// construction and arithmetic but not in sign-dependent operations.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is the full constraint for Matrix and Vector element types: ordered,
// with +, -, *, / and the identities T(0) and T(1).
type Number interface {
	Signed | Unsigned
}
