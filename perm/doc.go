// SPDX-License-Identifier: MIT

// Package perm implements finite permutations over the index domain
// {0, …, degree-1}, the algebra every other hypercell package is built on.
//
// What
//
//   - Permutation is an immutable value: a bijection stored as its image array.
//   - Identity, Inverse, Product, Exp and Apply are the primitive operations;
//     Compose chains several products left to right.
//   - Permutations encode to JSON as plain index arrays.
//
// Composition convention
//
//	a.Product(b) yields c with c(i) = b(a(i)): apply a first, then b.
//	a.Inverse() yields b with b(a(i)) = i.
//	a.Exp(n) applies a to every index n times, starting from the identity.
//
// Errors
//
//   - ErrDegreeMismatch    two operands disagree on their domain size.
//   - ErrIndexOutOfRange   an index outside [0, degree) was used.
//   - ErrNotBijection      a mapping repeats or skips an index.
//   - ErrNegativeExponent  Exp was called with n < 0.
//
// The degree and index sentinels are shared by piece, twist, orbit and puzzle,
// so callers can branch with errors.Is regardless of which layer failed.
//
// Complexity
//
//	Every operation is O(degree) time and allocates at most one new mapping.
//	Exp is O(degree·n).
package perm
