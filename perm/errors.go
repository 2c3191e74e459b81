// SPDX-License-Identifier: MIT

package perm

import "errors"

// ErrDegreeMismatch indicates that two permutations, or a permutation and a
// piece or puzzle, disagree on the size of their domain. It is always a
// configuration error and is never recovered from locally.
var ErrDegreeMismatch = errors.New("perm: degree mismatch")

// ErrIndexOutOfRange indicates that an index outside [0, degree) was used.
// Indices are never wrapped or clamped.
var ErrIndexOutOfRange = errors.New("perm: index out of range")

// ErrNotBijection indicates that a mapping does not hit every index of
// [0, len(mapping)) exactly once.
var ErrNotBijection = errors.New("perm: mapping is not a bijection")

// ErrNegativeExponent is returned by Exp for n < 0.
var ErrNegativeExponent = errors.New("perm: negative exponent")
