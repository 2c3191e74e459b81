// SPDX-License-Identifier: MIT

// Package puzzle is the state engine of a permutation puzzle: it owns the live
// piece collection, applies twists, keeps an undo history, scrambles and
// tracks whether the puzzle is solved.
//
// What
//
//   - Generate closes configuration base pieces under generators (package
//     orbit) and wraps the result in a solved State.
//   - Twist rotates every piece touching the twist's grip. It is the only
//     primitive mutator of the pieces and does not touch the history.
//   - TwistMove is Twist plus a history push; Undo pops and applies the
//     inverse. Undo on an empty history is a no-op.
//   - Reset rotates each piece by the inverse of its own attitude. It forces
//     the solved state without replaying moves and keeps the history.
//   - Scramble applies n random twists derived with twist.Build from an
//     injected Rand. It bypasses the history.
//   - CheckSolved recomputes the solved flag from scratch; every mutator
//     calls it.
//
// Hooks
//
//   - WithOnTwist(fn):    after every twist, tagged with its MoveKind.
//   - WithOnScramble(fn): after a completed Scramble.
//   - WithOnReset(fn):    after Reset.
//   - WithOnSolve(fn):    when a move or undo solves a scrambled puzzle.
//
// Errors
//
//   - perm.ErrDegreeMismatch   a twist or snapshot disagrees with the degree.
//   - perm.ErrIndexOutOfRange  a grip, face or piece index is out of range.
//   - ErrNegativeCount         Scramble(n) with n < 0.
//   - ErrNilRandom             Scramble without a random source.
//   - twist.ErrNilFrames       Scramble without frame tables.
//   - orbit errors from Generate.
//
// Failures are never partial within one twist. A failing Scramble stops at
// the failing twist and leaves the twists already applied in place.
//
// Concurrency
//
//	A State is single-threaded; callers serialize access.
package puzzle
