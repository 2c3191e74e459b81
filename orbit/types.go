// SPDX-License-Identifier: MIT

// Package orbit provides tunable options and error definitions
// for closing a set of base pieces under generator permutations.
package orbit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hypercell/piece"
)

// Sentinel errors for orbit generation.
var (
	// ErrEmptyGenerators is returned when no generator is given; the degree
	// of the puzzle cannot be determined.
	ErrEmptyGenerators = errors.New("orbit: no generators")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("orbit: invalid option supplied")

	// ErrTooManyPieces is returned when the orbit exceeds WithMaxPieces.
	ErrTooManyPieces = errors.New("orbit: piece limit exceeded")
)

// Option configures Generate via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize generation.
type Options struct {
	// OnEnqueue is called when a newly discovered piece is queued.
	// depth is the number of generator applications from its base piece.
	OnEnqueue func(p piece.Piece, depth int)

	// OnFinalize is called when a piece is appended to the output;
	// index is its position in the result.
	OnFinalize func(p piece.Piece, index int)

	// MaxPieces, if > 0, aborts generation with ErrTooManyPieces once the
	// output would grow beyond it. 0 means no limit.
	MaxPieces int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns no-op hooks and no piece limit.
func DefaultOptions() Options {
	return Options{
		OnEnqueue:  func(piece.Piece, int) {},
		OnFinalize: func(piece.Piece, int) {},
		MaxPieces:  0,
	}
}

// WithOnEnqueue registers a callback run for every queued discovery.
func WithOnEnqueue(fn func(p piece.Piece, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnFinalize registers a callback run for every finalized piece.
func WithOnFinalize(fn func(p piece.Piece, index int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// WithMaxPieces bounds the size of the generated set.
//
//	n > 0: limit to n pieces
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPieces(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPieces cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPieces = n
	}
}
