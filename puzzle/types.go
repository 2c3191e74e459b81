// SPDX-License-Identifier: MIT

package puzzle

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hypercell/orbit"
	"github.com/katalvlaran/hypercell/twist"
)

// Sentinel errors for the state engine. Degree and index failures reuse
// perm.ErrDegreeMismatch and perm.ErrIndexOutOfRange.
var (
	// ErrNegativeCount is returned by Scramble for n < 0.
	ErrNegativeCount = errors.New("puzzle: negative scramble count")

	// ErrNilRandom is returned by Scramble when no random source is given.
	ErrNilRandom = errors.New("puzzle: random source is nil")
)

// MoveKind tells hooks how a twist reached the pieces.
type MoveKind int

const (
	// KindMove is a twist recorded in the history (TwistMove).
	KindMove MoveKind = iota
	// KindUndo is the inverse twist applied by Undo.
	KindUndo
	// KindScramble is a random twist applied by Scramble.
	KindScramble
	// KindRaw is a bare Twist call.
	KindRaw
)

// String returns the lower-case kind name.
func (k MoveKind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindUndo:
		return "undo"
	case KindScramble:
		return "scramble"
	case KindRaw:
		return "raw"
	default:
		return fmt.Sprintf("MoveKind(%d)", int(k))
	}
}

// Rand is the randomness Scramble draws from.
// Intn returns a uniform value in [0, n) for n > 0; Bool a fair coin.
type Rand interface {
	Intn(n int) int
	Bool() bool
}

// mathRand adapts *rand.Rand to Rand.
type mathRand struct {
	r *rand.Rand
}

func (m mathRand) Intn(n int) int { return m.r.Intn(n) }
func (m mathRand) Bool() bool     { return m.r.Intn(2) == 1 }

// NewRand returns a Rand seeded with seed.
func NewRand(seed int64) Rand {
	return mathRand{r: rand.New(rand.NewSource(seed))}
}

// FromRand wraps an existing *rand.Rand; nil yields nil.
func FromRand(r *rand.Rand) Rand {
	if r == nil {
		return nil
	}

	return mathRand{r: r}
}

// Option configures a State via functional arguments.
type Option func(*Options)

// Options holds hooks and generation settings for a State.
type Options struct {
	// OnTwist is called after any twist reaches the pieces.
	OnTwist func(t twist.Twist, kind MoveKind)

	// OnScramble is called once a Scramble of n twists has completed.
	OnScramble func(n int)

	// OnReset is called after Reset.
	OnReset func()

	// OnSolve is called when a move or undo returns a scrambled puzzle to
	// the solved state.
	OnSolve func()

	// Orbit options forwarded to orbit.Generate.
	Orbit []orbit.Option
}

// DefaultOptions returns no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnTwist:    func(twist.Twist, MoveKind) {},
		OnScramble: func(int) {},
		OnReset:    func() {},
		OnSolve:    func() {},
	}
}

// WithOnTwist registers a callback run after every applied twist.
// Hooks chain: several callbacks run in registration order. nil is ignored.
func WithOnTwist(fn func(t twist.Twist, kind MoveKind)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnTwist
		o.OnTwist = func(t twist.Twist, kind MoveKind) {
			prev(t, kind)
			fn(t, kind)
		}
	}
}

// WithOnScramble registers a callback run after a completed Scramble.
func WithOnScramble(fn func(n int)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnScramble
		o.OnScramble = func(n int) {
			prev(n)
			fn(n)
		}
	}
}

// WithOnReset registers a callback run after Reset.
func WithOnReset(fn func()) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnReset
		o.OnReset = func() {
			prev()
			fn()
		}
	}
}

// WithOnSolve registers a callback run when a scrambled puzzle is solved by
// a move or undo.
func WithOnSolve(fn func()) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnSolve
		o.OnSolve = func() {
			prev()
			fn()
		}
	}
}

// WithOrbitOptions forwards options to orbit.Generate.
func WithOrbitOptions(opts ...orbit.Option) Option {
	return func(o *Options) {
		o.Orbit = append(o.Orbit, opts...)
	}
}
