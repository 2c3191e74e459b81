// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"

	"github.com/katalvlaran/hypercell/orbit"
	"github.com/katalvlaran/hypercell/perm"
	"github.com/katalvlaran/hypercell/piece"
	"github.com/katalvlaran/hypercell/twist"
)

// State is a live puzzle: the piece collection, the move history and the
// cached solved flag. It is not safe for concurrent use.
type State struct {
	degree    int
	pieces    []piece.Piece
	history   []twist.Twist
	solved    bool
	scrambled bool
	opts      Options
}

// Generate builds a solved puzzle from base pieces closed under generators.
// Errors are those of orbit.Generate; no partial state is returned.
func Generate(base []piece.Piece, generators []perm.Permutation, opts ...Option) (*State, error) {
	o := buildOptions(opts)
	pieces, err := orbit.Generate(base, generators, o.Orbit...)
	if err != nil {
		return nil, fmt.Errorf("puzzle: generate: %w", err)
	}
	s := &State{
		degree: generators[0].Degree(),
		pieces: pieces,
		opts:   o,
	}
	s.CheckSolved()

	return s, nil
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Degree returns the number of grips.
func (s *State) Degree() int { return s.degree }

// Len returns the number of pieces.
func (s *State) Len() int { return len(s.pieces) }

// Pieces returns a copy of the piece collection, in generation order.
func (s *State) Pieces() []piece.Piece {
	out := make([]piece.Piece, len(s.pieces))
	copy(out, s.pieces)

	return out
}

// Piece returns the i-th piece.
func (s *State) Piece(i int) (piece.Piece, error) {
	if i < 0 || i >= len(s.pieces) {
		return piece.Piece{}, fmt.Errorf("puzzle: piece %d of %d: %w", i, len(s.pieces), perm.ErrIndexOutOfRange)
	}

	return s.pieces[i], nil
}

// Solved reports the cached solved flag, refreshed after every mutation.
func (s *State) Solved() bool { return s.solved }

// Scrambled reports whether Scramble has run since the last Reset.
func (s *State) Scrambled() bool { return s.scrambled }

// History returns a copy of the recorded moves, oldest first.
func (s *State) History() []twist.Twist {
	out := make([]twist.Twist, len(s.history))
	copy(out, s.history)

	return out
}

// HistoryLen returns the number of recorded moves.
func (s *State) HistoryLen() int { return len(s.history) }

// Unsolved counts the pieces not in their solved orientation.
func (s *State) Unsolved() int {
	n := 0
	for _, p := range s.pieces {
		if !p.IsSolved() {
			n++
		}
	}

	return n
}

// CheckSolved recomputes, stores and returns the solved flag.
func (s *State) CheckSolved() bool {
	s.solved = true
	for _, p := range s.pieces {
		if !p.IsSolved() {
			s.solved = false
			break
		}
	}

	return s.solved
}

// Twist rotates every piece touching t.Grip by t.Rotation. The history is
// not touched. The update is atomic: on error no piece has moved.
// Returns perm.ErrDegreeMismatch or perm.ErrIndexOutOfRange.
func (s *State) Twist(t twist.Twist) error {
	return s.apply(t, KindRaw)
}

// apply is the single mutator of s.pieces for twists.
func (s *State) apply(t twist.Twist, kind MoveKind) error {
	if t.Rotation.Degree() != s.degree {
		return fmt.Errorf("puzzle: twist of degree %d on degree %d puzzle: %w",
			t.Rotation.Degree(), s.degree, perm.ErrDegreeMismatch)
	}
	if t.Grip < 0 || t.Grip >= s.degree {
		return fmt.Errorf("puzzle: twist grip %d, degree %d: %w", t.Grip, s.degree, perm.ErrIndexOutOfRange)
	}

	next := make([]piece.Piece, len(s.pieces))
	for i, p := range s.pieces {
		touches, err := p.Touches(t.Grip)
		if err != nil {
			return fmt.Errorf("puzzle: piece %d: %w", i, err)
		}
		if !touches {
			next[i] = p
			continue
		}
		q, err := p.Rotate(t.Rotation)
		if err != nil {
			return fmt.Errorf("puzzle: piece %d: %w", i, err)
		}
		next[i] = q
	}
	s.pieces = next
	s.CheckSolved()
	s.opts.OnTwist(t, kind)

	return nil
}

// TwistMove applies t and records it in the history.
func (s *State) TwistMove(t twist.Twist) error {
	was := s.solved
	if err := s.apply(t, KindMove); err != nil {
		return err
	}
	s.history = append(s.history, t)
	s.notifySolve(was)

	return nil
}

// Undo reverts the most recent recorded move. An empty history is a no-op.
func (s *State) Undo() error {
	if len(s.history) == 0 {
		return nil
	}
	was := s.solved
	last := s.history[len(s.history)-1]
	if err := s.apply(last.Inverse(), KindUndo); err != nil {
		return err
	}
	s.history = s.history[:len(s.history)-1]
	s.notifySolve(was)

	return nil
}

// notifySolve fires OnSolve on an unsolved → solved transition of a
// scrambled puzzle.
func (s *State) notifySolve(wasSolved bool) {
	if s.scrambled && !wasSolved && s.solved {
		s.opts.OnSolve()
	}
}

// Reset unwinds every piece's own attitude, forcing the solved state.
// The history is kept; the scrambled flag is cleared.
func (s *State) Reset() error {
	next := make([]piece.Piece, len(s.pieces))
	for i, p := range s.pieces {
		q, err := p.Rotate(p.Attitude().Inverse())
		if err != nil {
			return fmt.Errorf("puzzle: reset piece %d: %w", i, err)
		}
		next[i] = q
	}
	s.pieces = next
	s.scrambled = false
	s.CheckSolved()
	s.opts.OnReset()

	return nil
}
