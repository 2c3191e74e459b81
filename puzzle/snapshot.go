// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"

	"github.com/katalvlaran/hypercell/perm"
	"github.com/katalvlaran/hypercell/piece"
	"github.com/katalvlaran/hypercell/twist"
)

// Snapshot is a detached copy of a State, suitable for persistence.
type Snapshot struct {
	Degree    int
	Pieces    []piece.Piece
	History   []twist.Twist
	Scrambled bool
}

// Snapshot copies the current pieces, history and scrambled flag.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Degree:    s.degree,
		Pieces:    s.Pieces(),
		History:   s.History(),
		Scrambled: s.scrambled,
	}
}

// Restore rebuilds a State from a snapshot. Every piece and recorded twist
// must match snap.Degree; the solved flag is recomputed.
func Restore(snap Snapshot, opts ...Option) (*State, error) {
	if snap.Degree < 0 {
		return nil, fmt.Errorf("puzzle: restore degree %d: %w", snap.Degree, perm.ErrIndexOutOfRange)
	}
	for i, p := range snap.Pieces {
		if p.Degree() != snap.Degree {
			return nil, fmt.Errorf("puzzle: restore piece %d of degree %d, want %d: %w",
				i, p.Degree(), snap.Degree, perm.ErrDegreeMismatch)
		}
	}
	for i, t := range snap.History {
		if t.Degree() != snap.Degree {
			return nil, fmt.Errorf("puzzle: restore move %d of degree %d, want %d: %w",
				i, t.Degree(), snap.Degree, perm.ErrDegreeMismatch)
		}
		if t.Grip < 0 || t.Grip >= snap.Degree {
			return nil, fmt.Errorf("puzzle: restore move %d grip %d: %w", i, t.Grip, perm.ErrIndexOutOfRange)
		}
	}

	s := &State{
		degree:    snap.Degree,
		pieces:    append([]piece.Piece(nil), snap.Pieces...),
		history:   append([]twist.Twist(nil), snap.History...),
		scrambled: snap.Scrambled,
		opts:      buildOptions(opts),
	}
	s.CheckSolved()

	return s, nil
}
