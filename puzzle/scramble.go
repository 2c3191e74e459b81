// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"

	"github.com/katalvlaran/hypercell/perm"
	"github.com/katalvlaran/hypercell/twist"
)

// Scramble applies n random twists without recording them in the history.
//
// Each twist draws, in this order, a grip g uniform in [0, degree), a face f
// uniform in [1, degree) and a direction (rnd.Bool() selects
// counter-clockwise), and is built with twist.Build(frames, g, f, dir).
//
// Scramble(0) is a no-op. A failing twist stops the scramble immediately;
// twists already applied stay in place and no rollback happens.
func (s *State) Scramble(n int, frames twist.Frames, rnd Rand) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: %d", ErrNegativeCount, n)
	case n == 0:
		return nil
	case rnd == nil:
		return ErrNilRandom
	case frames == nil:
		return twist.ErrNilFrames
	case s.degree < 2:
		return fmt.Errorf("puzzle: scramble needs at least 2 grips, have %d: %w", s.degree, perm.ErrIndexOutOfRange)
	}

	for i := 0; i < n; i++ {
		t, err := RandomTwist(s.degree, frames, rnd)
		if err != nil {
			return fmt.Errorf("puzzle: scramble twist %d of %d: %w", i+1, n, err)
		}
		if err := s.apply(t, KindScramble); err != nil {
			return fmt.Errorf("puzzle: scramble twist %d of %d: %w", i+1, n, err)
		}
		s.scrambled = true
	}
	s.opts.OnScramble(n)

	return nil
}

// RandomTwist draws one scramble twist for a puzzle of the given degree.
func RandomTwist(degree int, frames twist.Frames, rnd Rand) (twist.Twist, error) {
	if degree < 2 {
		return twist.Twist{}, fmt.Errorf("puzzle: random twist needs at least 2 grips, have %d: %w", degree, perm.ErrIndexOutOfRange)
	}
	grip := rnd.Intn(degree)
	face := 1 + rnd.Intn(degree-1)
	dir := twist.Clockwise
	if rnd.Bool() {
		dir = twist.CounterClockwise
	}

	return twist.Build(frames, grip, face, dir)
}
