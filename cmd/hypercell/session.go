// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/hypercell/puzzle"
	"github.com/katalvlaran/hypercell/store"
	"github.com/katalvlaran/hypercell/telemetry"
	"github.com/katalvlaran/hypercell/twist"
)

// defaultScramble is the number of random twists "scramble" applies when no
// count is given.
const defaultScramble = 1000

const helpText = `commands:
  twist <cell> <face> [cw|ccw]  turn a face (default cw)
  undo                          revert the last recorded twist
  scramble [n]                  reset, then apply n random twists (default 1000)
  reset                         force-solve the puzzle
  status                        show solved state and counts
  history                       list recorded twists
  save                          store the session (-db)
  sessions                      list stored sessions (-db)
  help                          show this text
  quit                          leave
`

var (
	errQuit    = errors.New("quit")
	errNoStore = errors.New("no session store; start with -db")
)

// session is one interactive game.
type session struct {
	preset    string
	state     *puzzle.State
	frames    twist.Frames
	rnd       puzzle.Rand
	db        *store.Store
	collector *telemetry.Collector
	id        string
	out       io.Writer
}

func (s *session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// resume loads a stored session into s.
func (s *session) resume(ctx context.Context, id string, opts ...puzzle.Option) error {
	if s.db == nil {
		return errNoStore
	}
	rec, err := s.db.Load(ctx, id)
	if err != nil {
		return err
	}
	if rec.Preset != s.preset {
		return fmt.Errorf("session %s is a %s puzzle, not %s", rec.SessionID, rec.Preset, s.preset)
	}
	if s.state, err = puzzle.Restore(rec.Snapshot, opts...); err != nil {
		return err
	}
	s.id = rec.SessionID

	return nil
}

// run executes commands from r until EOF or "quit". Command errors are
// reported and the loop continues.
func (s *session) run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	s.observe()
	for {
		s.printf("> ")
		if !sc.Scan() {
			s.printf("\n")
			return sc.Err()
		}
		err := s.exec(ctx, strings.Fields(sc.Text()))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			s.printf("error: %v\n", err)
		}
		s.observe()
	}
}

func (s *session) observe() {
	if s.collector != nil {
		s.collector.Observe(s.state)
	}
}

func (s *session) exec(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}
	switch args[0] {
	case "twist", "t":
		return s.twist(args[1:])
	case "undo", "u":
		if s.state.HistoryLen() == 0 {
			s.printf("nothing to undo\n")
			return nil
		}
		if err := s.state.Undo(); err != nil {
			return err
		}
		s.status()
	case "scramble":
		n := defaultScramble
		if len(args) > 1 {
			v, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("scramble count %q: %w", args[1], err)
			}
			n = v
		}
		if err := s.state.Reset(); err != nil {
			return err
		}
		if err := s.state.Scramble(n, s.frames, s.rnd); err != nil {
			return err
		}
		s.status()
	case "reset":
		if err := s.state.Reset(); err != nil {
			return err
		}
		s.status()
	case "status":
		s.status()
	case "history":
		for i, t := range s.state.History() {
			s.printf("%4d  %s\n", i+1, t)
		}
	case "save":
		return s.save(ctx)
	case "sessions":
		return s.sessions(ctx)
	case "help", "?":
		s.printf("%s", helpText)
	case "quit", "exit", "q":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", args[0])
	}

	return nil
}

func (s *session) twist(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errors.New("usage: twist <cell> <face> [cw|ccw]")
	}
	cell, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("cell %q: %w", args[0], err)
	}
	face, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("face %q: %w", args[1], err)
	}
	dir := twist.Clockwise
	if len(args) == 3 {
		if dir, err = twist.ParseDirection(args[2]); err != nil {
			return err
		}
	}
	t, err := twist.Build(s.frames, cell, face, dir)
	if err != nil {
		return err
	}
	if err := s.state.TwistMove(t); err != nil {
		return err
	}
	s.status()

	return nil
}

func (s *session) status() {
	if s.state.Solved() {
		s.printf("solved (%d moves recorded)\n", s.state.HistoryLen())
		return
	}
	s.printf("%d of %d pieces unsolved (%d moves recorded)\n",
		s.state.Unsolved(), s.state.Len(), s.state.HistoryLen())
}

func (s *session) save(ctx context.Context) error {
	if s.db == nil {
		return errNoStore
	}
	snap := s.state.Snapshot()
	if s.id != "" {
		if err := s.db.Update(ctx, s.id, snap); err != nil {
			return err
		}
	} else {
		rec, err := s.db.Create(ctx, s.preset, snap)
		if err != nil {
			return err
		}
		s.id = rec.SessionID
	}
	s.printf("saved %s\n", s.id)

	return nil
}

func (s *session) sessions(ctx context.Context) error {
	if s.db == nil {
		return errNoStore
	}
	list, err := s.db.List(ctx, 20)
	if err != nil {
		return err
	}
	for _, sum := range list {
		state := "fresh"
		if sum.Scrambled {
			state = "scrambled"
		}
		s.printf("%s  %-8s %-9s %4d moves  %s\n",
			sum.SessionID, sum.Preset, state, sum.Moves, sum.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}
