// SPDX-License-Identifier: MIT

// Package orbit enumerates the full piece set of a puzzle by closing a few
// representative pieces under a set of generator permutations, without ever
// materializing the symmetry group they generate.
//
// Algorithm
//
//	queue  ← base pieces
//	output ← ∅
//	while queue is not empty:
//	    p ← front of queue
//	    for each generator g, in order:
//	        q ← p rotated by g
//	        if q's signature is already in output: skip
//	        enqueue q with identity attitude
//	    move p from the queue to output
//
// Only finalized pieces are consulted when a rotation is discovered, so the
// same signature may be queued twice; the later copy is dropped when it
// reaches the front, which keeps the output duplicate-free without changing
// which copy is kept or the order pieces are finalized in.
//
// Determinism
//
//	Output order is breadth-first discovery order: base pieces first, then
//	their images in generator order. Identical input yields identical output.
//
// Complexity (N = |output|, G = |generators|, D = degree)
//
//   - Time:   O(Q·G·D) where Q ≥ N counts queued pieces, duplicates included.
//   - Memory: O(Q·D).
package orbit

import (
	"fmt"

	"github.com/katalvlaran/hypercell/perm"
	"github.com/katalvlaran/hypercell/piece"
)

// queueItem pairs a piece with its distance from its base piece.
type queueItem struct {
	p     piece.Piece
	depth int
}

// walker encapsulates mutable generation state.
type walker struct {
	opts       Options
	generators []perm.Permutation
	queue      []queueItem
	final      map[string]struct{} // signatures already in out
	out        []piece.Piece
}

// Generate returns the duplicate-free closure of base under generators, each
// piece with identity attitude.
// Returns ErrEmptyGenerators, perm.ErrDegreeMismatch when base pieces and
// generators disagree on the degree, ErrOptionViolation or ErrTooManyPieces.
func Generate(base []piece.Piece, generators []perm.Permutation, opts ...Option) ([]piece.Piece, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(generators) == 0 {
		return nil, ErrEmptyGenerators
	}
	degree := generators[0].Degree()
	for i, g := range generators {
		if g.Degree() != degree {
			return nil, fmt.Errorf("orbit: generator %d has degree %d, want %d: %w",
				i, g.Degree(), degree, perm.ErrDegreeMismatch)
		}
	}
	for i, p := range base {
		if p.Degree() != degree {
			return nil, fmt.Errorf("orbit: base piece %d has degree %d, want %d: %w",
				i, p.Degree(), degree, perm.ErrDegreeMismatch)
		}
	}

	w := &walker{
		opts:       o,
		generators: generators,
		queue:      make([]queueItem, 0, len(base)),
		final:      make(map[string]struct{}),
		out:        make([]piece.Piece, 0, len(base)),
	}
	for _, p := range base {
		w.queue = append(w.queue, queueItem{p: p.Canonical()})
	}

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.out, nil
}

// loop processes the queue until it is empty or the piece limit trips.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		if err := w.expand(item); err != nil {
			return err
		}
		w.queue = w.queue[1:]
		if err := w.finalize(item.p); err != nil {
			return err
		}
	}

	return nil
}

// expand queues every generator image of item not yet finalized.
func (w *walker) expand(item queueItem) error {
	for _, g := range w.generators {
		next, err := item.p.Rotate(g)
		if err != nil {
			return fmt.Errorf("orbit: %w", err)
		}
		if _, seen := w.final[next.Key()]; seen {
			continue
		}
		next = next.Canonical()
		w.queue = append(w.queue, queueItem{p: next, depth: item.depth + 1})
		w.opts.OnEnqueue(next, item.depth+1)
	}

	return nil
}

// finalize appends p to the output unless its signature is already there.
func (w *walker) finalize(p piece.Piece) error {
	key := p.Key()
	if _, seen := w.final[key]; seen {
		return nil
	}
	if w.opts.MaxPieces > 0 && len(w.out) >= w.opts.MaxPieces {
		return fmt.Errorf("%w: more than %d pieces", ErrTooManyPieces, w.opts.MaxPieces)
	}
	w.final[key] = struct{}{}
	w.out = append(w.out, p)
	w.opts.OnFinalize(p, len(w.out)-1)

	return nil
}
