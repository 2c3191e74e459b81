// SPDX-License-Identifier: MIT

package orbit_test

import (
	"testing"

	"github.com/katalvlaran/hypercell/orbit"
	"github.com/katalvlaran/hypercell/perm"
	"github.com/katalvlaran/hypercell/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signatures extracts the signature of every piece, in order.
func signatures(ps []piece.Piece) [][]uint8 {
	out := make([][]uint8, len(ps))
	for i, p := range ps {
		out[i] = p.Signature()
	}

	return out
}

// tenCycle fixes grip 0 and cycles grips 1→2→…→10→1.
func tenCycle() perm.Permutation {
	m := make([]int, 11)
	for i := 1; i <= 10; i++ {
		m[i] = i%10 + 1
	}

	return perm.MustNew(m)
}

func TestGenerate_Errors(t *testing.T) {
	base := []piece.Piece{piece.New([]uint8{1, 0, 0})}

	_, err := orbit.Generate(base, nil)
	assert.ErrorIs(t, err, orbit.ErrEmptyGenerators)

	_, err = orbit.Generate(base, []perm.Permutation{perm.MustNew([]int{1, 0})})
	assert.ErrorIs(t, err, perm.ErrDegreeMismatch, "base vs generator")

	_, err = orbit.Generate(base, []perm.Permutation{
		perm.MustNew([]int{1, 2, 0}),
		perm.MustNew([]int{1, 0}),
	})
	assert.ErrorIs(t, err, perm.ErrDegreeMismatch, "generators disagree")

	_, err = orbit.Generate(base, []perm.Permutation{perm.MustNew([]int{1, 2, 0})}, orbit.WithMaxPieces(-1))
	assert.ErrorIs(t, err, orbit.ErrOptionViolation)

	out, err := orbit.Generate(base, []perm.Permutation{perm.MustNew([]int{1, 2, 0})}, orbit.WithMaxPieces(2))
	assert.ErrorIs(t, err, orbit.ErrTooManyPieces)
	assert.Nil(t, out, "no partial result")
}

func TestGenerate_EmptyBase(t *testing.T) {
	out, err := orbit.Generate(nil, []perm.Permutation{perm.MustNew([]int{1, 0})})
	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestGenerate_TenCycle covers the single corner-like piece moved by a 10-way rotation.
func TestGenerate_TenCycle(t *testing.T) {
	sig := make([]uint8, 11)
	sig[1] = 1
	out, err := orbit.Generate([]piece.Piece{piece.New(sig)}, []perm.Permutation{tenCycle()})
	require.NoError(t, err)
	require.Len(t, out, 10)

	seen := map[string]bool{}
	for i, p := range out {
		assert.True(t, p.Attitude().IsIdentity())
		assert.False(t, seen[p.Key()], "duplicate signature")
		seen[p.Key()] = true
		// breadth-first: the i-th piece touches grip i+1
		v, err := p.SignatureAt(i + 1)
		require.NoError(t, err)
		assert.Equal(t, uint8(1), v)
	}
}

// TestGenerate_FixedPoint shows that a piece on the fixed grip is its own orbit.
func TestGenerate_FixedPoint(t *testing.T) {
	sig := make([]uint8, 11)
	sig[0] = 1
	out, err := orbit.Generate([]piece.Piece{piece.New(sig)}, []perm.Permutation{tenCycle()})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

// TestGenerate_BreadthFirstOrder pins the interleaving of two base pieces.
func TestGenerate_BreadthFirstOrder(t *testing.T) {
	base := []piece.Piece{
		piece.New([]uint8{1, 0, 0, 0}),
		piece.New([]uint8{1, 1, 0, 0}),
	}
	out, err := orbit.Generate(base, []perm.Permutation{perm.MustNew([]int{1, 2, 3, 0})})
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{
		{1, 0, 0, 0},
		{1, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 1},
		{1, 0, 0, 1},
	}, signatures(out))
}

// TestGenerate_QueuedDuplicates exercises two generators reaching the same
// signature before either copy is finalized.
func TestGenerate_QueuedDuplicates(t *testing.T) {
	base := []piece.Piece{piece.New([]uint8{1, 1, 0, 0})}
	gens := []perm.Permutation{
		perm.MustNew([]int{1, 2, 3, 0}),
		perm.MustNew([]int{2, 1, 0, 3}),
	}

	var enqueued, finalized int
	var depths []int
	out, err := orbit.Generate(base, gens,
		orbit.WithOnEnqueue(func(p piece.Piece, depth int) {
			enqueued++
			assert.True(t, p.Attitude().IsIdentity())
		}),
		orbit.WithOnFinalize(func(p piece.Piece, index int) {
			assert.Equal(t, finalized, index)
			finalized++
		}),
		orbit.WithOnEnqueue(func(p piece.Piece, depth int) {
			depths = append(depths, depth)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{
		{1, 1, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 1, 1},
		{1, 0, 0, 1},
	}, signatures(out))
	assert.Equal(t, 4, finalized)
	// later option overrides the earlier hook
	assert.Zero(t, enqueued)
	assert.Len(t, depths, 8)
	assert.Equal(t, 1, depths[0])
}

func TestGenerate_MultiValuedSignature(t *testing.T) {
	base := []piece.Piece{piece.New([]uint8{1, 0, 2, 0})}
	gens := []perm.Permutation{
		perm.MustNew([]int{1, 2, 3, 0}),
		perm.MustNew([]int{2, 1, 0, 3}),
	}
	out, err := orbit.Generate(base, gens)
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{
		{1, 0, 2, 0},
		{0, 1, 0, 2},
		{2, 0, 1, 0},
		{0, 2, 0, 1},
	}, signatures(out))
}

func TestGenerate_ResetsBaseAttitude(t *testing.T) {
	rotated, err := piece.New([]uint8{1, 0, 0}).Rotate(perm.MustNew([]int{1, 2, 0}))
	require.NoError(t, err)
	out, err := orbit.Generate([]piece.Piece{rotated}, []perm.Permutation{perm.MustNew([]int{1, 2, 0})})
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, p := range out {
		assert.True(t, p.Attitude().IsIdentity())
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	base := []piece.Piece{piece.New([]uint8{1, 1, 0, 0, 0, 0}), piece.New([]uint8{1, 0, 0, 0, 0, 0})}
	gens := []perm.Permutation{
		perm.MustNew([]int{1, 2, 3, 4, 5, 0}),
		perm.MustNew([]int{1, 0, 2, 3, 4, 5}),
	}
	first, err := orbit.Generate(base, gens)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := orbit.Generate(base, gens)
		require.NoError(t, err)
		assert.Equal(t, signatures(first), signatures(again))
	}
	// S6 acting on 2-subsets and 1-subsets
	assert.Len(t, first, 15+6)
}
