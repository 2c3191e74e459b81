// SPDX-License-Identifier: MIT

// Package elevencell holds the configuration tables of the "alternative
// 11-cell": eleven hemi-icosahedral cells, each a grip, with triangular faces
// turned by a third of a turn.
//
// The tables are data, not algorithm. Grip 0 is the canonical cell and face 1
// its canonical face; CellRecenter(c) carries cell c to cell 0 and
// FaceRecenter(f) carries face f of cell 0 to face 1.
package elevencell

import (
	"github.com/katalvlaran/hypercell/perm"
	"github.com/katalvlaran/hypercell/piece"
	"github.com/katalvlaran/hypercell/puzzle"
	"github.com/katalvlaran/hypercell/twist"
)

// Name identifies the preset in stored sessions.
const Name = "11-cell"

// Degree is the number of cells (grips).
const Degree = 11

// PieceCount is the size of the generated piece set.
const PieceCount = 693

// BasePieces returns one representative per piece type: 1-, 2-, 3- and
// 6-grip pieces.
func BasePieces() []piece.Piece {
	return []piece.Piece{
		piece.New([]uint8{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}),
		piece.New([]uint8{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0}),
		piece.New([]uint8{1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0}),
		piece.New([]uint8{1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0}),
	}
}

// Generators returns the symmetry generators.
func Generators() []perm.Permutation {
	return []perm.Permutation{
		perm.MustNew([]int{10, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}),
		perm.MustNew([]int{0, 2, 3, 4, 5, 1, 7, 8, 9, 10, 6}),
		perm.MustNew([]int{0, 6, 8, 3, 4, 9, 1, 10, 2, 5, 7}),
	}
}

var cellRecenter = [Degree][Degree]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	{1, 0, 5, 3, 4, 2, 6, 8, 7, 10, 9},
	{2, 3, 0, 1, 4, 5, 10, 7, 9, 8, 6},
	{3, 1, 4, 0, 2, 5, 7, 6, 8, 10, 9},
	{4, 1, 2, 5, 0, 3, 10, 8, 7, 9, 6},
	{5, 4, 2, 3, 1, 0, 7, 6, 9, 8, 10},
	{1, 6, 10, 4, 3, 7, 0, 8, 2, 5, 9},
	{2, 8, 7, 6, 5, 4, 10, 0, 9, 3, 1},
	{3, 5, 9, 8, 7, 1, 2, 6, 0, 10, 4},
	{4, 2, 1, 10, 9, 8, 5, 3, 7, 0, 6},
	{5, 9, 3, 2, 6, 10, 7, 1, 4, 8, 0},
}

// faceRecenter[0] is unused: face 0 would be the cell itself.
var faceRecenter = [Degree][Degree]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	{0, 5, 1, 2, 3, 4, 10, 6, 7, 8, 9},
	{0, 4, 5, 1, 2, 3, 9, 10, 6, 7, 8},
	{0, 3, 4, 5, 1, 2, 8, 9, 10, 6, 7},
	{0, 2, 3, 4, 5, 1, 7, 8, 9, 10, 6},
	{0, 6, 8, 3, 4, 9, 1, 10, 2, 5, 7},
	{0, 9, 6, 8, 3, 4, 7, 1, 10, 2, 5},
	{0, 4, 9, 6, 8, 3, 5, 7, 1, 10, 2},
	{0, 3, 4, 9, 6, 8, 2, 5, 7, 1, 10},
	{0, 8, 3, 4, 9, 6, 10, 2, 5, 7, 1},
}

var (
	clockwise        = []int{0, 1, 6, 9, 7, 2, 5, 8, 4, 10, 3}
	counterClockwise = []int{0, 1, 5, 10, 8, 6, 2, 4, 7, 3, 9}
)

// Frames returns the conjugation tables used to build twists.
func Frames() *twist.Table {
	cells := make([]perm.Permutation, Degree)
	faces := make([]perm.Permutation, Degree)
	for i := 0; i < Degree; i++ {
		cells[i] = perm.MustNew(cellRecenter[i][:])
		faces[i] = perm.MustNew(faceRecenter[i][:])
	}
	tab, err := twist.NewTable(cells, faces, perm.MustNew(clockwise), perm.MustNew(counterClockwise))
	if err != nil {
		// the literal tables above are consistent
		panic(err)
	}

	return tab
}

// New generates a solved 11-cell.
func New(opts ...puzzle.Option) (*puzzle.State, error) {
	return puzzle.Generate(BasePieces(), Generators(), opts...)
}
