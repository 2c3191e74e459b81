// SPDX-License-Identifier: MIT

package orbit_test

import (
	"fmt"

	"github.com/katalvlaran/hypercell/orbit"
	"github.com/katalvlaran/hypercell/perm"
	"github.com/katalvlaran/hypercell/piece"
)

// ExampleGenerate closes one edge of a square under its rotation and a
// reflection; the two generators reach the same edges, yet each appears once.
func ExampleGenerate() {
	base := []piece.Piece{piece.New([]uint8{1, 1, 0, 0})}
	gens := []perm.Permutation{
		perm.MustNew([]int{1, 2, 3, 0}), // quarter turn
		perm.MustNew([]int{2, 1, 0, 3}), // reflection through grips 1 and 3
	}

	pieces, err := orbit.Generate(base, gens)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range pieces {
		fmt.Println(p.Signature())
	}
	// Output:
	// [1 1 0 0]
	// [0 1 1 0]
	// [0 0 1 1]
	// [1 0 0 1]
}
