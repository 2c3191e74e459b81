// SPDX-License-Identifier: MIT

package puzzle_test

import (
	"fmt"

	"github.com/katalvlaran/hypercell/presets/elevencell"
	"github.com/katalvlaran/hypercell/puzzle"
	"github.com/katalvlaran/hypercell/twist"
)

// ExampleState_TwistMove turns one face of the 11-cell and undoes it.
func ExampleState_TwistMove() {
	s, err := elevencell.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s.Len(), s.Solved())

	t, err := twist.Build(elevencell.Frames(), 3, 7, twist.CounterClockwise)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = s.TwistMove(t)
	fmt.Println(s.Solved(), s.Unsolved(), s.HistoryLen())

	_ = s.Undo()
	fmt.Println(s.Solved(), s.HistoryLen())
	// Output:
	// 693 true
	// false 306 1
	// true 0
}

// ExampleState_Reset scrambles deterministically and force-solves.
func ExampleState_Reset() {
	s, _ := elevencell.New()
	_ = s.Scramble(1000, elevencell.Frames(), puzzle.NewRand(2024))
	fmt.Println(s.Scrambled(), s.HistoryLen())

	_ = s.Reset()
	fmt.Println(s.Scrambled(), s.Solved())
	// Output:
	// true 0
	// false true
}
