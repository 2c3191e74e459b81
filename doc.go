// Package hypercell is a toolkit for permutation puzzles: twisty puzzles
// whose pieces are described by which grips they touch and how they are
// turned, rather than by geometry.
//
// 🚀 What is hypercell?
//
//	A small, dependency-light library plus a terminal game that brings together:
//		• Permutations: validated bijections, products, powers, inverses
//		• Pieces: grip signatures with an attitude, solved-ness checks
//		• Twists: face turns derived by conjugating one canonical rotation
//		• Orbits: breadth-first generation of every piece from a few bases
//		• Puzzle state: twist, undo, seeded scramble, force-solve, hooks
//		• Presets: the 11-cell (693 pieces)
//		• Sessions in SQLite and Prometheus metrics for the CLI
//
// Under the hood, everything is organized under these subpackages:
//
//	perm/               : Permutation value type + JSON
//	piece/              : Piece: signature and attitude
//	twist/              : Twist, Direction, Frames tables and Build
//	orbit/              : Generate with OnEnqueue/OnFinalize hooks
//	puzzle/             : State: Twist, TwistMove, Undo, Scramble, Reset, Snapshot
//	presets/elevencell/ : 11-cell tables and constructor
//	store/              : SQLite session persistence
//	telemetry/          : Prometheus collector fed by puzzle hooks
//	cmd/hypercell/      : interactive terminal game
//
//	go install github.com/katalvlaran/hypercell/cmd/hypercell@latest
package hypercell
