// SPDX-License-Identifier: MIT

package twist

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hypercell/perm"
)

// ErrNilFrames is returned when Build is called without frame tables.
var ErrNilFrames = errors.New("twist: frames are nil")

// ErrUnknownDirection is returned for a Direction other than Clockwise or
// CounterClockwise.
var ErrUnknownDirection = errors.New("twist: unknown direction")

// Direction selects one of the two canonical rotations.
type Direction int

const (
	// Clockwise selects the clockwise canonical rotation.
	Clockwise Direction = iota
	// CounterClockwise selects the counter-clockwise canonical rotation.
	CounterClockwise
)

// String returns "cw" or "ccw".
func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "cw" or "ccw".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "cw":
		return Clockwise, nil
	case "ccw":
		return CounterClockwise, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Frames supplies the configuration tables Build conjugates with.
//
// CellRecenter(c) moves cell c onto the canonical cell; FaceRecenter(f) moves
// face f of the canonical cell onto the canonical face, for f in [1, degree);
// Rotation(d) is the canonical face rotation.
type Frames interface {
	CellRecenter(cell int) (perm.Permutation, error)
	FaceRecenter(face int) (perm.Permutation, error)
	Rotation(dir Direction) (perm.Permutation, error)
}

// Table is a Frames backed by slices.
// Cells is indexed by cell in [0, degree); Faces by face in [1, degree),
// Faces[0] being unused.
type Table struct {
	Cells            []perm.Permutation
	Faces            []perm.Permutation
	Clockwise        perm.Permutation
	CounterClockwise perm.Permutation
}

// NewTable checks that every entry shares the degree of cw and that both
// tables cover [0, degree).
func NewTable(cells, faces []perm.Permutation, cw, ccw perm.Permutation) (*Table, error) {
	deg := cw.Degree()
	if ccw.Degree() != deg {
		return nil, fmt.Errorf("twist: ccw rotation degree %d, cw %d: %w", ccw.Degree(), deg, perm.ErrDegreeMismatch)
	}
	if len(cells) != deg || len(faces) != deg {
		return nil, fmt.Errorf("twist: %d cell and %d face frames for degree %d: %w",
			len(cells), len(faces), deg, perm.ErrDegreeMismatch)
	}
	for i, p := range cells {
		if p.Degree() != deg {
			return nil, fmt.Errorf("twist: cell frame %d has degree %d, want %d: %w", i, p.Degree(), deg, perm.ErrDegreeMismatch)
		}
	}
	for i := 1; i < len(faces); i++ {
		if faces[i].Degree() != deg {
			return nil, fmt.Errorf("twist: face frame %d has degree %d, want %d: %w", i, faces[i].Degree(), deg, perm.ErrDegreeMismatch)
		}
	}

	return &Table{Cells: cells, Faces: faces, Clockwise: cw, CounterClockwise: ccw}, nil
}

// Degree is the degree of the canonical rotations.
func (t *Table) Degree() int { return t.Clockwise.Degree() }

// CellRecenter implements Frames.
func (t *Table) CellRecenter(cell int) (perm.Permutation, error) {
	if cell < 0 || cell >= len(t.Cells) {
		return perm.Permutation{}, fmt.Errorf("twist: cell %d of %d: %w", cell, len(t.Cells), perm.ErrIndexOutOfRange)
	}

	return t.Cells[cell], nil
}

// FaceRecenter implements Frames. Face 0 is the cell itself and is rejected.
func (t *Table) FaceRecenter(face int) (perm.Permutation, error) {
	if face < 1 || face >= len(t.Faces) {
		return perm.Permutation{}, fmt.Errorf("twist: face %d outside [1,%d): %w", face, len(t.Faces), perm.ErrIndexOutOfRange)
	}

	return t.Faces[face], nil
}

// Rotation implements Frames.
func (t *Table) Rotation(dir Direction) (perm.Permutation, error) {
	switch dir {
	case Clockwise:
		return t.Clockwise, nil
	case CounterClockwise:
		return t.CounterClockwise, nil
	}

	return perm.Permutation{}, fmt.Errorf("%w: %d", ErrUnknownDirection, int(dir))
}
