// SPDX-License-Identifier: MIT

// Package twist describes puzzle moves and derives them from configuration.
//
// A Twist pairs a grip with the permutation applied to every piece touching
// that grip. Twists are never enumerated per grip/face pair: Build derives any
// physical move by conjugation, moving the target frame onto the canonical
// frame, performing the single canonical rotation, and moving back:
//
//	rotation = recenter(cell) · faceRecenter(face) · canonical · faceRecenter(face)⁻¹ · recenter(cell)⁻¹
//
// with products taken left to right (see perm.Permutation.Product).
// Scrambling and interactive move construction both go through Build.
package twist

import (
	"fmt"

	"github.com/katalvlaran/hypercell/perm"
)

// Twist is an atomic move: apply Rotation to every piece touching Grip.
type Twist struct {
	Grip     int              `json:"grip"`
	Rotation perm.Permutation `json:"rotation"`
}

// New validates grip against the rotation's degree.
func New(grip int, rotation perm.Permutation) (Twist, error) {
	if grip < 0 || grip >= rotation.Degree() {
		return Twist{}, fmt.Errorf("twist: grip %d, degree %d: %w", grip, rotation.Degree(), perm.ErrIndexOutOfRange)
	}

	return Twist{Grip: grip, Rotation: rotation}, nil
}

// Degree is the degree of the rotation.
func (t Twist) Degree() int { return t.Rotation.Degree() }

// Inverse undoes t: same grip, inverted rotation.
func (t Twist) Inverse() Twist {
	return Twist{Grip: t.Grip, Rotation: t.Rotation.Inverse()}
}

// Equal reports whether both grip and rotation match.
func (t Twist) Equal(o Twist) bool {
	return t.Grip == o.Grip && t.Rotation.Equal(o.Rotation)
}

// String renders the twist as "grip:rotation".
func (t Twist) String() string {
	return fmt.Sprintf("%d:%v", t.Grip, t.Rotation)
}

// Conjugate returns frame₁·…·frameₖ·op·frameₖ⁻¹·…·frame₁⁻¹, i.e. op expressed
// relative to the frame reached by applying frames in order. With no frames
// it returns op unchanged.
func Conjugate(op perm.Permutation, frames ...perm.Permutation) (perm.Permutation, error) {
	chain := make([]perm.Permutation, 0, 2*len(frames)+1)
	chain = append(chain, frames...)
	chain = append(chain, op)
	for i := len(frames) - 1; i >= 0; i-- {
		chain = append(chain, frames[i].Inverse())
	}
	out, err := perm.Compose(chain...)
	if err != nil {
		return perm.Permutation{}, fmt.Errorf("twist: conjugate: %w", err)
	}

	return out, nil
}

// Build derives the twist turning face of cell in direction dir.
// The returned twist acts on grip cell.
func Build(frames Frames, cell, face int, dir Direction) (Twist, error) {
	if frames == nil {
		return Twist{}, ErrNilFrames
	}
	recenter, err := frames.CellRecenter(cell)
	if err != nil {
		return Twist{}, err
	}
	faceRecenter, err := frames.FaceRecenter(face)
	if err != nil {
		return Twist{}, err
	}
	canonical, err := frames.Rotation(dir)
	if err != nil {
		return Twist{}, err
	}
	rot, err := Conjugate(canonical, recenter, faceRecenter)
	if err != nil {
		return Twist{}, err
	}

	return New(cell, rot)
}
