// SPDX-License-Identifier: MIT

// Package piece defines the oriented puzzle piece: a per-grip signature plus
// the attitude permutation accumulated since the piece was last canonical.
//
// A piece touches grip g when its signature holds 1 at g. Rotating a piece by r
// moves the value at grip i to grip r(i) and appends r to the attitude. A piece
// is solved when reading its signature through its own attitude changes
// nothing. Piece identity (SameAs) ignores the attitude.
//
// Pieces are immutable values; Rotate and Canonical return new pieces and never
// alias mutable state with the receiver.
package piece

import (
	"fmt"

	"github.com/katalvlaran/hypercell/perm"
)

// Touching is the signature value marking a grip the piece occupies.
const Touching uint8 = 1

// Piece is an oriented object living on degree grips.
type Piece struct {
	sig []uint8
	att perm.Permutation
}

// New returns a piece with the given signature and identity attitude.
// The signature is copied.
func New(signature []uint8) Piece {
	s := make([]uint8, len(signature))
	copy(s, signature)
	att, _ := perm.Identity(len(s)) // len is never negative

	return Piece{sig: s, att: att}
}

// FromParts rebuilds a piece from a stored signature and attitude.
// Returns perm.ErrDegreeMismatch if their sizes differ.
func FromParts(signature []uint8, attitude perm.Permutation) (Piece, error) {
	if len(signature) != attitude.Degree() {
		return Piece{}, fmt.Errorf("piece: signature of %d grips, attitude of degree %d: %w",
			len(signature), attitude.Degree(), perm.ErrDegreeMismatch)
	}
	p := New(signature)
	p.att = attitude

	return p, nil
}

// Degree returns the number of grips.
func (p Piece) Degree() int { return len(p.sig) }

// SignatureAt returns the marker stored at grip.
func (p Piece) SignatureAt(grip int) (uint8, error) {
	if grip < 0 || grip >= len(p.sig) {
		return 0, fmt.Errorf("piece: grip %d, degree %d: %w", grip, len(p.sig), perm.ErrIndexOutOfRange)
	}

	return p.sig[grip], nil
}

// Touches reports whether the piece occupies grip. Out-of-range grips are
// reported as an error rather than false.
func (p Piece) Touches(grip int) (bool, error) {
	v, err := p.SignatureAt(grip)
	if err != nil {
		return false, err
	}

	return v == Touching, nil
}

// Signature returns a copy of the signature.
func (p Piece) Signature() []uint8 {
	s := make([]uint8, len(p.sig))
	copy(s, p.sig)

	return s
}

// Attitude returns the accumulated reorientation.
func (p Piece) Attitude() perm.Permutation { return p.att }

// Rotate returns the piece moved by r: the value at grip i lands on grip r(i)
// and the new attitude is Attitude().Product(r).
func (p Piece) Rotate(r perm.Permutation) (Piece, error) {
	if r.Degree() != len(p.sig) {
		return Piece{}, fmt.Errorf("piece: rotate degree %d piece by degree %d permutation: %w",
			len(p.sig), r.Degree(), perm.ErrDegreeMismatch)
	}
	img := r.Mapping()
	s := make([]uint8, len(p.sig))
	for i, v := range p.sig {
		s[img[i]] = v
	}
	att, err := p.att.Product(r)
	if err != nil {
		return Piece{}, fmt.Errorf("piece: rotate: %w", err)
	}

	return Piece{sig: s, att: att}, nil
}

// IsSolved reports whether sig[i] == sig[att(i)] for every grip i.
func (p Piece) IsSolved() bool {
	img := p.att.Mapping()
	for i, v := range p.sig {
		if v != p.sig[img[i]] {
			return false
		}
	}

	return true
}

// SameAs reports whether p and other have equal signatures.
// Pieces of different degree are a configuration error, not merely unequal.
func (p Piece) SameAs(other Piece) (bool, error) {
	if len(p.sig) != len(other.sig) {
		return false, fmt.Errorf("piece: compare degree %d with %d: %w",
			len(p.sig), len(other.sig), perm.ErrDegreeMismatch)
	}
	for i, v := range p.sig {
		if other.sig[i] != v {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports whether signature and attitude both match.
func (p Piece) Equal(other Piece) bool {
	if ok, err := p.SameAs(other); err != nil || !ok {
		return false
	}

	return p.att.Equal(other.att)
}

// Canonical returns the piece with its attitude reset to the identity;
// the signature is kept as is.
func (p Piece) Canonical() Piece {
	att, _ := perm.Identity(len(p.sig))

	return Piece{sig: p.sig, att: att}
}

// Key returns a string usable as a map key: equal keys iff SameAs.
func (p Piece) Key() string { return string(p.sig) }

// String renders signature and attitude, e.g. "{[1 0 0] | [0 1 2]}".
func (p Piece) String() string {
	return fmt.Sprintf("{%v | %v}", p.sig, p.att)
}
