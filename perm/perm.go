// SPDX-License-Identifier: MIT

package perm

import (
	"fmt"
	"strconv"
	"strings"
)

// Permutation is a bijection on [0, Degree()).
// The zero value is the (empty) permutation of degree 0.
// Values are immutable: every operation returns a fresh Permutation.
type Permutation struct {
	mapping []int // mapping[i] is the image of i
}

// New validates mapping and returns the permutation i → mapping[i].
// The slice is copied; later changes to it do not affect the result.
// Returns ErrNotBijection if an index is repeated or out of range.
func New(mapping []int) (Permutation, error) {
	n := len(mapping)
	seen := make([]bool, n)
	for i, v := range mapping {
		if v < 0 || v >= n {
			return Permutation{}, fmt.Errorf("%w: mapping[%d] = %d outside [0,%d)", ErrNotBijection, i, v, n)
		}
		if seen[v] {
			return Permutation{}, fmt.Errorf("%w: image %d repeated at position %d", ErrNotBijection, v, i)
		}
		seen[v] = true
	}
	m := make([]int, n)
	copy(m, mapping)

	return Permutation{mapping: m}, nil
}

// MustNew is like New but panics on an invalid mapping.
// It is meant for literal configuration tables only.
func MustNew(mapping []int) Permutation {
	p, err := New(mapping)
	if err != nil {
		panic(err)
	}

	return p
}

// Identity returns the identity permutation of the given degree.
// A negative degree yields ErrIndexOutOfRange.
func Identity(degree int) (Permutation, error) {
	if degree < 0 {
		return Permutation{}, fmt.Errorf("%w: degree %d", ErrIndexOutOfRange, degree)
	}

	return identity(degree), nil
}

// identity builds the identity without validation; degree must be >= 0.
func identity(degree int) Permutation {
	m := make([]int, degree)
	for i := range m {
		m[i] = i
	}

	return Permutation{mapping: m}
}

// Degree returns the size of the permutation's domain.
func (p Permutation) Degree() int { return len(p.mapping) }

// Apply returns the image of index i.
func (p Permutation) Apply(i int) (int, error) {
	if i < 0 || i >= len(p.mapping) {
		return 0, fmt.Errorf("%w: index %d, degree %d", ErrIndexOutOfRange, i, len(p.mapping))
	}

	return p.mapping[i], nil
}

// Inverse returns q with q(p(i)) = i for all i.
func (p Permutation) Inverse() Permutation {
	inv := make([]int, len(p.mapping))
	for i, v := range p.mapping {
		inv[v] = i
	}

	return Permutation{mapping: inv}
}

// Product returns c with c(i) = other(p(i)): p is applied first.
// Returns ErrDegreeMismatch if the degrees differ.
func (p Permutation) Product(other Permutation) (Permutation, error) {
	if len(p.mapping) != len(other.mapping) {
		return Permutation{}, fmt.Errorf("%w: product of degree %d and %d",
			ErrDegreeMismatch, len(p.mapping), len(other.mapping))
	}

	return p.product(other), nil
}

// product assumes equal degrees.
func (p Permutation) product(other Permutation) Permutation {
	c := make([]int, len(p.mapping))
	for i, v := range p.mapping {
		c[i] = other.mapping[v]
	}

	return Permutation{mapping: c}
}

// Exp applies p to every index n times, starting from the identity, so
// Exp(0) is the identity and Exp(1) equals p.
// Returns ErrNegativeExponent for n < 0.
func (p Permutation) Exp(n int) (Permutation, error) {
	if n < 0 {
		return Permutation{}, fmt.Errorf("%w: %d", ErrNegativeExponent, n)
	}
	e := identity(len(p.mapping))
	for i := range e.mapping {
		for k := 0; k < n; k++ {
			e.mapping[i] = p.mapping[e.mapping[i]]
		}
	}

	return e, nil
}

// Compose returns ps[0]·ps[1]·…·ps[k-1] using the Product convention, i.e.
// ps[0] is applied first. All operands must share one degree.
// Compose with no operands is an error because the degree is unknown.
func Compose(ps ...Permutation) (Permutation, error) {
	if len(ps) == 0 {
		return Permutation{}, fmt.Errorf("%w: nothing to compose", ErrDegreeMismatch)
	}
	acc := ps[0]
	for k, q := range ps[1:] {
		if q.Degree() != acc.Degree() {
			return Permutation{}, fmt.Errorf("%w: operand %d has degree %d, want %d",
				ErrDegreeMismatch, k+1, q.Degree(), acc.Degree())
		}
		acc = acc.product(q)
	}

	return acc, nil
}

// Equal reports whether p and q have the same degree and mapping.
func (p Permutation) Equal(q Permutation) bool {
	if len(p.mapping) != len(q.mapping) {
		return false
	}
	for i, v := range p.mapping {
		if q.mapping[i] != v {
			return false
		}
	}

	return true
}

// IsIdentity reports whether p fixes every index.
func (p Permutation) IsIdentity() bool {
	for i, v := range p.mapping {
		if v != i {
			return false
		}
	}

	return true
}

// Mapping returns a copy of the image array.
func (p Permutation) Mapping() []int {
	m := make([]int, len(p.mapping))
	copy(m, p.mapping)

	return m
}

// String renders the image array, e.g. "[1 2 0]".
func (p Permutation) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range p.mapping {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')

	return b.String()
}
