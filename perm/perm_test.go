// SPDX-License-Identifier: MIT

package perm_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hypercell/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomPerm draws a permutation of degree n from r (Fisher–Yates via rand.Perm).
func randomPerm(t *testing.T, r *rand.Rand, n int) perm.Permutation {
	t.Helper()
	p, err := perm.New(r.Perm(n))
	require.NoError(t, err)

	return p
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name    string
		mapping []int
		wantErr error
	}{
		{"empty", []int{}, nil},
		{"identity3", []int{0, 1, 2}, nil},
		{"cycle", []int{1, 2, 0}, nil},
		{"repeat", []int{0, 0, 2}, perm.ErrNotBijection},
		{"too large", []int{0, 3, 1}, perm.ErrNotBijection},
		{"negative", []int{-1, 0}, perm.ErrNotBijection},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := perm.New(tc.mapping)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	m := []int{1, 0}
	p, err := perm.New(m)
	require.NoError(t, err)
	m[0], m[1] = 0, 1
	assert.Equal(t, []int{1, 0}, p.Mapping())
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { perm.MustNew([]int{1, 1}) })
	assert.NotPanics(t, func() { perm.MustNew([]int{1, 0}) })
}

func TestIdentity(t *testing.T) {
	id, err := perm.Identity(4)
	require.NoError(t, err)
	assert.Equal(t, 4, id.Degree())
	assert.True(t, id.IsIdentity())

	_, err = perm.Identity(-1)
	assert.ErrorIs(t, err, perm.ErrIndexOutOfRange)
}

func TestProduct_Convention(t *testing.T) {
	a := perm.MustNew([]int{1, 2, 0})
	b := perm.MustNew([]int{0, 2, 1})

	c, err := a.Product(b)
	require.NoError(t, err)
	// c(i) = b(a(i))
	assert.Equal(t, []int{2, 1, 0}, c.Mapping())

	d, err := b.Product(a)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, d.Mapping())
}

func TestProduct_DegreeMismatch(t *testing.T) {
	a := perm.MustNew([]int{1, 0})
	b := perm.MustNew([]int{0, 1, 2})
	_, err := a.Product(b)
	assert.ErrorIs(t, err, perm.ErrDegreeMismatch)
}

func TestInverse(t *testing.T) {
	a := perm.MustNew([]int{1, 2, 0})
	assert.Equal(t, []int{2, 0, 1}, a.Inverse().Mapping())
}

func TestExp(t *testing.T) {
	a := perm.MustNew([]int{1, 2, 0})

	e0, err := a.Exp(0)
	require.NoError(t, err)
	assert.True(t, e0.IsIdentity())
	assert.Equal(t, 3, e0.Degree())

	e1, err := a.Exp(1)
	require.NoError(t, err)
	assert.True(t, e1.Equal(a))

	e2, err := a.Exp(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, e2.Mapping())

	e3, err := a.Exp(3)
	require.NoError(t, err)
	assert.True(t, e3.IsIdentity())

	_, err = a.Exp(-1)
	assert.ErrorIs(t, err, perm.ErrNegativeExponent)
}

func TestExp_MatchesRepeatedProduct(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	a := randomPerm(t, r, 9)
	acc, _ := perm.Identity(9)
	for n := 0; n < 12; n++ {
		e, err := a.Exp(n)
		require.NoError(t, err)
		assert.True(t, e.Equal(acc), "Exp(%d)", n)
		acc, err = acc.Product(a)
		require.NoError(t, err)
	}
}

func TestApply(t *testing.T) {
	a := perm.MustNew([]int{2, 0, 1})
	v, err := a.Apply(0)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = a.Apply(3)
	assert.ErrorIs(t, err, perm.ErrIndexOutOfRange)
	_, err = a.Apply(-1)
	assert.ErrorIs(t, err, perm.ErrIndexOutOfRange)
}

// TestGroupLaws checks identity, inverse and associativity on random permutations.
func TestGroupLaws(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	const deg = 11
	id, _ := perm.Identity(deg)
	for trial := 0; trial < 50; trial++ {
		a := randomPerm(t, r, deg)
		b := randomPerm(t, r, deg)
		c := randomPerm(t, r, deg)

		ai, err := a.Product(id)
		require.NoError(t, err)
		assert.True(t, ai.Equal(a))

		ia, err := id.Product(a)
		require.NoError(t, err)
		assert.True(t, ia.Equal(a))

		aa, err := a.Product(a.Inverse())
		require.NoError(t, err)
		assert.True(t, aa.IsIdentity())

		ab, _ := a.Product(b)
		abc1, _ := ab.Product(c)
		bc, _ := b.Product(c)
		abc2, _ := a.Product(bc)
		assert.True(t, abc1.Equal(abc2))

		composed, err := perm.Compose(a, b, c)
		require.NoError(t, err)
		assert.True(t, composed.Equal(abc1))
	}
}

func TestCompose_Errors(t *testing.T) {
	_, err := perm.Compose()
	assert.ErrorIs(t, err, perm.ErrDegreeMismatch)

	_, err = perm.Compose(perm.MustNew([]int{0}), perm.MustNew([]int{1, 0}))
	assert.ErrorIs(t, err, perm.ErrDegreeMismatch)

	single := perm.MustNew([]int{1, 0})
	got, err := perm.Compose(single)
	require.NoError(t, err)
	assert.True(t, got.Equal(single))
}

func TestEqual(t *testing.T) {
	assert.True(t, perm.MustNew([]int{1, 0}).Equal(perm.MustNew([]int{1, 0})))
	assert.False(t, perm.MustNew([]int{1, 0}).Equal(perm.MustNew([]int{0, 1})))
	assert.False(t, perm.MustNew([]int{0}).Equal(perm.MustNew([]int{0, 1})))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[2 0 1]", perm.MustNew([]int{2, 0, 1}).String())
	assert.Equal(t, "[]", perm.Permutation{}.String())
}

func TestJSON(t *testing.T) {
	a := perm.MustNew([]int{3, 1, 0, 2})
	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `[3,1,0,2]`, string(data))

	var b perm.Permutation
	require.NoError(t, json.Unmarshal(data, &b))
	assert.True(t, a.Equal(b))

	assert.ErrorIs(t, json.Unmarshal([]byte(`[0,0]`), &b), perm.ErrNotBijection)
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &b))
}
