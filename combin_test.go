package nummatch_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/nummatch"
)

func TestFactorial(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "1"},
		{1, "1"},
		{5, "120"},
		{20, "2432902008176640000"},
		{25, "15511210043330985984000000"},
	}
	for _, c := range cases {
		r, err := nummatch.Factorial(c.n)
		require.NoError(t, err)
		assert.Equal(t, c.want, r.String(), "%d!", c.n)
	}
	_, err := nummatch.Factorial(-1)
	assert.ErrorIs(t, err, nummatch.ErrNegative)
	_, err = nummatch.Factorial(nummatch.MaxFactorial + 1)
	assert.ErrorIs(t, err, nummatch.ErrTooLarge)
}

func TestMultiFactorial(t *testing.T) {
	cases := []struct {
		n, k int64
		want int64
	}{
		{0, 2, 1},
		{1, 2, 1},
		{5, 2, 15},
		{6, 2, 48},
		{7, 3, 28},
		{6, 1, 720},
	}
	for _, c := range cases {
		r, err := nummatch.MultiFactorial(c.n, c.k)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(c.want), r, "%d with step %d", c.n, c.k)
	}
	_, err := nummatch.MultiFactorial(-3, 2)
	assert.ErrorIs(t, err, nummatch.ErrNegative)
	_, err = nummatch.MultiFactorial(3*nummatch.MaxFactorial, 2)
	assert.ErrorIs(t, err, nummatch.ErrTooLarge)
}

func TestPermutationsCombinations(t *testing.T) {
	cases := []struct {
		n, r int64
		p, c string
	}{
		{5, 2, "20", "10"},
		{5, 0, "1", "1"},
		{5, 5, "120", "1"},
		{5, 3, "60", "10"},
		{0, 0, "1", "1"},
		{10, 4, "5040", "210"},
		{52, 5, "311875200", "2598960"},
		{100, 98, "", "4950"},
	}
	for _, c := range cases {
		if c.p != "" {
			p, err := nummatch.Permutations(c.n, c.r)
			require.NoError(t, err)
			assert.Equal(t, c.p, p.String(), "%dP%d", c.n, c.r)
		}
		v, err := nummatch.Combinations(c.n, c.r)
		require.NoError(t, err)
		assert.Equal(t, c.c, v.String(), "%dC%d", c.n, c.r)
	}

	_, err := nummatch.Combinations(2, 5)
	assert.ErrorIs(t, err, nummatch.ErrOutOfRange)
	_, err = nummatch.Permutations(2, 5)
	assert.ErrorIs(t, err, nummatch.ErrOutOfRange)
	_, err = nummatch.Combinations(-1, 0)
	assert.ErrorIs(t, err, nummatch.ErrNegative)
	_, err = nummatch.Permutations(5, -1)
	assert.ErrorIs(t, err, nummatch.ErrNegative)
	// Large n with small r is fine; only the number of factors is bounded.
	v, err := nummatch.Combinations(1_000_000_000, 1)
	require.NoError(t, err)
	assert.Equal(t, "1000000000", v.String())
	_, err = nummatch.Permutations(1<<40, nummatch.MaxFactorial+1)
	assert.ErrorIs(t, err, nummatch.ErrTooLarge)
}
