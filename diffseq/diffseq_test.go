package diffseq_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vknysh/classics/diffseq"
)

// TestExtrapolate_Errors verifies input validation.
func TestExtrapolate_Errors(t *testing.T) {
	_, err := diffseq.Extrapolate(nil, 3)
	require.ErrorIs(t, err, diffseq.ErrNoTerms)

	_, err = diffseq.Extrapolate([]int64{1, 2}, -1)
	require.ErrorIs(t, err, diffseq.ErrBadCount)
}

// TestExtrapolate_KnownSequences pins hand-checkable sequences.
func TestExtrapolate_KnownSequences(t *testing.T) {
	cases := []struct {
		name  string
		terms []int64
		m     int
		want  []int64
	}{
		{"squares", []int64{1, 4, 9, 16}, 3, []int64{25, 36, 49}},
		{"cubes", []int64{0, 1, 8, 27, 64}, 2, []int64{125, 216}},
		{"triangular", []int64{1, 3, 6, 10}, 4, []int64{15, 21, 28, 36}},
		{"linear", []int64{2, 4}, 3, []int64{6, 8, 10}},
		{"constant", []int64{5, 5, 5}, 2, []int64{5, 5}},
		{"single term", []int64{7}, 3, []int64{7, 7, 7}},
		{"negative slope", []int64{10, 7, 4}, 2, []int64{1, -2}},
	}
	for _, tc := range cases {
		got, err := diffseq.Extrapolate(tc.terms, tc.m)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, got, tc.name)
	}
}

// TestExtrapolate_ZeroCount returns an empty, non-nil slice.
func TestExtrapolate_ZeroCount(t *testing.T) {
	got, err := diffseq.Extrapolate([]int64{1, 2, 3}, 0)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

// TestExtrapolate_InputUntouched ensures the caller's slice survives.
func TestExtrapolate_InputUntouched(t *testing.T) {
	terms := []int64{1, 4, 9}
	_, err := diffseq.Extrapolate(terms, 5)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 4, 9}, terms)
}

// TestExtrapolate_RandomPolynomials cross-checks against direct
// evaluation of random integer polynomials up to degree four.
func TestExtrapolate_RandomPolynomials(t *testing.T) {
	rnd := rand.New(rand.NewSource(19))
	for trial := 0; trial < 100; trial++ {
		deg := rnd.Intn(5)
		coef := make([]int64, deg+1)
		for i := range coef {
			coef[i] = int64(rnd.Intn(21) - 10)
		}
		eval := func(x int64) int64 {
			var v int64
			for i := deg; i >= 0; i-- {
				v = v*x + coef[i]
			}
			return v
		}

		k := deg + 1 + rnd.Intn(3) // at least deg+1 terms
		terms := make([]int64, k)
		for i := range terms {
			terms[i] = eval(int64(i))
		}

		const m = 6
		got, err := diffseq.Extrapolate(terms, m)
		require.NoError(t, err)
		for i := 0; i < m; i++ {
			require.Equal(t, eval(int64(k+i)), got[i],
				"trial %d deg %d term %d", trial, deg, k+i)
		}
	}
}
