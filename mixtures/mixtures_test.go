package mixtures_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vknysh/classics/mixtures"
)

// bruteMinSmoke tries every mixing order recursively.
func bruteMinSmoke(colors []int) int {
	if len(colors) <= 1 {
		return 0
	}
	best := -1
	for i := 0; i+1 < len(colors); i++ {
		next := make([]int, 0, len(colors)-1)
		next = append(next, colors[:i]...)
		next = append(next, (colors[i]+colors[i+1])%100)
		next = append(next, colors[i+2:]...)
		cost := colors[i]*colors[i+1] + bruteMinSmoke(next)
		if best == -1 || cost < best {
			best = cost
		}
	}
	return best
}

// TestMinSmoke_Errors verifies shelf validation.
func TestMinSmoke_Errors(t *testing.T) {
	_, err := mixtures.MinSmoke(nil)
	require.ErrorIs(t, err, mixtures.ErrNoMixtures)

	_, err = mixtures.MinSmoke([]int{10, 100})
	require.ErrorIs(t, err, mixtures.ErrBadColor)

	_, err = mixtures.MinSmoke([]int{-1})
	require.ErrorIs(t, err, mixtures.ErrBadColor)
}

// TestMinSmoke_Samples pins the judge samples.
func TestMinSmoke_Samples(t *testing.T) {
	cases := []struct {
		colors []int
		want   int
	}{
		{[]int{18, 19}, 342},
		{[]int{40, 60, 20}, 2400}, // mix 40+60 first: 2400 smoke, color 0
		{[]int{7}, 0},
		{[]int{0, 0, 0}, 0},
	}
	for _, tc := range cases {
		got, err := mixtures.MinSmoke(tc.colors)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "colors %v", tc.colors)
	}
}

// TestMinSmoke_CrossCheck compares the interval DP against brute-force
// enumeration of mixing orders on random shelves.
func TestMinSmoke_CrossCheck(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for trial := 0; trial < 60; trial++ {
		n := 1 + rnd.Intn(7)
		colors := make([]int, n)
		for i := range colors {
			colors[i] = rnd.Intn(100)
		}
		got, err := mixtures.MinSmoke(colors)
		require.NoError(t, err)
		require.Equal(t, bruteMinSmoke(colors), got, "colors %v", colors)
	}
}
