package julka_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vknysh/classics/julka"
)

// TestShare_Samples pins the judge sample and small hand checks.
func TestShare_Samples(t *testing.T) {
	cases := []struct {
		total, surplus   string
		klaudia, natalia string
	}{
		{"10", "2", "6", "4"},
		{"1", "1", "1", "0"},
		{"0", "0", "0", "0"},
		{"100", "0", "50", "50"},
	}
	for _, tc := range cases {
		k, n, err := julka.Share(tc.total, tc.surplus)
		require.NoError(t, err, "Share(%s,%s)", tc.total, tc.surplus)
		require.Equal(t, tc.klaudia, k.String())
		require.Equal(t, tc.natalia, n.String())
	}
}

// TestShare_Huge exercises inputs far beyond uint64.
func TestShare_Huge(t *testing.T) {
	total := "1" + strings.Repeat("0", 100)  // 10^100
	surplus := "2" + strings.Repeat("0", 99) // 2*10^99

	k, n, err := julka.Share(total, surplus)
	require.NoError(t, err)
	require.Equal(t, "6"+strings.Repeat("0", 99), k.String())
	require.Equal(t, "4"+strings.Repeat("0", 99), n.String())

	// shares reassemble the total, and the surplus holds
	require.Equal(t, total, k.Add(k, n).String())
}

// TestShare_NoSolution rejects splits with no whole-apple answer.
func TestShare_NoSolution(t *testing.T) {
	_, _, err := julka.Share("3", "5")
	require.ErrorIs(t, err, julka.ErrNoSolution)

	_, _, err = julka.Share("10", "3") // parity mismatch
	require.ErrorIs(t, err, julka.ErrNoSolution)
}

// TestShare_BadNumbers rejects malformed input eagerly.
func TestShare_BadNumbers(t *testing.T) {
	for _, bad := range []string{"", "-4", "+4", "12x", "1 2", "0x10"} {
		_, _, err := julka.Share(bad, "0")
		require.ErrorIs(t, err, julka.ErrBadNumber, "total %q", bad)
		_, _, err = julka.Share("10", bad)
		require.ErrorIs(t, err, julka.ErrBadNumber, "surplus %q", bad)
	}
}
