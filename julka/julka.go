package julka

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors for Share.
var (
	// ErrBadNumber is returned when an input is not a non-negative
	// decimal integer.
	ErrBadNumber = errors.New("julka: not a non-negative decimal integer")

	// ErrNoSolution is returned when the split has no non-negative
	// whole-apple solution.
	ErrNoSolution = errors.New("julka: no integer split exists")
)

// Share computes both children's shares from the apple total and
// Klaudia's surplus over Natalia. Both arguments are decimal strings.
func Share(total, surplus string) (klaudia, natalia *big.Int, err error) {
	t, err := parse("total", total)
	if err != nil {
		return nil, nil, err
	}
	s, err := parse("surplus", surplus)
	if err != nil {
		return nil, nil, err
	}

	// klaudia = (t+s)/2, natalia = (t-s)/2; both must be whole and
	// non-negative.
	if t.Cmp(s) < 0 {
		return nil, nil, fmt.Errorf("%w: surplus exceeds total", ErrNoSolution)
	}
	sum := new(big.Int).Add(t, s)
	if sum.Bit(0) != 0 {
		return nil, nil, fmt.Errorf("%w: total and surplus differ in parity", ErrNoSolution)
	}

	klaudia = sum.Rsh(sum, 1)
	natalia = new(big.Int).Sub(t, klaudia)
	return klaudia, natalia, nil
}

// parse converts a decimal string, rejecting signs, spaces, and empty
// input along with anything else SetString refuses in base 10.
func parse(name, s string) (*big.Int, error) {
	if len(s) == 0 || s[0] == '+' || s[0] == '-' {
		return nil, fmt.Errorf("%w: %s %q", ErrBadNumber, name, s)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s %q", ErrBadNumber, name, s)
	}
	return v, nil
}
