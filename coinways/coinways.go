package coinways

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors for Count.
var (
	// ErrNoCoins is returned for an empty denomination set.
	ErrNoCoins = errors.New("coinways: no denominations supplied")

	// ErrBadCoin is returned for a non-positive or repeated
	// denomination.
	ErrBadCoin = errors.New("coinways: bad denomination")

	// ErrBadAmount is returned for a negative amount.
	ErrBadAmount = errors.New("coinways: amount must be non-negative")
)

// Count returns how many multisets of the given denominations sum to
// amount. An amount of zero has exactly one way (the empty payment).
func Count(amount int, coins []int) (*big.Int, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadAmount, amount)
	}
	if len(coins) == 0 {
		return nil, ErrNoCoins
	}
	seen := make(map[int]bool, len(coins))
	for i, c := range coins {
		if c <= 0 {
			return nil, fmt.Errorf("%w: coin %d = %d", ErrBadCoin, i, c)
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: coin %d repeats denomination %d", ErrBadCoin, i, c)
		}
		seen[c] = true
	}

	ways := make([]*big.Int, amount+1)
	for i := range ways {
		ways[i] = new(big.Int)
	}
	ways[0].SetInt64(1)

	// denomination-major order keeps the count order-insensitive
	for _, c := range coins {
		for s := c; s <= amount; s++ {
			ways[s].Add(ways[s], ways[s-c])
		}
	}

	return ways[amount], nil
}
