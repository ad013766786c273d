package wordchain

import (
	"errors"
	"fmt"
)

const alphabet = 26

// Sentinel errors for Chainable.
var (
	// ErrNoWords is returned for an empty word list.
	ErrNoWords = errors.New("wordchain: no words supplied")

	// ErrBadWord is returned when a word is empty or contains a symbol
	// outside 'a'..'z'.
	ErrBadWord = errors.New("wordchain: malformed word")
)

// Chainable reports whether every word can be used exactly once to form
// one unbroken chain, each word beginning with the final letter of the
// previous one.
func Chainable(words []string) (bool, error) {
	if len(words) == 0 {
		return false, ErrNoWords
	}

	var out, in [alphabet]int
	// Undirected adjacency for the connectivity check; 26 vertices, so
	// a bitset row per letter is plenty.
	var adj [alphabet]uint32
	var used uint32

	for idx, w := range words {
		if err := checkWord(idx, w); err != nil {
			return false, err
		}
		u := int(w[0] - 'a')
		v := int(w[len(w)-1] - 'a')
		out[u]++
		in[v]++
		adj[u] |= 1 << v
		adj[v] |= 1 << u
		used |= 1<<u | 1<<v
	}

	// Degree condition: at most one surplus start and one surplus end,
	// each off by exactly one.
	starts, ends := 0, 0
	for c := 0; c < alphabet; c++ {
		switch d := out[c] - in[c]; {
		case d == 0:
		case d == 1:
			starts++
		case d == -1:
			ends++
		default:
			return false, nil
		}
	}
	if starts > 1 || ends > 1 || starts != ends {
		return false, nil
	}

	return connected(adj, used), nil
}

// checkWord validates a single word's alphabet and length.
func checkWord(idx int, w string) error {
	if len(w) == 0 {
		return fmt.Errorf("%w: word %d is empty", ErrBadWord, idx)
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return fmt.Errorf("%w: word %d has disallowed symbol %q", ErrBadWord, idx, w[i])
		}
	}
	return nil
}

// connected runs an iterative scan from the first used letter and
// checks that every used letter is reached, ignoring edge direction.
func connected(adj [alphabet]uint32, used uint32) bool {
	if used == 0 {
		return false
	}
	start := 0
	for used&(1<<start) == 0 {
		start++
	}

	var seen uint32
	stack := []int{start}
	seen |= 1 << start
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v := 0; v < alphabet; v++ {
			if adj[u]&(1<<v) != 0 && seen&(1<<v) == 0 {
				seen |= 1 << v
				stack = append(stack, v)
			}
		}
	}

	return seen&used == used
}
