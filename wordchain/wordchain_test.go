package wordchain_test

import (
	"errors"
	"testing"

	"github.com/vknysh/classics/wordchain"
)

// TestChainable_Errors verifies input validation.
func TestChainable_Errors(t *testing.T) {
	if _, err := wordchain.Chainable(nil); !errors.Is(err, wordchain.ErrNoWords) {
		t.Errorf("nil list: want ErrNoWords, got %v", err)
	}
	if _, err := wordchain.Chainable([]string{"ok", ""}); !errors.Is(err, wordchain.ErrBadWord) {
		t.Errorf("empty word: want ErrBadWord, got %v", err)
	}
	if _, err := wordchain.Chainable([]string{"Acm"}); !errors.Is(err, wordchain.ErrBadWord) {
		t.Errorf("uppercase word: want ErrBadWord, got %v", err)
	}
}

// TestChainable_Cases covers the classic judge scenarios.
func TestChainable_Cases(t *testing.T) {
	cases := []struct {
		name  string
		words []string
		want  bool
	}{
		{"single word", []string{"go"}, true},
		{"acm malform mouse", []string{"acm", "malform", "mouse"}, true},
		{"acm ibm", []string{"acm", "ibm"}, false},
		{"ok pair", []string{"ok", "ko"}, true},
		{"ok loop", []string{"ok", "kale", "eel", "leek", "ko"}, true},
		{"self loop", []string{"aa"}, true},
		{"two components balanced", []string{"ab", "ba", "cd", "dc"}, false},
		{"two surplus starts", []string{"ab", "ac", "db", "eb"}, false},
		{"eulerian circuit", []string{"ab", "bc", "ca"}, true},
		{"path with endpoints", []string{"ab", "bc", "cd"}, true},
	}
	for _, tc := range cases {
		got, err := wordchain.Chainable(tc.words)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: Chainable(%v) = %v; want %v", tc.name, tc.words, got, tc.want)
		}
	}
}

// TestChainable_DuplicateWords ensures multigraph edges count per use.
func TestChainable_DuplicateWords(t *testing.T) {
	// a→a, a→a: circuit of two self-loops
	got, err := wordchain.Chainable([]string{"aba", "aca"})
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Errorf("two a→a loops should chain")
	}

	// three a→b edges cannot all be used without returning
	got, err = wordchain.Chainable([]string{"ab", "ab", "ab"})
	if err != nil {
		t.Fatal(err)
	}
	if got {
		t.Errorf("three parallel a→b edges cannot chain")
	}
}
