package wordchain_test

import (
	"fmt"

	"github.com/vknysh/classics/wordchain"
)

// ExampleChainable checks the classic "play on words" sample.
func ExampleChainable() {
	ok, err := wordchain.Chainable([]string{"acm", "malform", "mouse"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ok)
	// Output:
	// true
}
