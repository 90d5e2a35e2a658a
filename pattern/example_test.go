package pattern_test

import (
	"fmt"

	"github.com/katalvlaran/syncalc/algebra"
	"github.com/katalvlaran/syncalc/pattern"
)

// ExampleInterpret canonicalizes a relation tying 1s and 2s (arcs in
// both directions) with every other cell unrelated:
//
//	1s ⇄ 2s    3s    1p    2p    3p
//
// The tied pair shares class A; the remaining cells each get a fresh
// letter in presentation order.
func ExampleInterpret() {
	r := algebra.NewRelation(
		algebra.Arc{From: "1s", To: "2s"},
		algebra.Arc{From: "2s", To: "1s"},
	)

	seq, err := pattern.Interpret(r)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(pattern.Letters(seq))

	// Output:
	// AABCDE
}

// ExampleIsIsomorphic compares two observed rows written with different
// form labels: both describe "first two cells share a form".
func ExampleIsIsomorphic() {
	fmt.Println(pattern.IsIsomorphic(
		[]string{"x", "x", "y", "z", "w", "v"},
		[]string{"A", "A", "B", "C", "D", "E"},
	))
	fmt.Println(pattern.IsIsomorphic(
		[]string{"A", "B", "A"},
		[]string{"A", "B", "B"},
	))

	// Output:
	// true
	// false
}
