package pattern

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/syncalc/algebra"
)

// Cells is the number of person×number cells in the fixed model.
const Cells = 6

// Presentation is the fixed cell order every pattern is read against.
var Presentation = [Cells]string{"1s", "2s", "3s", "1p", "2p", "3p"}

// ErrNonTransitiveTies indicates the input relation ties cells in a
// chain that is not globally transitive, leaving the first-match
// canonicalization ambiguous. Relations closed by algebra.Close never
// trigger this.
var ErrNonTransitiveTies = errors.New("pattern: ties are not transitive in input relation")

// Pattern is a canonical six-letter syncretism pattern: equal letters
// mark cells sharing one form. Patterns are comparable values, usable
// as map keys.
type Pattern [Cells]byte

// String renders the pattern as a plain six-letter string, e.g. "AABCDE".
func (p Pattern) String() string { return string(p[:]) }

// Interpret maps a closed relation to its canonical integer labeling
// over Presentation order.
//
// The first cell gets 0. Each later cell scans the earlier cells in
// order and takes the value of the first one it is tied with — tied
// meaning both (prev,cell) and (cell,prev) are arcs; with no tie it
// takes max+1. The first-match rule is pinned exactly: do not extend
// the scan past the first tie.
//
// Interpret verifies afterwards that tie-ness agreed with the assigned
// values everywhere and returns ErrNonTransitiveTies when it did not
// (possible only for relations not produced by this engine's closure).
func Interpret(r algebra.Relation) ([Cells]int, error) {
	tied := func(a, b string) bool {
		return r.Has(algebra.Arc{From: a, To: b}) && r.Has(algebra.Arc{From: b, To: a})
	}

	var seq [Cells]int
	next := 1 // next fresh class value; seq[0] is always 0
	for i := 1; i < Cells; i++ {
		matched := false
		for j := 0; j < i; j++ {
			if tied(Presentation[j], Presentation[i]) {
				seq[i] = seq[j]
				matched = true
				break // first match wins
			}
		}
		if !matched {
			seq[i] = next
			next++
		}
	}

	// Tie-transitivity audit: every pair must agree with its classes.
	for i := 1; i < Cells; i++ {
		for j := 0; j < i; j++ {
			if tied(Presentation[j], Presentation[i]) != (seq[i] == seq[j]) {
				return seq, fmt.Errorf("%w: cells %s and %s",
					ErrNonTransitiveTies, Presentation[j], Presentation[i])
			}
		}
	}

	return seq, nil
}

// Letters renders an integer labeling as a Pattern: 0→'A', 1→'B', …
// Total for values below 26; the six-cell model never exceeds 6.
func Letters(seq [Cells]int) Pattern {
	var p Pattern
	for i, v := range seq {
		p[i] = byte('A' + v)
	}

	return p
}

// PatternsOf interprets every relation of an algebra set and returns the
// distinct patterns, sorted. Many algebras typically collapse onto one
// pattern; each is reported once.
func PatternsOf(rels []algebra.Relation) ([]Pattern, error) {
	seen := make(map[Pattern]struct{}, len(rels))
	for _, r := range rels {
		seq, err := Interpret(r)
		if err != nil {
			return nil, err
		}
		seen[Letters(seq)] = struct{}{}
	}

	out := make([]Pattern, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out, nil
}
