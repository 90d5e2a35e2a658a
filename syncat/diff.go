package syncat

import (
	"sort"

	"github.com/katalvlaran/syncalc/algebra"
	"github.com/katalvlaran/syncalc/monotone"
	"github.com/katalvlaran/syncalc/pattern"
)

// Diff splits a generated pattern set against an observed one. All three
// slices are sorted and duplicate-free.
type Diff struct {
	// Attested patterns are both generated and observed.
	Attested []pattern.Pattern
	// Overgenerated patterns are generated but never observed.
	Overgenerated []pattern.Pattern
	// Undergenerated patterns are observed but never generated.
	Undergenerated []pattern.Pattern
}

// Compare diffs generated against observed patterns by value.
// Inputs need not be sorted or duplicate-free.
func Compare(generated, observed []pattern.Pattern) Diff {
	genSet := make(map[pattern.Pattern]struct{}, len(generated))
	for _, p := range generated {
		genSet[p] = struct{}{}
	}
	obsSet := make(map[pattern.Pattern]struct{}, len(observed))
	for _, p := range observed {
		obsSet[p] = struct{}{}
	}

	var d Diff
	for p := range genSet {
		if _, ok := obsSet[p]; ok {
			d.Attested = append(d.Attested, p)
		} else {
			d.Overgenerated = append(d.Overgenerated, p)
		}
	}
	for p := range obsSet {
		if _, ok := genSet[p]; !ok {
			d.Undergenerated = append(d.Undergenerated, p)
		}
	}

	for _, s := range [][]pattern.Pattern{d.Attested, d.Overgenerated, d.Undergenerated} {
		sort.Slice(s, func(i, j int) bool { return s[i].String() < s[j].String() })
	}

	return d
}

// MonotonicityReport maps every observed pattern to the sorted keys of
// the base algebras it is monotonic over. A pattern mapped to an empty
// list is monotonic over no base at all — observed yet unreachable
// without an order reversal.
func MonotonicityReport(bases map[string]algebra.Relation, observed []pattern.Pattern) map[pattern.Pattern][]string {
	out := make(map[pattern.Pattern][]string, len(observed))
	for _, p := range observed {
		if _, done := out[p]; done {
			continue
		}
		out[p] = monotone.MonotonicAlgebras(bases, p)
	}

	return out
}
