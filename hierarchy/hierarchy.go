package hierarchy

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Pair is one ordered precedence statement: Before ranks ahead of After.
type Pair struct {
	Before string
	After  string
}

// Hierarchy is an immutable strict precedence order over one dimension,
// stored as a set of Pairs. Construct with New; never mutate the map a
// Hierarchy wraps.
type Hierarchy struct {
	pairs map[Pair]struct{}
}

// New builds a Hierarchy from the given pairs. Duplicate pairs collapse.
// New performs no validation; call Validate before feeding the result to
// the algebra package.
func New(pairs ...Pair) Hierarchy {
	set := make(map[Pair]struct{}, len(pairs))
	for _, p := range pairs {
		set[p] = struct{}{}
	}

	return Hierarchy{pairs: set}
}

// Len reports the number of distinct pairs in the order.
func (h Hierarchy) Len() int { return len(h.pairs) }

// Ranks reports whether the order states that a ranks strictly before b.
func (h Hierarchy) Ranks(a, b string) bool {
	_, ok := h.pairs[Pair{Before: a, After: b}]

	return ok
}

// Pairs returns the precedence pairs sorted by (Before, After), so that
// two calls (and two equal hierarchies) always agree on order.
func (h Hierarchy) Pairs() []Pair {
	out := make([]Pair, 0, len(h.pairs))
	for p := range h.pairs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Before != out[j].Before {
			return out[i].Before < out[j].Before
		}

		return out[i].After < out[j].After
	})

	return out
}

// Elements returns every label appearing in any pair, sorted ascending.
func (h Hierarchy) Elements() []string {
	seen := make(map[string]struct{}, 2*len(h.pairs))
	for p := range h.pairs {
		seen[p.Before] = struct{}{}
		seen[p.After] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for label := range seen {
		out = append(out, label)
	}
	sort.Strings(out)

	return out
}

// Validate fails fast on malformed configuration:
//   - an empty order (ErrEmptyHierarchy),
//   - a reflexive pair (ErrSelfPair),
//   - a label wider or narrower than one rune (ErrLabelWidth).
//
// It does NOT require transitive closure; the algebra package closes
// derived relations itself.
func (h Hierarchy) Validate() error {
	if len(h.pairs) == 0 {
		return ErrEmptyHierarchy
	}
	for p := range h.pairs {
		if p.Before == p.After {
			return fmt.Errorf("%w: pair (%s,%s)", ErrSelfPair, p.Before, p.After)
		}
		if utf8.RuneCountInString(p.Before) != 1 || utf8.RuneCountInString(p.After) != 1 {
			return fmt.Errorf("%w: pair (%s,%s)", ErrLabelWidth, p.Before, p.After)
		}
	}

	return nil
}
