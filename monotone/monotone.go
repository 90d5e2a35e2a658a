package monotone

import (
	"sort"

	"github.com/katalvlaran/syncalc/algebra"
	"github.com/katalvlaran/syncalc/pattern"
)

// Relabel rewrites every arc of base through the mapping obtained by
// zipping pattern.Presentation with pat's letters, yielding a relation
// over pattern letters instead of cells. Distinct arcs may collapse;
// merged cells may produce self-arcs or opposite-direction pairs.
// Endpoints outside the six-cell presentation pass through unchanged.
func Relabel(base algebra.Relation, pat pattern.Pattern) algebra.Relation {
	merged := make(map[string]string, pattern.Cells)
	for i, cell := range pattern.Presentation {
		merged[cell] = string(pat[i])
	}
	rename := func(cell string) string {
		if label, ok := merged[cell]; ok {
			return label
		}

		return cell
	}

	arcs := base.Arcs()
	out := make([]algebra.Arc, len(arcs))
	for i, a := range arcs {
		out[i] = algebra.Arc{From: rename(a.From), To: rename(a.To)}
	}

	return algebra.NewRelation(out...)
}

// IsMonotonic reports whether merging base's cells per pat preserves
// order-consistency: false exactly when the relabeled relation ranks two
// distinct letters in both directions. Self-arcs produced by the merge
// do not count as conflicts.
func IsMonotonic(base algebra.Relation, pat pattern.Pattern) bool {
	relabeled := Relabel(base, pat)
	for _, a := range relabeled.Arcs() {
		if a.From == a.To {
			continue
		}
		if relabeled.Has(algebra.Arc{From: a.To, To: a.From}) {
			return false
		}
	}

	return true
}

// MonotonicAlgebras returns the sorted keys of every base algebra the
// pattern is monotonic over.
func MonotonicAlgebras(bases map[string]algebra.Relation, pat pattern.Pattern) []string {
	var keys []string
	for key, base := range bases {
		if IsMonotonic(base, pat) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	return keys
}
