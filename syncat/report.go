package syncat

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/syncalc/algebra"
	"github.com/katalvlaran/syncalc/hierarchy"
	"github.com/katalvlaran/syncalc/pattern"
)

// PairKey names one pairing of a person hierarchy with a number
// hierarchy, by their inventory keys (e.g. {"123","sp"}).
type PairKey struct {
	Person string
	Number string
}

// String renders the pairing as "person/number".
func (k PairKey) String() string { return k.Person + "/" + k.Number }

// Report aggregates the generated typology: the distinct syncretism
// patterns per pairing, and their union across all pairings. Both
// levels are sorted; Reports produced from equal inventories compare
// equal field by field.
type Report struct {
	Patterns map[PairKey][]pattern.Pattern
	Total    []pattern.Pattern
}

// sortedKeys returns map keys in a fixed order so every walk over an
// inventory is deterministic.
func sortedKeys(m map[string]hierarchy.Hierarchy) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Enumerate runs the full pipeline for every pairing of the two
// inventories: cross algebra → closed extensions → canonical patterns.
// Pairings are processed in sorted key order; the first failing pairing
// aborts with its error wrapped under the pairing name.
func Enumerate(persons, numbers map[string]hierarchy.Hierarchy) (*Report, error) {
	report := &Report{
		Patterns: make(map[PairKey][]pattern.Pattern, len(persons)*len(numbers)),
	}
	total := make(map[pattern.Pattern]struct{})

	for _, numKey := range sortedKeys(numbers) {
		for _, persKey := range sortedKeys(persons) {
			key := PairKey{Person: persKey, Number: numKey}

			// 1) Base algebra of the pairing.
			base, err := algebra.Cross(persons[persKey], numbers[numKey])
			if err != nil {
				return nil, fmt.Errorf("syncat: Enumerate %s: %w", key, err)
			}

			// 2) Every closed algebra reachable by arc addition.
			closures, err := algebra.EnumerateClosures(base, persons[persKey], numbers[numKey])
			if err != nil {
				return nil, fmt.Errorf("syncat: Enumerate %s: %w", key, err)
			}

			// 3) Distinct canonical patterns of those algebras.
			patterns, err := pattern.PatternsOf(closures)
			if err != nil {
				return nil, fmt.Errorf("syncat: Enumerate %s: %w", key, err)
			}

			report.Patterns[key] = patterns
			for _, p := range patterns {
				total[p] = struct{}{}
			}
		}
	}

	report.Total = make([]pattern.Pattern, 0, len(total))
	for p := range total {
		report.Total = append(report.Total, p)
	}
	sort.Slice(report.Total, func(i, j int) bool {
		return report.Total[i].String() < report.Total[j].String()
	})

	return report, nil
}

// BaseAlgebras builds the un-extended cross algebra of every pairing,
// keyed "person/number". These are the relations the monotonicity test
// relabels; they are never extended or closed here.
func BaseAlgebras(persons, numbers map[string]hierarchy.Hierarchy) (map[string]algebra.Relation, error) {
	out := make(map[string]algebra.Relation, len(persons)*len(numbers))
	for _, numKey := range sortedKeys(numbers) {
		for _, persKey := range sortedKeys(persons) {
			key := PairKey{Person: persKey, Number: numKey}
			base, err := algebra.Cross(persons[persKey], numbers[numKey])
			if err != nil {
				return nil, fmt.Errorf("syncat: BaseAlgebras %s: %w", key, err)
			}
			out[key.String()] = base
		}
	}

	return out, nil
}
