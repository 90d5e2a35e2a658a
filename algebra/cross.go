package algebra

import (
	"fmt"

	"github.com/katalvlaran/syncalc/hierarchy"
)

// Nodes returns the cell universe of the two hierarchies: every person
// label concatenated with every number label, sorted ascending.
// Six cells for the standard 3-person × 2-number model.
func Nodes(person, number hierarchy.Hierarchy) []string {
	persons := person.Elements()
	numbers := number.Elements()
	out := make([]string, 0, len(persons)*len(numbers))
	// Elements() is sorted, so the nested walk is already ordered by
	// (person, number) and needs no second sort.
	for _, p := range persons {
		for _, n := range numbers {
			out = append(out, p+n)
		}
	}

	return out
}

// Cross builds the base relation of the two hierarchies over their cell
// universe. Cell p1+n1 ranks before cell p2+n2 iff the cells differ,
// p1 equals or outranks p2 in person, and n1 equals or outranks n2 in
// number. Incomparable cells (better on one dimension, worse on the
// other) get no arc in either direction.
//
// Both hierarchies are validated first; a malformed order aborts before
// any arc is built.
func Cross(person, number hierarchy.Hierarchy) (Relation, error) {
	// 1) Fail fast on malformed configuration.
	if err := person.Validate(); err != nil {
		return Relation{}, fmt.Errorf("algebra: Cross: person %w", err)
	}
	if err := number.Validate(); err != nil {
		return Relation{}, fmt.Errorf("algebra: Cross: number %w", err)
	}

	// 2) Walk every ordered pair of distinct cells and keep the pairs
	//    that do not rank worse on either dimension.
	persons := person.Elements()
	numbers := number.Elements()
	var arcs []Arc
	for _, p1 := range persons {
		for _, n1 := range numbers {
			for _, p2 := range persons {
				for _, n2 := range numbers {
					if p1 == p2 && n1 == n2 {
						continue // identical cell, relation stays irreflexive
					}
					if (p1 == p2 || person.Ranks(p1, p2)) &&
						(n1 == n2 || number.Ranks(n1, n2)) {
						arcs = append(arcs, Arc{From: p1 + n1, To: p2 + n2})
					}
				}
			}
		}
	}

	return NewRelation(arcs...), nil
}
