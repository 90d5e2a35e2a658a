package algebra

import (
	"sort"
	"strings"
)

// Arc is one ordered precedence pair: cell From ranks strictly before
// cell To.
type Arc struct {
	From string
	To   string
}

// Relation is an immutable set of Arcs over cell labels. Construct with
// NewRelation; every transformation returns a fresh Relation and never
// mutates its receiver, so Relations are safe to share and to use as
// map values.
//
// A Relation is "closed" when Close(r).Equal(r); closedness is a state,
// not an invariant. Relations built by Cross and Close are irreflexive;
// the monotone package may build relations containing self-arcs when
// merged cells collapse onto each other.
type Relation struct {
	arcs map[Arc]struct{}
}

// NewRelation builds a Relation from the given arcs. Duplicates collapse.
func NewRelation(arcs ...Arc) Relation {
	set := make(map[Arc]struct{}, len(arcs))
	for _, a := range arcs {
		set[a] = struct{}{}
	}

	return Relation{arcs: set}
}

// Has reports whether the arc is present.
func (r Relation) Has(a Arc) bool {
	_, ok := r.arcs[a]

	return ok
}

// Len reports the number of arcs.
func (r Relation) Len() int { return len(r.arcs) }

// Arcs returns the arcs sorted by (From, To), so that iteration order
// never depends on map layout.
func (r Relation) Arcs() []Arc {
	out := make([]Arc, 0, len(r.arcs))
	for a := range r.arcs {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// Key returns a canonical signature of the relation: the sorted arcs
// rendered "from>to" and joined with ";". Two Relations are equal as
// sets iff their Keys are equal, which makes Key the deduplication and
// caching handle for the extension search.
func (r Relation) Key() string {
	arcs := r.Arcs()
	parts := make([]string, len(arcs))
	for i, a := range arcs {
		parts[i] = a.From + ">" + a.To
	}

	return strings.Join(parts, ";")
}

// Equal reports set equality of the two relations.
func (r Relation) Equal(o Relation) bool {
	if len(r.arcs) != len(o.arcs) {
		return false
	}
	for a := range r.arcs {
		if _, ok := o.arcs[a]; !ok {
			return false
		}
	}

	return true
}

// Union returns a new Relation holding the receiver's arcs plus the
// given extras. The receiver is untouched.
func (r Relation) Union(extra ...Arc) Relation {
	set := make(map[Arc]struct{}, len(r.arcs)+len(extra))
	for a := range r.arcs {
		set[a] = struct{}{}
	}
	for _, a := range extra {
		set[a] = struct{}{}
	}

	return Relation{arcs: set}
}
