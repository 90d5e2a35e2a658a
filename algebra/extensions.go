package algebra

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/syncalc/hierarchy"
)

// ExtensionSeq is a finite, restartable lazy sequence over the candidate
// extensions of a base relation: base ∪ subset for every subset of the
// missing-arc pool, including the empty one. Candidates are produced one
// at a time by a binary counter over the pool, so memory stays bounded
// to a single candidate regardless of pool size.
//
// The zero counter yields the base itself; Reset rewinds to it. The
// sequence is not safe for concurrent use; give each goroutine its own
// via Extensions when parallelizing.
type ExtensionSeq struct {
	base Relation
	pool []Arc
	next uint64
	size uint64 // 2^len(pool) candidates in total
}

// Extensions prepares the candidate sequence for base over the cell
// universe of the two hierarchies. The pool is every ordered pair of
// distinct cells not already in base, sorted for determinism. Returns
// ErrTooManyArcs when the pool exceeds MaxCandidateArcs; hierarchy
// validation errors are wrapped and returned before any enumeration.
func Extensions(base Relation, person, number hierarchy.Hierarchy) (*ExtensionSeq, error) {
	// 1) Fail fast on malformed configuration.
	if err := person.Validate(); err != nil {
		return nil, fmt.Errorf("algebra: Extensions: person %w", err)
	}
	if err := number.Validate(); err != nil {
		return nil, fmt.Errorf("algebra: Extensions: number %w", err)
	}

	// 2) Candidate pool: all ordered distinct-cell pairs minus base.
	nodes := Nodes(person, number)
	var pool []Arc
	for _, n1 := range nodes {
		for _, n2 := range nodes {
			if n1 == n2 {
				continue
			}
			arc := Arc{From: n1, To: n2}
			if !base.Has(arc) {
				pool = append(pool, arc)
			}
		}
	}
	sort.Slice(pool, func(i, j int) bool {
		if pool[i].From != pool[j].From {
			return pool[i].From < pool[j].From
		}

		return pool[i].To < pool[j].To
	})

	// 3) Capacity guard: refuse, never truncate.
	if len(pool) > MaxCandidateArcs {
		return nil, fmt.Errorf("%w: %d candidates, limit %d",
			ErrTooManyArcs, len(pool), MaxCandidateArcs)
	}

	return &ExtensionSeq{
		base: base,
		pool: pool,
		size: uint64(1) << uint(len(pool)),
	}, nil
}

// PoolSize reports the number of candidate arcs; the sequence yields
// 2^PoolSize candidates in total.
func (s *ExtensionSeq) PoolSize() int { return len(s.pool) }

// Reset rewinds the sequence to its first candidate (the bare base).
func (s *ExtensionSeq) Reset() { s.next = 0 }

// Next yields the next candidate extension, or ok=false once every
// subset of the pool has been produced. Each candidate is a fresh
// Relation; the base is never mutated.
func (s *ExtensionSeq) Next() (Relation, bool) {
	if s.next >= s.size {
		return Relation{}, false
	}
	mask := s.next
	s.next++

	// Decode the counter: bit i selects pool[i].
	var subset []Arc
	for i := 0; mask != 0; i++ {
		if mask&1 == 1 {
			subset = append(subset, s.pool[i])
		}
		mask >>= 1
	}

	return s.base.Union(subset...), true
}

// EnumerateClosures computes every distinct closed algebra reachable from
// base by arc addition: each candidate extension is closed under
// transitivity and the results are deduplicated by canonical Key.
// The returned slice is sorted by Key, so identical inputs always yield
// an identical slice regardless of map iteration order.
//
// This is an exhaustive 2^k walk over the candidate pool — no pruning is
// sound, because the effect of one added arc on the closure depends on
// which other arcs were added alongside it.
func EnumerateClosures(base Relation, person, number hierarchy.Hierarchy) ([]Relation, error) {
	seq, err := Extensions(base, person, number)
	if err != nil {
		return nil, err
	}

	distinct := make(map[string]Relation)
	for candidate, ok := seq.Next(); ok; candidate, ok = seq.Next() {
		closed := Close(candidate)
		key := closed.Key()
		if _, seen := distinct[key]; !seen {
			distinct[key] = closed
		}
	}

	keys := make([]string, 0, len(distinct))
	for k := range distinct {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Relation, len(keys))
	for i, k := range keys {
		out[i] = distinct[k]
	}

	return out, nil
}
