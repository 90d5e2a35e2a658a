package algebra

// Close returns the transitive closure of r: the least relation
// containing r such that (a,b) and (b,c) with a≠c imply (a,c).
//
// The fixpoint is an explicit loop rather than recursion: each round
// snapshots the current arc set, scans every pair of arcs sharing an
// endpoint, and adds the composed arc; the loop ends when a full round
// adds nothing. Termination is guaranteed because the relation only
// grows inside a finite universe of ordered pairs.
//
// The a≠c guard never adds a self-loop, so closing stays compatible
// with irreflexive relations even when the extension search has added
// arcs forming a cycle: both (a,b) and (b,a) may coexist after closure,
// but (a,a) never appears.
//
// Close is idempotent: Close(Close(r)).Equal(Close(r)) for every r.
func Close(r Relation) Relation {
	closed := make(map[Arc]struct{}, r.Len())
	for _, a := range r.Arcs() {
		closed[a] = struct{}{}
	}

	for {
		// 1) Snapshot this round's arcs; additions join the scan next round.
		snapshot := make([]Arc, 0, len(closed))
		for a := range closed {
			snapshot = append(snapshot, a)
		}

		// 2) Compose every chained pair, guarding against self-loops.
		added := false
		for _, head := range snapshot {
			for _, tail := range snapshot {
				if head.To != tail.From || head.From == tail.To {
					continue
				}
				composed := Arc{From: head.From, To: tail.To}
				if _, ok := closed[composed]; !ok {
					closed[composed] = struct{}{}
					added = true
				}
			}
		}

		// 3) Fixpoint reached: the round changed nothing.
		if !added {
			break
		}
	}

	out := make([]Arc, 0, len(closed))
	for a := range closed {
		out = append(out, a)
	}

	return NewRelation(out...)
}
