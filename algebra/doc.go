// Package algebra implements the ordering-relation engine over
// person×number cells: the cross-product base relation, transitive
// closure, and the exhaustive search over arc-addition extensions.
//
// What:
//
//   - Arc: one ordered precedence pair between two cells.
//   - Relation: an immutable set of Arcs with a canonical Key for
//     value-equality comparison and deduplication. Every transformation
//     (closure, union, relabeling) produces a new Relation.
//   - Cross: builds the base relation of a person hierarchy crossed with
//     a number hierarchy. The two dimensions combine conjunctively: a
//     cell ranks before another only if it is not worse on either
//     dimension, and the cells differ. Incomparable cells get no arc in
//     either direction.
//   - Close: least transitive superset of a relation. Iterative fixpoint:
//     each round scans all arc pairs sharing an endpoint and adds the
//     composed arc, until a full round adds nothing. The a≠c guard keeps
//     the closure irreflexive even when artificial arc additions have
//     created cycles.
//   - Extensions / EnumerateClosures: the exhaustive search. The candidate
//     pool is every ordered pair of distinct cells not already in the
//     base; Extensions yields base ∪ subset for every subset of the pool
//     (including the empty one), one candidate at a time, restartable;
//     EnumerateClosures closes each candidate and collects the distinct
//     closed algebras.
//
// Why:
//   - The set of closed algebras reachable from a base order is exactly
//     the space of rankings a grammar could impose on the six cells; the
//     pattern package reads syncretism typologies off that space.
//   - No pruning is sound here: a seemingly redundant arc can change the
//     post-closure algebra depending on what else was added, so every
//     subset must be evaluated.
//
// Complexity (V = cells, A = arcs, k = candidate-pool size):
//
//   - Cross:              O(V²)
//   - Close:              O(A³) worst case (≤ V² rounds of an A² scan)
//   - Extensions.Next:    O(A) per candidate, O(1) extra memory
//   - EnumerateClosures:  O(2ᵏ · A³) — exhaustive by design; k ≤ 30 for
//     the fixed six-cell model, hard-capped at MaxCandidateArcs
//
// Errors:
//
//   - ErrTooManyArcs            candidate pool exceeds MaxCandidateArcs
//   - hierarchy validation errors, wrapped, from Cross and Extensions
//
// Functions:
//
//   - NewRelation(arcs ...Arc) Relation
//   - Cross(person, number hierarchy.Hierarchy) (Relation, error)
//   - Close(r Relation) Relation
//   - Extensions(base Relation, person, number hierarchy.Hierarchy) (*ExtensionSeq, error)
//   - EnumerateClosures(base Relation, person, number hierarchy.Hierarchy) ([]Relation, error)
package algebra
