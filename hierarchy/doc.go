// Package hierarchy models a strict precedence order over one grammatical
// dimension (person or number) as an immutable set of ordered label pairs.
//
// What:
//
//   - Pair: one ordered precedence statement, Before ranks ahead of After.
//   - Hierarchy: an immutable set of Pairs, built once via New and never
//     mutated afterwards. A Hierarchy need not be transitively closed;
//     closure over the combined cell universe is the algebra package's job.
//   - Elements: the sorted set of labels mentioned anywhere in the order.
//   - Validate: fail-fast configuration checks (non-empty, irreflexive,
//     single-rune labels) so malformed orders are rejected before any
//     computation begins rather than producing an empty or wrong result.
//   - Persons, Numbers: the built-in inventories of attested person and
//     number rankings the calculator enumerates over.
//
// Why:
//   - Hierarchies are static configuration for the whole calculator; every
//     downstream relation is derived from exactly two of them.
//   - Keeping them as plain value sets (rather than a graph structure with
//     mutation and locking) makes every derived computation pure.
//
// Key Types & Constants:
//
//   - Pair{Before, After string}
//   - Hierarchy — set of Pairs; Ranks(a,b) is a pure membership test
//
// Complexity:
//
//   - New:       O(P)        (P = number of pairs)
//   - Elements:  O(P·logP)
//   - Ranks:     O(1)
//   - Validate:  O(P)
//
// Errors:
//
//   - ErrEmptyHierarchy  the order contains no pairs
//   - ErrSelfPair        some pair relates a label to itself
//   - ErrLabelWidth      some label is not exactly one rune
//
// Functions:
//
//   - New(pairs ...Pair) Hierarchy
//   - Persons() map[string]Hierarchy, Numbers() map[string]Hierarchy
package hierarchy
