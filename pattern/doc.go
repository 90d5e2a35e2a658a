// Package pattern canonicalizes closed ordering algebras into syncretism
// patterns: partitions of the six person×number cells into classes of
// cells sharing one form.
//
// What:
//
//   - Presentation: the fixed cell order [1s 2s 3s 1p 2p 3p] every
//     pattern is read against.
//   - Interpret: maps a closed relation to a canonical integer labeling.
//     Cells are processed in Presentation order; the first cell gets 0;
//     each later cell takes the value of the FIRST earlier cell it is
//     tied with (arcs present in both directions), or max+1 when no
//     earlier cell ties. First-match-wins is deliberate: for relations
//     produced by algebra.Close, tie-ness is transitive, so the first
//     match settles the class — and the exact rule is pinned so outputs
//     stay comparable across versions.
//   - Letters: renders an integer labeling as letters, 0→A, 1→B, …
//   - Pattern: a comparable six-letter value, e.g. AABCDE for "1s and 2s
//     share a form, all other cells are distinct".
//   - PatternsOf: patterns of a whole algebra set, distinct and sorted —
//     many different algebras collapse onto one pattern.
//   - CanonicalizeSequence / IsIsomorphic / Canonicalize: first-occurrence
//     renumbering of arbitrary label sequences, so two patterns written
//     with different letters compare equal iff they describe the same
//     partition.
//
// Why:
//   - Patterns are the typological payload: which cells a grammar may
//     realize identically. Everything upstream exists to produce them,
//     and everything downstream (monotonicity, diffing) consumes them.
//
// Complexity: every function is O(1) for the fixed six-cell model
// (constant-size scans); PatternsOf is O(N·logN) in the algebra count.
//
// Errors:
//
//   - ErrNonTransitiveTies  a tie-chain in the input relation is not
//     globally transitive, so the first-match rule would be ambiguous;
//     flagged rather than silently accepted. Never occurs for relations
//     built by algebra.Close.
package pattern
