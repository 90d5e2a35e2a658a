// Package monotone tests whether a syncretism pattern is order-consistent
// with a base algebra: merging cells that share a pattern letter must not
// leave any merged pair ranked in both directions.
//
// What:
//
//   - Relabel: rewrites every arc of a base algebra through the mapping
//     cell → pattern letter (zipping pattern.Presentation with the
//     pattern). Cells sharing a letter become indistinguishable, so the
//     relabeled relation may contain self-arcs and, crucially, direct
//     reversals — two original arcs collapsing onto the same merged pair
//     from opposite directions.
//   - IsMonotonic: relabels and reports false exactly when the relabeled
//     relation holds both (a,b) and (b,a) for distinct letters a, b.
//     Self-arcs are harmless (a merged class trivially relates to
//     itself); a reversal between different classes is the conflict.
//   - MonotonicAlgebras: filters a keyed family of base algebras down to
//     the keys whose algebra tolerates the pattern, sorted.
//
// Why:
//   - A pattern a hierarchy pair can generate is only plausible if the
//     merge it describes respects the base order; reversals mean the
//     grammar would have to rank a form both above and below itself.
//
// Complexity: Relabel O(A), IsMonotonic O(A) on top of it,
// MonotonicAlgebras O(K·A) for K base algebras (A = arcs).
//
// Functions:
//
//   - Relabel(base algebra.Relation, pat pattern.Pattern) algebra.Relation
//   - IsMonotonic(base algebra.Relation, pat pattern.Pattern) bool
//   - MonotonicAlgebras(bases map[string]algebra.Relation, pat pattern.Pattern) []string
package monotone
