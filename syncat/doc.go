// Package syncat drives the calculator across whole hierarchy
// inventories and compares the generated typology against observation.
//
// What:
//
//   - PairKey: one pairing of a named person hierarchy with a named
//     number hierarchy.
//   - Enumerate: for every pairing, build the cross algebra, enumerate
//     its closed extensions, canonicalize them into patterns, and
//     aggregate the per-pairing sets plus their union into a Report.
//   - BaseAlgebras: the un-extended cross algebras of every pairing,
//     keyed "person/number" — the inputs the monotonicity test runs over.
//   - Compare: splits generated vs. observed patterns into Attested
//     (both), Overgenerated (generated, never observed) and
//     Undergenerated (observed, never generated).
//   - MonotonicityReport: for every observed pattern, the base algebras
//     it is monotonic over; observed patterns monotonic over no base at
//     all are the interesting residue.
//
// Why:
//   - The per-pairing pattern sets are the typological predictions of
//     each hierarchy combination; diffing them against an attested
//     inventory is the whole point of the calculator.
//
// Complexity: Enumerate is dominated by the extension search — an
// exhaustive 2^k walk per pairing (see package algebra). Everything else
// is linear glue over the resulting pattern sets.
//
// Functions:
//
//   - Enumerate(persons, numbers map[string]hierarchy.Hierarchy) (*Report, error)
//   - BaseAlgebras(persons, numbers map[string]hierarchy.Hierarchy) (map[string]algebra.Relation, error)
//   - Compare(generated, observed []pattern.Pattern) Diff
//   - MonotonicityReport(bases map[string]algebra.Relation, observed []pattern.Pattern) map[pattern.Pattern][]string
package syncat
