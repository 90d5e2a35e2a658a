// Package syncalc computes, for a small formal model of person and number
// feature hierarchies, every consistent ordering algebra over the six
// person×number cells and the syncretism patterns those algebras license.
//
// 🚀 What is syncalc?
//
//	A typology calculator for pronominal syncretism:
//		• Hierarchies: strict precedence orders over persons {1,2,3} and numbers {s,p}
//		• Cross algebras: the conjunctive product order over the six cells
//		• Extension search: every algebra reachable by adding arcs, closed under transitivity
//		• Patterns: canonical partitions of the six cells (A A B C D E …)
//		• Monotonicity: does merging cells per a pattern introduce an order reversal?
//		• Diffing: over-/under-generation against an observed pattern inventory
//
// ✨ Why syncalc?
//
//   - Deterministic – every set-valued result is returned in a fixed sorted order
//   - Immutable values – relations and patterns are never mutated, only derived
//   - Exhaustive by construction – the extension search visits every subset, no pruning
//   - Cache-friendly – expensive enumerations memoize through a pluggable key-value store
//
// Everything is organized under focused subpackages:
//
//	hierarchy/ — person & number precedence orders + the built-in inventories
//	algebra/   — relations over cells: cross product, transitive closure, extension search
//	pattern/   — canonical syncretism patterns & isomorphism up to relabeling
//	monotone/  — monotonicity of a pattern over a base algebra
//	syncat/    — whole-inventory enumeration and generation/observation diffing
//	syncstore/ — badger-backed read-through cache for computed reports
//	dataset/   — delimited-text loader for observed pattern inventories
//	cmd/       — the syncalc "run and report" command
//
// Quick ASCII example (cross algebra of persons 1<2<3 with numbers s<p):
//
//	1s ──→ 2s ──→ 3s
//	 │      │      │
//	 ↓      ↓      ↓
//	1p ──→ 2p ──→ 3p
//
//	arrows compose transitively; no arc ever runs against either dimension.
//
// Dive into the package docs for the algebra, the canonicalization rule,
// and the monotonicity test, or run cmd/syncalc for a full report.
//
//	go get github.com/katalvlaran/syncalc
package syncalc
