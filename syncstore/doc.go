// Package syncstore memoizes the calculator's expensive outputs in a
// persistent key-value store. The pure engine never touches it: callers
// hand Cache a recompute closure and get the cached or freshly computed
// result back, so the cache stays an optional layer rather than part of
// the algebra's contract.
//
// What:
//
//   - Store: the minimal key-value surface the cache needs — Get (with
//     ErrNotFound on miss), Set, Close. Any durable map satisfies it.
//   - BadgerStore: Store over a badger database directory.
//   - Cache: read-through, write-on-miss. Values are gob-encoded and
//     prefixed with a format version byte; a missing key, an
//     undecodable value, or a version mismatch all count as a miss and
//     trigger recompute + write-back.
//
// Why:
//   - A full inventory enumeration walks millions of candidate algebras;
//     rerunning it on every report invocation is wasteful when the
//     hierarchies have not changed.
//
// Errors:
//
//   - ErrNotFound        the key has no stored value (Store contract)
//   - storage failures   wrapped I/O errors from badger; these are
//     infrastructure errors, deliberately distinct from the algebra
//     packages' validation errors and never conflated with them
package syncstore
