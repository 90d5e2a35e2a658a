// Package dataset loads observed syncretism patterns from delimited
// text. Each data row names the form of the six cells in presentation
// order (1s 2s 3s 1p 2p 3p); rows using arbitrary form labels are
// canonicalized before comparison, so "x x y z w v" and "A A B C D E"
// describe the same observation.
//
// What:
//
//   - Row: one observation, six labels in presentation order.
//   - Load / LoadFile: read rows from delimited text, with functional
//     options for the delimiter and a header line; every malformed row
//     is rejected with its line number.
//   - Patterns: the distinct canonical patterns of a row set, sorted —
//     the shape syncat.Compare consumes.
//
// Why:
//   - The generation/observation diff needs an attested inventory; this
//     package is the only place that inventory's file format is known,
//     keeping the engine free of I/O.
//
// Errors:
//
//   - ErrRowWidth    a row does not have exactly six fields
//   - ErrEmptyLabel  a field is empty
//   - CSV and file errors are wrapped I/O errors, distinct from the
//     algebra packages' validation errors
package dataset
