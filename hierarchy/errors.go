package hierarchy

import "errors"

var (
	// ErrEmptyHierarchy indicates a hierarchy with no precedence pairs.
	ErrEmptyHierarchy = errors.New("hierarchy: order must contain at least one pair")
	// ErrSelfPair indicates a pair relating a label to itself, which would
	// break the irreflexivity invariant of every derived relation.
	ErrSelfPair = errors.New("hierarchy: order must be irreflexive")
	// ErrLabelWidth indicates a label that is not exactly one rune; node
	// labels are formed by concatenation, so wider labels would make the
	// person/number decomposition of a cell ambiguous.
	ErrLabelWidth = errors.New("hierarchy: labels must be exactly one rune")
)
