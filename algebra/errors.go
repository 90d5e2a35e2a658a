package algebra

import "errors"

// MaxCandidateArcs bounds the extension-search candidate pool. The search
// is a 2^k subset walk driven by a 64-bit counter, and a pool past this
// size could not finish in any realistic amount of time anyway, so larger
// inputs are refused outright rather than silently truncated.
const MaxCandidateArcs = 62

var (
	// ErrTooManyArcs indicates the candidate arc pool exceeds
	// MaxCandidateArcs and the extension search refuses to start.
	ErrTooManyArcs = errors.New("algebra: candidate arc pool exceeds capacity")
)
