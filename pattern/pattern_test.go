package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/syncalc/algebra"
	"github.com/katalvlaran/syncalc/pattern"
)

// tie builds both arcs between two cells.
func tie(a, b string) []algebra.Arc {
	return []algebra.Arc{{From: a, To: b}, {From: b, To: a}}
}

// TestInterpret_NoTiesAllDistinct verifies a relation with no mutual
// pairs labels every cell with a fresh class: ABCDEF.
func TestInterpret_NoTiesAllDistinct(t *testing.T) {
	r := algebra.NewRelation(
		algebra.Arc{From: "1s", To: "2s"},
		algebra.Arc{From: "2s", To: "3s"},
		algebra.Arc{From: "1s", To: "3s"},
	)
	seq, err := pattern.Interpret(r)
	require.NoError(t, err)
	assert.Equal(t, [6]int{0, 1, 2, 3, 4, 5}, seq)
	assert.Equal(t, "ABCDEF", pattern.Letters(seq).String())
}

// TestInterpret_FirstTwoCellsTied pins the concrete scenario: 1s and 2s
// mutually reachable, all other cells pairwise unrelated → AABCDE.
func TestInterpret_FirstTwoCellsTied(t *testing.T) {
	r := algebra.NewRelation(tie("1s", "2s")...)
	seq, err := pattern.Interpret(r)
	require.NoError(t, err)
	assert.Equal(t, [6]int{0, 0, 1, 2, 3, 4}, seq)
	assert.Equal(t, "AABCDE", pattern.Letters(seq).String())
}

// TestInterpret_FullTieClass verifies a closed three-way tie collapses
// all three cells onto the first class.
func TestInterpret_FullTieClass(t *testing.T) {
	arcs := append(tie("1s", "2s"), tie("2s", "3s")...)
	arcs = append(arcs, tie("1s", "3s")...)
	r := algebra.NewRelation(arcs...)

	seq, err := pattern.Interpret(r)
	require.NoError(t, err)
	assert.Equal(t, "AAABCD", pattern.Letters(seq).String())
}

// TestInterpret_LaterTie verifies a tie confined to the plural row still
// canonicalizes by first occurrence: 1p and 3p share the 1p class.
func TestInterpret_LaterTie(t *testing.T) {
	r := algebra.NewRelation(tie("1p", "3p")...)
	seq, err := pattern.Interpret(r)
	require.NoError(t, err)
	// Presentation order 1s 2s 3s 1p 2p 3p → classes A B C D E D.
	assert.Equal(t, "ABCDED", pattern.Letters(seq).String())
}

// TestInterpret_EmptyRelation verifies six untied cells → ABCDEF.
func TestInterpret_EmptyRelation(t *testing.T) {
	seq, err := pattern.Interpret(algebra.NewRelation())
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF", pattern.Letters(seq).String())
}

// TestInterpret_NonTransitiveTiesFlagged verifies a tie-chain lacking
// its transitive link (1s~2s, 2s~3s, but not 1s~3s — impossible for a
// closed relation) is flagged, not silently accepted.
func TestInterpret_NonTransitiveTiesFlagged(t *testing.T) {
	arcs := append(tie("1s", "2s"), tie("2s", "3s")...)
	r := algebra.NewRelation(arcs...)

	_, err := pattern.Interpret(r)
	assert.ErrorIs(t, err, pattern.ErrNonTransitiveTies)
}

// TestInterpret_ClosedRelationNeverFlags verifies closing the same
// tie-chain restores transitivity and the flag disappears.
func TestInterpret_ClosedRelationNeverFlags(t *testing.T) {
	arcs := append(tie("1s", "2s"), tie("2s", "3s")...)
	closed := algebra.Close(algebra.NewRelation(arcs...))

	seq, err := pattern.Interpret(closed)
	require.NoError(t, err)
	assert.Equal(t, "AAABCD", pattern.Letters(seq).String())
}

// TestLetters_Mapping verifies 0→A, 1→B, … and cell positions.
func TestLetters_Mapping(t *testing.T) {
	p := pattern.Letters([6]int{0, 1, 0, 2, 1, 3})
	assert.Equal(t, "ABACBD", p.String())
}

// TestPatternsOf_Deduplicates verifies distinct relations sharing a
// partition are counted once, and results come back sorted.
func TestPatternsOf_Deduplicates(t *testing.T) {
	// Same tie class, different one-way arcs elsewhere.
	r1 := algebra.NewRelation(tie("1s", "2s")...)
	r2 := algebra.NewRelation(append(tie("1s", "2s"),
		algebra.Arc{From: "3s", To: "3p"})...)
	// A different partition entirely.
	r3 := algebra.NewRelation(tie("2s", "2p")...)

	pats, err := pattern.PatternsOf([]algebra.Relation{r1, r2, r3})
	require.NoError(t, err)
	require.Len(t, pats, 2)
	assert.Equal(t, "AABCDE", pats[0].String())
	assert.Equal(t, "ABCDBE", pats[1].String())
}

// TestPatternsOf_PropagatesFlag verifies a malformed member surfaces the
// canonicalization error instead of a partial result.
func TestPatternsOf_PropagatesFlag(t *testing.T) {
	bad := algebra.NewRelation(append(tie("1s", "2s"), tie("2s", "3s")...)...)
	_, err := pattern.PatternsOf([]algebra.Relation{bad})
	assert.ErrorIs(t, err, pattern.ErrNonTransitiveTies)
}
