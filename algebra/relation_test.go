package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/syncalc/algebra"
)

// TestRelation_DeduplicatesArcs verifies duplicate arcs collapse.
func TestRelation_DeduplicatesArcs(t *testing.T) {
	r := algebra.NewRelation(
		algebra.Arc{From: "A", To: "B"},
		algebra.Arc{From: "A", To: "B"},
	)
	assert.Equal(t, 1, r.Len())
}

// TestRelation_ArcsSorted verifies Arcs returns a stable (From,To) order
// regardless of construction order.
func TestRelation_ArcsSorted(t *testing.T) {
	r := algebra.NewRelation(
		algebra.Arc{From: "B", To: "C"},
		algebra.Arc{From: "A", To: "C"},
		algebra.Arc{From: "A", To: "B"},
	)
	want := []algebra.Arc{
		{From: "A", To: "B"},
		{From: "A", To: "C"},
		{From: "B", To: "C"},
	}
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, r.Arcs())
	}
}

// TestRelation_KeyIsCanonical verifies equal arc sets share a Key and
// different sets do not.
func TestRelation_KeyIsCanonical(t *testing.T) {
	r1 := algebra.NewRelation(
		algebra.Arc{From: "A", To: "B"},
		algebra.Arc{From: "B", To: "C"},
	)
	r2 := algebra.NewRelation(
		algebra.Arc{From: "B", To: "C"},
		algebra.Arc{From: "A", To: "B"},
	)
	r3 := algebra.NewRelation(algebra.Arc{From: "A", To: "B"})

	assert.Equal(t, "A>B;B>C", r1.Key())
	assert.Equal(t, r1.Key(), r2.Key())
	assert.NotEqual(t, r1.Key(), r3.Key())
}

// TestRelation_Equal verifies value equality in both directions.
func TestRelation_Equal(t *testing.T) {
	r1 := algebra.NewRelation(algebra.Arc{From: "A", To: "B"})
	r2 := algebra.NewRelation(algebra.Arc{From: "A", To: "B"})
	r3 := algebra.NewRelation(algebra.Arc{From: "B", To: "A"})

	assert.True(t, r1.Equal(r2))
	assert.True(t, r2.Equal(r1))
	assert.False(t, r1.Equal(r3))
	assert.False(t, r1.Equal(algebra.NewRelation()))
}

// TestRelation_UnionLeavesReceiverUntouched verifies Union derives a new
// relation without mutating its receiver.
func TestRelation_UnionLeavesReceiverUntouched(t *testing.T) {
	base := algebra.NewRelation(algebra.Arc{From: "A", To: "B"})
	grown := base.Union(algebra.Arc{From: "B", To: "C"})

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, grown.Len())
	assert.True(t, grown.Has(algebra.Arc{From: "A", To: "B"}))
	assert.True(t, grown.Has(algebra.Arc{From: "B", To: "C"}))
}
