package itree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacy_Empty(t *testing.T) {
	tr := NewLegacy()
	assert.Equal(t, 0, tr.Len())
	assert.Empty(t, tr.Search(NewSpan(0, 100)))
}

func TestLegacy_SimpleScenario(t *testing.T) {
	tr := NewLegacy(simpleSample()...)
	assert.Equal(t, 10, tr.Len())

	got := tr.Search(NewSpan(16, 20))
	assert.ElementsMatch(t,
		[]string{"(15,23)", "(16,21)", "(17,19)", "(19,20)"},
		coordSet(got))
}

func TestLegacy_MatchesBalancedTree(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	for trial := 0; trial < 3; trial++ {
		ivs := randomSpans(rng, 500, 20000, 1000)
		legacy := NewLegacy(ivs...)
		balanced := New(ivs...)

		for _, q := range randomSpans(rng, 100, 20000, 1000) {
			assert.Equal(t, coordSet(balanced.Search(q)), coordSet(legacy.Search(q)),
				"trial=%d query=%v", trial, q)
		}
	}
}

func TestLegacy_SortedInsertStillCorrect(t *testing.T) {
	// Incremental sorted insertion degenerates the legacy tree to a list;
	// results must still be right, only slower.
	tr := NewLegacy()
	for i := int64(0); i < 200; i++ {
		tr.Insert(NewSpan(i*10, i*10+15))
	}
	oracle := NewList()
	for i := int64(0); i < 200; i++ {
		oracle.Insert(NewSpan(i*10, i*10+15))
	}

	for _, q := range []Span{NewSpan(0, 5), NewSpan(995, 1010), NewSpan(1990, 2000)} {
		assert.Equal(t, coordSet(oracle.Search(q)), coordSet(tr.Search(q)), "query=%v", q)
	}
}
