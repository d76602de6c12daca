package itree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chromKey(iv Interval) string {
	return iv.(Span).Chrom
}

func chromSpan(chrom string, lo, hi int64) Span {
	return Span{Chrom: chrom, Low: lo, High: hi}
}

func TestGrouped_NilKeyFunc(t *testing.T) {
	g, err := NewGrouped(nil)
	assert.Error(t, err)
	assert.Nil(t, g)
}

func TestGrouped_KeysIsolateTrees(t *testing.T) {
	g, err := NewGrouped(chromKey)
	require.NoError(t, err)

	g.Insert(chromSpan("chr1", 100, 200))
	g.Insert(chromSpan("chr1", 150, 250))
	g.Insert(chromSpan("chr2", 100, 200))

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []string{"chr1", "chr2"}, g.Keys())

	// Identical coordinates on another chromosome must not match.
	got := g.Search(chromSpan("chr1", 120, 130))
	require.Len(t, got, 2)
	for _, iv := range got {
		assert.Equal(t, "chr1", iv.(Span).Chrom)
	}
	assert.Len(t, g.Search(chromSpan("chr2", 120, 130)), 1)
}

func TestGrouped_UnseenKey(t *testing.T) {
	g, err := NewGrouped(chromKey, chromSpan("chr1", 100, 200))
	require.NoError(t, err)

	assert.Empty(t, g.Search(chromSpan("chrMT", 100, 200)))
	assert.False(t, g.Remove(chromSpan("chrMT", 100, 200)))
	assert.Equal(t, 1, g.Len())
	assert.Nil(t, g.Tree("chrMT"))
}

func TestGrouped_Remove(t *testing.T) {
	g, err := NewGrouped(chromKey,
		chromSpan("chr1", 100, 200),
		chromSpan("chr2", 100, 200))
	require.NoError(t, err)

	assert.True(t, g.Remove(chromSpan("chr1", 100, 200)))
	assert.Equal(t, 1, g.Len())
	assert.Empty(t, g.Search(chromSpan("chr1", 100, 200)))
	assert.Len(t, g.Search(chromSpan("chr2", 100, 200)), 1)

	assert.False(t, g.Remove(chromSpan("chr1", 100, 200)))
}

func TestGrouped_BulkMatchesIncremental(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	chroms := []string{"chr1", "chr2", "chrX"}

	var ivs []Interval
	for _, iv := range randomSpans(rng, 300, 10000, 500) {
		s := iv.(Span)
		s.Chrom = chroms[rng.Intn(len(chroms))]
		ivs = append(ivs, s)
	}

	bulk, err := NewGrouped(chromKey, ivs...)
	require.NoError(t, err)
	incr, err := NewGrouped(chromKey)
	require.NoError(t, err)
	for _, iv := range ivs {
		incr.Insert(iv)
	}

	assert.Equal(t, incr.Len(), bulk.Len())
	assert.Equal(t, incr.Keys(), bulk.Keys())
	for _, k := range bulk.Keys() {
		checkInvariants(t, bulk.Tree(k))
	}

	for i := 0; i < 50; i++ {
		q := chromSpan(chroms[rng.Intn(len(chroms))], 0, 0)
		q.Low = rng.Int63n(10000)
		q.High = q.Low + rng.Int63n(501)
		assert.Equal(t, coordSet(incr.Search(q)), coordSet(bulk.Search(q)))
	}
}
