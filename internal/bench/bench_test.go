package bench

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genomelab/itree"
)

func randomSpans(rng *rand.Rand, n int, coordMax, width int64) []itree.Interval {
	ivs := make([]itree.Interval, n)
	for i := range ivs {
		start := rng.Int63n(coordMax)
		ivs[i] = itree.NewSpan(start, start+rng.Int63n(width+1))
	}
	return ivs
}

func TestRunner_AllBackends(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ivs := randomSpans(rng, 200, 5000, 300)
	searches := randomSpans(rng, 40, 5000, 300)
	removes := append([]itree.Interval(nil), ivs[:40]...)

	r := NewRunner(2)
	for _, b := range Backends() {
		results, err := r.Run(b, ivs, searches, removes)
		require.NoError(t, err, "backend %s", b.Name)

		require.NotEmpty(t, results)
		byOp := map[string]Result{}
		for _, res := range results {
			byOp[res.Op] = res
		}

		// Two repeats of every op set, one histogram sample per op.
		assert.EqualValues(t, 2*len(ivs), byOp["insert"].Hist.TotalCount(), "backend %s", b.Name)
		assert.EqualValues(t, 2*len(searches), byOp["search"].Hist.TotalCount(), "backend %s", b.Name)

		if b.Name == "legacy" {
			assert.NotContains(t, byOp, "remove", "legacy backend has no removal")
		} else {
			assert.EqualValues(t, 2*len(removes), byOp["remove"].Hist.TotalCount(), "backend %s", b.Name)
		}
	}
}

func TestBackendByName(t *testing.T) {
	b, err := BackendByName("balanced")
	require.NoError(t, err)
	assert.Equal(t, "balanced", b.Name)

	_, err = BackendByName("btree")
	assert.Error(t, err)
}

// brokenIndex drops every second insert, so validation must reject it.
type brokenIndex struct {
	inner *itree.Tree
	n     int
}

func (b *brokenIndex) Insert(iv itree.Interval) {
	b.n++
	if b.n%2 == 0 {
		return
	}
	b.inner.Insert(iv)
}
func (b *brokenIndex) Search(q itree.Interval) []itree.Interval { return b.inner.Search(q) }
func (b *brokenIndex) Len() int                                 { return b.inner.Len() }

func TestValidate_CatchesBrokenBackend(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	ivs := randomSpans(rng, 100, 1000, 100)
	searches := randomSpans(rng, 20, 1000, 100)

	broken := Backend{Name: "broken", New: func(ivs ...itree.Interval) itree.Index {
		idx := &brokenIndex{inner: itree.New()}
		for _, iv := range ivs {
			idx.Insert(iv)
		}
		return idx
	}}

	r := NewRunner(1)
	_, err := r.Run(broken, ivs, searches, nil)
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	ivs := randomSpans(rng, 50, 1000, 100)

	r := NewRunner(1)
	results, err := r.Run(Backends()[0], ivs, ivs[:10], nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteReport(&buf, results)
	out := buf.String()
	assert.Contains(t, out, "balanced")
	assert.Contains(t, out, "insert")
	assert.Contains(t, out, "search")
}

func TestRunParallel(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	ivs := randomSpans(rng, 300, 5000, 300)
	queries := randomSpans(rng, 100, 5000, 300)

	// Serial hit count is the ground truth for the concurrent run.
	idx := itree.New(ivs...)
	wantHits := 0
	for _, q := range queries {
		wantHits += len(idx.Search(q))
	}

	r := NewRunner(1)
	for _, workers := range []int{1, 4} {
		res, err := r.RunParallel(Backends()[0], ivs, queries, workers)
		require.NoError(t, err)
		assert.Equal(t, workers, res.Workers)
		assert.Equal(t, len(queries), res.Queries)
		assert.Equal(t, wantHits, res.Hits)
	}
}
