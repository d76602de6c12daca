package bench

import (
	"runtime"
	"sync"
	"time"

	"github.com/genomelab/itree"
)

// queryItem is one search fed to the worker pool.
type queryItem struct {
	Seq   int
	Query itree.Interval
}

// queryResult is the outcome of one search.
type queryResult struct {
	Seq  int
	Hits int
}

// ParallelResult summarizes a concurrent search run.
type ParallelResult struct {
	Backend string
	Workers int
	Queries int
	Hits    int
	Elapsed time.Duration
}

// RunParallel measures concurrent read-only search throughput on a
// prebuilt index. Only searches run concurrently; the index is never
// mutated during the run, which is the documented safe mode of the tree.
// If workers is 0, runtime.NumCPU() is used.
func (r *Runner) RunParallel(b Backend, ivs, queries []itree.Interval, workers int) (ParallelResult, error) {
	if err := r.Validate(b, ivs, queries, nil); err != nil {
		return ParallelResult{}, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	idx := b.New(ivs...)

	items := make(chan queryItem, 2*workers)
	results := make(chan queryResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for item := range items {
				results <- queryResult{
					Seq:  item.Seq,
					Hits: len(idx.Search(item.Query)),
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	start := time.Now()
	go func() {
		defer close(items)
		for seq, q := range queries {
			items <- queryItem{Seq: seq, Query: q}
		}
	}()

	hits := 0
	for res := range results {
		hits += res.Hits
	}

	return ParallelResult{
		Backend: b.Name,
		Workers: workers,
		Queries: len(queries),
		Hits:    hits,
		Elapsed: time.Since(start),
	}, nil
}
