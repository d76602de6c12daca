// Package bench compares the interval index implementations against each
// other: per-operation latencies for insert, search and remove, with the
// results validated against the linear-scan oracle before anything is
// timed.
package bench

import (
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"github.com/genomelab/itree"
)

// Backend names a constructor for one of the index implementations.
type Backend struct {
	Name string
	New  func(ivs ...itree.Interval) itree.Index
}

// Backends returns the benchmarkable implementations.
func Backends() []Backend {
	return []Backend{
		{Name: "balanced", New: func(ivs ...itree.Interval) itree.Index { return itree.New(ivs...) }},
		{Name: "legacy", New: func(ivs ...itree.Interval) itree.Index { return itree.NewLegacy(ivs...) }},
		{Name: "list", New: func(ivs ...itree.Interval) itree.Index { return itree.NewList(ivs...) }},
	}
}

// BackendByName returns the named backend.
func BackendByName(name string) (Backend, error) {
	for _, b := range Backends() {
		if b.Name == name {
			return b, nil
		}
	}
	return Backend{}, fmt.Errorf("unknown backend %q", name)
}

// Remover is implemented by backends that support removal.
type Remover interface {
	Remove(iv itree.Interval) bool
}

// Result holds the recorded latencies of one operation on one backend.
type Result struct {
	Backend  string
	Op       string
	TreeSize int
	OpCount  int
	Hist     *hdrhistogram.Histogram
}

// Runner executes benchmark rounds.
type Runner struct {
	// Repeat is how many times each operation set is replayed.
	Repeat int
	logger *zap.Logger
}

// NewRunner creates a runner replaying each operation set repeat times.
func NewRunner(repeat int) *Runner {
	if repeat <= 0 {
		repeat = 1
	}
	return &Runner{Repeat: repeat, logger: zap.NewNop()}
}

// SetLogger sets the logger for validation diagnostics.
func (r *Runner) SetLogger(l *zap.Logger) {
	r.logger = l
}

// newHist covers 1ns to 1min per operation.
func newHist() *hdrhistogram.Histogram {
	return hdrhistogram.New(1, time.Minute.Nanoseconds(), 3)
}

// everything is a query no stored interval fails to overlap, used to read
// back an index's full contents through its public Search.
var everything = itree.NewSpan(math.MinInt64/2, math.MaxInt64/2)

func coordSet(ivs []itree.Interval) []string {
	out := make([]string, 0, len(ivs))
	for _, iv := range ivs {
		out = append(out, fmt.Sprintf("(%d,%d)", iv.Start(), iv.End()))
	}
	sort.Strings(out)
	return out
}

func setsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Validate checks the backend's search results, and removal effects where
// supported, against the linear-scan oracle.
func (r *Runner) Validate(b Backend, ivs, searches, removes []itree.Interval) error {
	idx := b.New(ivs...)
	oracle := itree.NewList(ivs...)

	for _, q := range searches {
		got, want := coordSet(idx.Search(q)), coordSet(oracle.Search(q))
		if !setsEqual(got, want) {
			r.logger.Warn("search validation mismatch",
				zap.String("backend", b.Name),
				zap.Int("got", len(got)),
				zap.Int("want", len(want)))
			return fmt.Errorf("backend %s: search (%d,%d): got %d results, want %d",
				b.Name, q.Start(), q.End(), len(got), len(want))
		}
	}

	if remover, ok := idx.(Remover); ok {
		for _, iv := range removes {
			if got, want := remover.Remove(iv), oracle.Remove(iv); got != want {
				return fmt.Errorf("backend %s: remove (%d,%d): got %v, want %v",
					b.Name, iv.Start(), iv.End(), got, want)
			}
		}
		got, want := coordSet(idx.Search(everything)), coordSet(oracle.Search(everything))
		if !setsEqual(got, want) {
			return fmt.Errorf("backend %s: contents after removal: %d intervals, want %d",
				b.Name, len(got), len(want))
		}
	}

	r.logger.Info("validation passed",
		zap.String("backend", b.Name),
		zap.Int("intervals", len(ivs)),
		zap.Int("searches", len(searches)),
		zap.Int("removes", len(removes)))
	return nil
}

// Run validates the backend and then benchmarks insert, search and (where
// supported) remove over the given interval sets.
func (r *Runner) Run(b Backend, ivs, searches, removes []itree.Interval) ([]Result, error) {
	if err := r.Validate(b, ivs, searches, removes); err != nil {
		return nil, err
	}

	insert := Result{Backend: b.Name, Op: "insert", TreeSize: len(ivs), OpCount: len(ivs), Hist: newHist()}
	search := Result{Backend: b.Name, Op: "search", TreeSize: len(ivs), OpCount: len(searches), Hist: newHist()}
	remove := Result{Backend: b.Name, Op: "remove", TreeSize: len(ivs), OpCount: len(removes), Hist: newHist()}

	supportsRemove := false
	for rep := 0; rep < r.Repeat; rep++ {
		idx := b.New()
		for _, iv := range ivs {
			record(insert.Hist, func() { idx.Insert(iv) })
		}
		for _, q := range searches {
			record(search.Hist, func() { idx.Search(q) })
		}
		if remover, ok := idx.(Remover); ok {
			supportsRemove = true
			for _, iv := range removes {
				record(remove.Hist, func() { remover.Remove(iv) })
			}
		}
	}

	results := []Result{insert, search}
	if supportsRemove {
		results = append(results, remove)
	}
	return results, nil
}

func record(h *hdrhistogram.Histogram, op func()) {
	start := time.Now()
	op()
	elapsed := time.Since(start).Nanoseconds()
	if elapsed < 1 {
		elapsed = 1
	}
	// Out-of-range samples (over a minute) are dropped rather than fatal.
	_ = h.RecordValue(elapsed)
}

// WriteReport renders results as a text table.
func WriteReport(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Backend", "Size", "Op", "Ops", "P50", "P99", "Max"})
	for _, res := range results {
		table.Append([]string{
			res.Backend,
			fmt.Sprintf("%d", res.TreeSize),
			res.Op,
			fmt.Sprintf("%d", res.OpCount),
			time.Duration(res.Hist.ValueAtQuantile(50)).String(),
			time.Duration(res.Hist.ValueAtQuantile(99)).String(),
			time.Duration(res.Hist.Max()).String(),
		})
	}
	table.Render()
}
