package itree

import "fmt"

// Interval is the payload contract: any value exposing two int64 bounds.
// Start is the ordering key; End participates only in overlap and bound
// computations. End may precede Start; subtree bounds are normalized, the
// ordering key is not.
type Interval interface {
	Start() int64
	End() int64
}

// Index is the common contract of the interval containers in this package.
// Callers choose a concrete backend at construction time; *Tree is the
// balanced implementation, *LegacyTree and *ListIndex exist as reference
// oracles and benchmark baselines.
type Index interface {
	Insert(iv Interval)
	Search(q Interval) []Interval
	Len() int
}

// Span is a minimal concrete Interval, used by the readers, the CLI and
// tests. Chrom and Name are carried through untouched; the tree never
// reads them.
type Span struct {
	Chrom     string
	Name      string
	Low, High int64
}

// NewSpan returns a Span covering [low, high].
func NewSpan(low, high int64) Span {
	return Span{Low: low, High: high}
}

// Start returns the lower coordinate.
func (s Span) Start() int64 { return s.Low }

// End returns the upper coordinate.
func (s Span) End() int64 { return s.High }

func (s Span) String() string {
	return fmt.Sprintf("(%d,%d)", s.Low, s.High)
}

// overlaps reports whether [s1,e1] and [s2,e2] intersect.
func overlaps(s1, e1, s2, e2 int64) bool {
	return s1 <= e2 && s2 <= e1
}
