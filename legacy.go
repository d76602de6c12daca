package itree

import (
	"math"
	"sort"
)

// LegacyTree is the previous, unbalanced interval tree implementation:
// max-only augmentation and no rebalancing, so its search must always
// explore right subtrees and a sorted insertion order degrades it to a
// list. It is kept as a slower reference oracle for tests and benchmarks;
// it does not support removal.
type LegacyTree struct {
	root *legacyNode
	size int
}

type legacyNode struct {
	iv          Interval
	start, end  int64
	max         int64
	left, right *legacyNode
}

// NewLegacy builds a legacy tree. Bulk input approximates a balanced shape
// by inserting intervals in order of closeness to the midpoint of the
// start range.
func NewLegacy(ivs ...Interval) *LegacyTree {
	t := &LegacyTree{}
	if len(ivs) == 0 {
		return t
	}
	maxStart := int64(math.MinInt64)
	for _, iv := range ivs {
		if s := iv.Start(); s > maxStart {
			maxStart = s
		}
	}
	center := maxStart / 2
	ordered := make([]Interval, len(ivs))
	copy(ordered, ivs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return absInt64(ordered[i].Start()-center) < absInt64(ordered[j].Start()-center)
	})
	for _, iv := range ordered {
		t.Insert(iv)
	}
	return t
}

// Insert adds an interval, updating the max augmentation along the
// descent.
func (t *LegacyTree) Insert(iv Interval) {
	n := &legacyNode{iv: iv, start: iv.Start(), end: iv.End(), max: iv.End()}
	t.size++
	if t.root == nil {
		t.root = n
		return
	}
	cur := t.root
	for {
		if n.end > cur.max {
			cur.max = n.end
		}
		if n.start < cur.start {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				return
			}
			cur = cur.right
		}
	}
}

// Search returns the payloads of all stored intervals overlapping q.
// Without a subtree minimum it can prune left subtrees only, and right
// subtrees not at all.
func (t *LegacyTree) Search(q Interval) []Interval {
	var result []Interval
	if t.root == nil {
		return result
	}
	qs, qe := q.Start(), q.End()
	stack := []*legacyNode{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.start <= qe && qs <= n.end {
			result = append(result, n.iv)
		}
		if n.left != nil && n.left.max >= qs {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
	}
	return result
}

// Len returns the number of stored intervals.
func (t *LegacyTree) Len() int { return t.size }

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
