package itree

import "math"

// side indexes a node's child array. Keeping the children in an array
// rather than two named fields lets rotation and splicing treat left and
// right symmetrically.
type side int

const (
	sideLeft  side = 0
	sideRight side = 1
)

func (s side) opposite() side { return 1 - s }

// Node is one entry of a Tree: a payload interval plus the augmentation
// data the tree maintains (subtree coordinate bounds and AVL height).
// Nodes are created and owned by the tree; external packages read them
// through the accessors, e.g. when walking the tree for diagnostics.
type Node struct {
	iv         Interval
	start, end int64
	min, max   int64
	height     int
	c          [2]*Node
}

func newNode(iv Interval) *Node {
	n := &Node{height: 1}
	n.setInterval(iv)
	n.min = minBound(n.start, n.end)
	n.max = maxBound(n.start, n.end)
	return n
}

// setInterval installs a payload and its cached raw bounds. Used on
// creation and when a removal overwrites a node with its successor.
func (n *Node) setInterval(iv Interval) {
	n.iv = iv
	n.start = iv.Start()
	n.end = iv.End()
}

// Item returns the wrapped payload, untouched.
func (n *Node) Item() Interval { return n.iv }

// Start returns the payload's raw start bound (the ordering key).
func (n *Node) Start() int64 { return n.start }

// End returns the payload's raw end bound.
func (n *Node) End() int64 { return n.end }

// Min returns the cached minimum coordinate of the subtree rooted here.
func (n *Node) Min() int64 { return n.min }

// Max returns the cached maximum coordinate of the subtree rooted here.
func (n *Node) Max() int64 { return n.max }

// Height returns the cached height; a leaf has height 1.
func (n *Node) Height() int { return n.height }

// Left returns the left child, or nil.
func (n *Node) Left() *Node { return n.c[sideLeft] }

// Right returns the right child, or nil.
func (n *Node) Right() *Node { return n.c[sideRight] }

func (n *Node) String() string {
	return n.label(PrintOptions{})
}

// Nil-safe augmentation reads. An absent subtree contributes nothing:
// height 0, and bounds that lose every min/max comparison.
func nodeHeight(n *Node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func nodeMin(n *Node) int64 {
	if n == nil {
		return math.MaxInt64
	}
	return n.min
}

func nodeMax(n *Node) int64 {
	if n == nil {
		return math.MinInt64
	}
	return n.max
}

// recompute restores height and subtree bounds from the node's own bounds
// plus its direct children's cached values. Own bounds are normalized so a
// payload with end before start still yields a valid coordinate range.
func (n *Node) recompute() {
	l, r := n.c[sideLeft], n.c[sideRight]
	n.height = 1 + maxInt(nodeHeight(l), nodeHeight(r))
	n.min = minBound(minBound(n.start, n.end), minBound(nodeMin(l), nodeMin(r)))
	n.max = maxBound(maxBound(n.start, n.end), maxBound(nodeMax(l), nodeMax(r)))
}

func minBound(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxBound(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
