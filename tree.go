package itree

import "fmt"

// Tree is the balanced interval tree. The zero value is an empty tree
// ready for use.
type Tree struct {
	root *Node
	size int
}

// New builds a tree from the given intervals.
func New(ivs ...Interval) *Tree {
	t := &Tree{}
	for _, iv := range ivs {
		t.Insert(iv)
	}
	return t
}

// Insert adds an interval to the tree. Intervals with a duplicate start
// are accepted and placed to the right of the existing one.
func (t *Tree) Insert(iv Interval) {
	t.root = insert(t.root, newNode(iv))
	t.size++
}

func insert(n, nn *Node) *Node {
	if n == nil {
		return nn
	}
	s := sideRight
	if nn.start < n.start {
		s = sideLeft
	}
	n.c[s] = insert(n.c[s], nn)
	n.recompute()
	return rebalance(n)
}

// balance is the AVL balance factor: left height minus right height.
func balance(n *Node) int {
	return nodeHeight(n.c[sideLeft]) - nodeHeight(n.c[sideRight])
}

// rebalance restores the AVL invariant at n, assuming both subtrees are
// already balanced and n's own height is current. It returns the subtree's
// new root. A heavy child leaning toward its sibling is rotated first, so
// the outer rotation always moves weight off the heavy side.
func rebalance(n *Node) *Node {
	switch b := balance(n); {
	case b > 1:
		if balance(n.c[sideLeft]) < 0 {
			n.c[sideLeft] = rotate(n.c[sideLeft], sideRight)
		}
		return rotate(n, sideLeft)
	case b < -1:
		if balance(n.c[sideRight]) > 0 {
			n.c[sideRight] = rotate(n.c[sideRight], sideLeft)
		}
		return rotate(n, sideRight)
	default:
		return n
	}
}

// rotate lifts n's child on the heavy side into n's place:
//
//	      n                   r
//	    /   \               /   \
//	  r       --rotate-->         n
//	/   \                       /   \
//	      t                   t
//
// Both rewired nodes get their height and subtree bounds recomputed before
// r is returned; ancestors rely on both being current.
func rotate(n *Node, heavy side) *Node {
	light := heavy.opposite()
	r := n.c[heavy]
	t := r.c[light]
	r.c[light] = n
	n.c[heavy] = t
	n.recompute()
	r.recompute()
	return r
}

// Remove deletes one stored interval whose coordinates match iv exactly
// and reports whether a deletion happened. When several stored intervals
// share the same coordinates, which physical one is deleted depends on the
// tree shape and is unspecified. Removing coordinates not present in the
// tree leaves it unchanged.
func (t *Tree) Remove(iv Interval) bool {
	root, removed := remove(t.root, iv.Start(), iv.End())
	t.root = root
	if removed {
		t.size--
	}
	return removed
}

// remove descends guided by the overlap necessary-condition rather than
// strict BST order: a node with the requested coordinates always satisfies
// it, and duplicates by start may sit on either side of an equal node, so
// ordered descent could miss the match. The right subtree is tried only if
// the left did not delete, so one call deletes at most one node.
func remove(n *Node, start, end int64) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	if start == n.start && end == n.end {
		removed = true
		l, r := n.c[sideLeft], n.c[sideRight]
		if l != nil && r != nil {
			// Two children: overwrite with the in-order successor and
			// delete the successor's physical node from the right subtree.
			succ := leftmost(r)
			n.setInterval(succ.iv)
			n.c[sideRight], _ = remove(r, succ.start, succ.end)
		} else {
			// Zero or one child: splice.
			n = l
			if n == nil {
				n = r
			}
			if n == nil {
				return nil, true
			}
		}
	} else {
		if l := n.c[sideLeft]; l != nil && start <= l.max && l.min <= end {
			n.c[sideLeft], removed = remove(l, start, end)
		}
		if r := n.c[sideRight]; !removed && r != nil && start <= r.max && r.min <= end {
			n.c[sideRight], removed = remove(r, start, end)
		}
	}
	n.recompute()
	return rebalance(n), removed
}

func leftmost(n *Node) *Node {
	for n.c[sideLeft] != nil {
		n = n.c[sideLeft]
	}
	return n
}

// Search returns the payloads of all stored intervals overlapping q, in
// unspecified order. Two intervals overlap when each one's start does not
// exceed the other's end.
func (t *Tree) Search(q Interval) []Interval {
	var result []Interval
	if t.root == nil {
		return result
	}
	qs, qe := q.Start(), q.End()

	// Iterative traversal; recursion is measurably slower here and the
	// explicit stack reuses its backing array across iterations.
	stack := []*Node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.start <= qe && qs <= n.end {
			result = append(result, n.iv)
		}

		// Descend only into subtrees whose coordinate range can intersect q.
		if l := n.c[sideLeft]; l != nil && qs <= l.max && l.min <= qe {
			stack = append(stack, l)
		}
		if r := n.c[sideRight]; r != nil && qs <= r.max && r.min <= qe {
			stack = append(stack, r)
		}
	}
	return result
}

// Len returns the number of stored intervals.
func (t *Tree) Len() int { return t.size }

// Root returns the root node, or nil for an empty tree. Exposed for
// diagnostics and invariant checks; treat the returned subtree as
// read-only.
func (t *Tree) Root() *Node { return t.root }

func (t *Tree) String() string {
	if t.root == nil {
		return "Tree(root=nil)"
	}
	return fmt.Sprintf("Tree(root=%s)", t.root)
}
