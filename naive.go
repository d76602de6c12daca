package itree

// ListIndex stores intervals in a flat slice and answers queries by linear
// scan. It is the O(n) baseline the tree is benchmarked against and the
// oracle the tree is differentially tested against.
type ListIndex struct {
	items []Interval
}

// NewList builds a list index over the given intervals.
func NewList(ivs ...Interval) *ListIndex {
	return &ListIndex{items: append([]Interval(nil), ivs...)}
}

// Insert appends an interval.
func (l *ListIndex) Insert(iv Interval) {
	l.items = append(l.items, iv)
}

// Remove deletes the first stored interval with iv's exact coordinates and
// reports whether one was found.
func (l *ListIndex) Remove(iv Interval) bool {
	s, e := iv.Start(), iv.End()
	for i, item := range l.items {
		if item.Start() == s && item.End() == e {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Search returns all stored intervals overlapping q.
func (l *ListIndex) Search(q Interval) []Interval {
	var result []Interval
	qs, qe := q.Start(), q.End()
	for _, item := range l.items {
		if overlaps(item.Start(), item.End(), qs, qe) {
			result = append(result, item)
		}
	}
	return result
}

// Len returns the number of stored intervals.
func (l *ListIndex) Len() int { return len(l.items) }
