package itree

import (
	"errors"
	"sort"
)

// KeyFunc derives the grouping key of a payload, e.g. its chromosome.
type KeyFunc func(Interval) string

// GroupedTree partitions intervals into independent Trees by a derived
// key. Queries touch only the tree of the query's own key, so intervals on
// different chromosomes never interact. It adds no tree machinery of its
// own; every per-key tree carries the usual invariants.
type GroupedTree struct {
	key   KeyFunc
	trees map[string]*Tree
}

// NewGrouped builds a grouped tree over the given intervals. The key
// function must be non-nil; bulk input is grouped by key before each
// per-key tree is built.
func NewGrouped(key KeyFunc, ivs ...Interval) (*GroupedTree, error) {
	if key == nil {
		return nil, errors.New("itree: grouped tree requires a key function")
	}
	g := &GroupedTree{
		key:   key,
		trees: make(map[string]*Tree),
	}
	groups := make(map[string][]Interval)
	for _, iv := range ivs {
		k := key(iv)
		groups[k] = append(groups[k], iv)
	}
	for k, grp := range groups {
		g.trees[k] = New(grp...)
	}
	return g, nil
}

// Insert adds an interval to the tree of its key, creating the tree on
// first use.
func (g *GroupedTree) Insert(iv Interval) {
	k := g.key(iv)
	t, ok := g.trees[k]
	if !ok {
		t = New()
		g.trees[k] = t
	}
	t.Insert(iv)
}

// Remove deletes one stored interval matching iv's key and coordinates.
// An unseen key is a no-op.
func (g *GroupedTree) Remove(iv Interval) bool {
	t, ok := g.trees[g.key(iv)]
	if !ok {
		return false
	}
	return t.Remove(iv)
}

// Search returns all stored intervals sharing q's key that overlap q.
// An unseen key yields an empty result.
func (g *GroupedTree) Search(q Interval) []Interval {
	t, ok := g.trees[g.key(q)]
	if !ok {
		return nil
	}
	return t.Search(q)
}

// Len returns the total number of stored intervals across all keys.
func (g *GroupedTree) Len() int {
	n := 0
	for _, t := range g.trees {
		n += t.Len()
	}
	return n
}

// Keys returns the seen grouping keys in sorted order.
func (g *GroupedTree) Keys() []string {
	keys := make([]string, 0, len(g.trees))
	for k := range g.trees {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Tree returns the tree for a key, or nil if the key is unseen.
func (g *GroupedTree) Tree(key string) *Tree {
	return g.trees[key]
}
