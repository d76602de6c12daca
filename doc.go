// Package itree implements an augmented self-balancing interval tree for
// fast overlap queries over genomic ranges.
//
// The tree is an AVL binary search tree ordered by interval start, where
// every node additionally caches the minimum and maximum coordinate of its
// subtree. Classic interval trees cache only the subtree maximum, which is
// enough to find a single overlapping interval but forces the search to
// descend into right subtrees whenever all overlaps are wanted. Caching the
// minimum as well lets the search prune any subtree whose coordinate range
// cannot intersect the query, so reporting every overlap stays cheap even
// for wide queries.
//
// Payloads are arbitrary values implementing Interval; the tree stores them
// untouched and returns the original values from Search. The tree performs
// no locking: callers that mutate it from multiple goroutines must provide
// their own mutual exclusion. Concurrent Search calls are safe as long as
// no Insert or Remove runs at the same time.
package itree
