// SPDX-License-Identifier: MIT

package connectivity

// AdjacencyFunc reports whether items i and j are directly connected.
// It must be symmetric.
type AdjacencyFunc func(i, j int) bool

// Components groups [0, n) into connected components under adjacent.
// Groups are ordered by smallest member and members ascend.
//
// Steps:
//  1. Union every pair (j, i) with j < i for which adjacent(i, j) holds.
//  2. Bucket indices by representative in ascending index order.
func Components(n int, adjacent AdjacencyFunc) [][]int {
	s := link(n, adjacent)

	var (
		groups [][]int
		slot   = make(map[int]int, s.Sets())
	)
	for i := 0; i < n; i++ {
		r := s.Find(i)
		g, ok := slot[r]
		if !ok {
			g = len(groups)
			slot[r] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}

	return groups
}

// Count returns the number of connected components of [0, n).
// Zero items yield zero components.
func Count(n int, adjacent AdjacencyFunc) int {
	return link(n, adjacent).Sets()
}

func link(n int, adjacent AdjacencyFunc) *DisjointSet {
	s := NewDisjointSet(n)
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if s.Find(i) == s.Find(j) {
				continue // already linked, skip the geometric test
			}
			if adjacent(i, j) {
				s.Union(i, j)
			}
		}
	}

	return s
}
