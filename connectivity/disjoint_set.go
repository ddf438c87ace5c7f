// SPDX-License-Identifier: MIT

package connectivity

// DisjointSet is a union-find over the integers [0, n).
type DisjointSet struct {
	parent []int
	rank   []int
	sets   int
}

// NewDisjointSet returns n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	s := &DisjointSet{parent: make([]int, n), rank: make([]int, n), sets: n}
	for i := range s.parent {
		s.parent[i] = i
	}

	return s
}

// Find returns the representative of x's set.
// Iterative with path halving to avoid deep recursion.
func (s *DisjointSet) Find(x int) int {
	for s.parent[x] != x {
		s.parent[x] = s.parent[s.parent[x]]
		x = s.parent[x]
	}

	return x
}

// Union merges the sets of x and y and reports whether they were distinct.
func (s *DisjointSet) Union(x, y int) bool {
	rx, ry := s.Find(x), s.Find(y)
	if rx == ry {
		return false
	}
	// attach the shallower tree under the deeper root
	switch {
	case s.rank[rx] < s.rank[ry]:
		s.parent[rx] = ry
	case s.rank[rx] > s.rank[ry]:
		s.parent[ry] = rx
	default:
		s.parent[ry] = rx
		s.rank[rx]++
	}
	s.sets--

	return true
}

// Sets returns the current number of disjoint sets.
func (s *DisjointSet) Sets() int { return s.sets }

// Len returns the size of the universe.
func (s *DisjointSet) Len() int { return len(s.parent) }
