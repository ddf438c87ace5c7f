// SPDX-License-Identifier: MIT

package cluster

// tree is the dendrogram in node form: leaves 0..n−1, internal n..2n−2.
type tree struct {
	n      int
	left   []int   // child ids of internal nodes, indexed by node−n
	right  []int   //
	parent []int   // parent of every node, −1 for the root
	leaves [][]int // leaves under every node, left subtree first
}

func newTree(n int, merges []Merge) (*tree, error) {
	if len(merges) != n-1 {
		return nil, ErrBadLinkage
	}
	t := &tree{
		n:      n,
		left:   make([]int, n-1),
		right:  make([]int, n-1),
		parent: make([]int, 2*n-1),
		leaves: make([][]int, 2*n-1),
	}
	for i := range t.parent {
		t.parent[i] = -1
	}
	for i := 0; i < n; i++ {
		t.leaves[i] = []int{i}
	}
	for k, m := range merges {
		v := n + k
		if m.Left < 0 || m.Right < 0 || m.Left >= v || m.Right >= v || m.Left == m.Right {
			return nil, ErrBadLinkage
		}
		if t.parent[m.Left] >= 0 || t.parent[m.Right] >= 0 {
			return nil, ErrBadLinkage
		}
		t.left[k], t.right[k] = m.Left, m.Right
		t.parent[m.Left], t.parent[m.Right] = v, v
		t.leaves[v] = append(append([]int(nil), t.leaves[m.Left]...), t.leaves[m.Right]...)
	}

	return t, nil
}

// childToward returns the child of v whose subtree holds leaf x.
func (t *tree) childToward(v, x int) int {
	for t.parent[x] != v {
		x = t.parent[x]
	}

	return x
}

// sibling returns the other child of c's parent.
func (t *tree) sibling(c int) int {
	k := t.parent[c] - t.n
	if t.left[k] == c {
		return t.right[k]
	}

	return t.left[k]
}

// outer returns the leaves of subtree c that may sit next to the sibling
// subtree when c's ordering starts (or ends) with leaf u.
func (t *tree) outer(c, u int) []int {
	if c < t.n {
		return []int{u}
	}

	return t.leaves[t.sibling(t.childToward(c, u))]
}

// OptimalLeafOrder returns the leaf permutation of the dendrogram that
// minimizes the summed distance between neighbouring leaves, keeping
// every subtree contiguous.
//
// Steps:
//  1. best[u][w] is the cheapest ordering of LCA(u, w)'s subtree that starts
//     at u and ends at w; every leaf pair has one LCA so one matrix suffices.
//  2. Fill best bottom-up. For node v with children l, r and u in l:
//     via[k] = min over m in outer(l, u) of best[u][m] + dist[m][k],
//     best[u][w] = min over k in outer(r, w) of via[k] + best[k][w].
//  3. Pick the cheapest (u, w) at the root and unfold it recursively.
//
// n < 2 yields the identity order.
func OptimalLeafOrder(merges []Merge, dist [][]float64) ([]int, error) {
	n := len(dist)
	if n < 2 {
		return identity(n), nil
	}
	t, err := newTree(n, merges)
	if err != nil {
		return nil, err
	}

	// 1–2. Dynamic programme over internal nodes in creation order.
	best := make([][]float64, n)
	for i := range best {
		best[i] = make([]float64, n)
	}
	via := make([]float64, n)
	for k := range merges {
		l, r := t.left[k], t.right[k]
		for _, u := range t.leaves[l] {
			for _, kk := range t.leaves[r] {
				first := true
				for _, m := range t.outer(l, u) {
					if c := best[u][m] + dist[m][kk]; first || c < via[kk] {
						via[kk], first = c, false
					}
				}
			}
			for _, w := range t.leaves[r] {
				var (
					min   float64
					first = true
				)
				for _, kk := range t.outer(r, w) {
					if c := via[kk] + best[kk][w]; first || c < min {
						min, first = c, false
					}
				}
				best[u][w], best[w][u] = min, min
			}
		}
	}

	// 3. Root endpoints, then unfold.
	root := 2*n - 2
	l, r := t.left[n-2], t.right[n-2]
	bu, bw, first := 0, 0, true
	for _, u := range t.leaves[l] {
		for _, w := range t.leaves[r] {
			if first || best[u][w] < best[bu][bw] {
				bu, bw, first = u, w, false
			}
		}
	}

	order := make([]int, 0, n)
	t.unfold(root, bu, bw, best, dist, &order)

	return order, nil
}

// unfold appends the optimal ordering of v's subtree from u to w.
func (t *tree) unfold(v, u, w int, best, dist [][]float64, order *[]int) {
	if v < t.n {
		*order = append(*order, v)
		return
	}
	cu, cw := t.childToward(v, u), t.childToward(v, w)

	// find the junction (m, k) that realizes best[u][w]
	bm, bk, first := u, w, true
	var min float64
	for _, m := range t.outer(cu, u) {
		for _, k := range t.outer(cw, w) {
			if c := best[u][m] + dist[m][k] + best[k][w]; first || c < min {
				bm, bk, min, first = m, k, c, false
			}
		}
	}
	t.unfold(cu, u, bm, best, dist, order)
	t.unfold(cw, bk, w, best, dist, order)
}

// Order clusters obs with single linkage and returns the optimal leaf order.
func Order(obs [][]float64) ([]int, error) {
	dist, err := Pairwise(obs)
	if err != nil {
		return nil, err
	}

	return OptimalLeafOrder(Linkage(dist), dist)
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
