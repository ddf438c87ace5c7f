// SPDX-License-Identifier: MIT

package cluster

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvdesign/connectivity"
)

// Merge is one agglomeration step of a dendrogram.
type Merge struct {
	Left     int     // smaller cluster id
	Right    int     // larger cluster id
	Distance float64 // single-linkage distance between the two clusters
	Size     int     // leaves under the new cluster
}

// Pairwise returns the Euclidean distance matrix of obs.
func Pairwise(obs [][]float64) ([][]float64, error) {
	n := len(obs)
	d := make([][]float64, n)
	for i := range d {
		if len(obs[i]) != len(obs[0]) {
			return nil, ErrRagged
		}
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var s float64
			for k := range obs[i] {
				diff := obs[i][k] - obs[j][k]
				s += diff * diff
			}
			d[i][j] = math.Sqrt(s)
			d[j][i] = d[i][j]
		}
	}

	return d, nil
}

// Linkage builds the single-linkage dendrogram over a symmetric distance
// matrix. Single linkage equals Kruskal's minimum spanning tree: every MST
// edge, taken in ascending order, merges two clusters.
//
// Steps:
//  1. Collect pairs (i, j), i < j; stable-sort them by distance.
//  2. Walk the pairs; skip those already in one cluster.
//  3. Union the two clusters, emit a Merge and label the new root n+k.
//
// Returns n−1 merges, or nil for n < 2.
func Linkage(dist [][]float64) []Merge {
	n := len(dist)
	if n < 2 {
		return nil
	}

	// 1. Candidate pairs in lexicographic order, then by distance.
	type pair struct{ i, j int }
	pairs := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		return dist[pairs[a].i][pairs[a].j] < dist[pairs[b].i][pairs[b].j]
	})

	// label maps a set representative to its dendrogram cluster id.
	set := connectivity.NewDisjointSet(n)
	label := make([]int, n)
	size := make([]int, n)
	for i := range label {
		label[i] = i
		size[i] = 1
	}

	merges := make([]Merge, 0, n-1)
	for _, p := range pairs {
		// 2. Skip edges inside one cluster.
		ri, rj := set.Find(p.i), set.Find(p.j)
		if ri == rj {
			continue
		}
		// 3. Merge and relabel.
		a, b := label[ri], label[rj]
		if a > b {
			a, b = b, a
		}
		total := size[ri] + size[rj]
		set.Union(ri, rj)
		root := set.Find(ri)
		label[root] = n + len(merges)
		size[root] = total
		merges = append(merges, Merge{Left: a, Right: b, Distance: dist[p.i][p.j], Size: total})
		if len(merges) == n-1 {
			break
		}
	}

	return merges
}
