// SPDX-License-Identifier: MIT

// Package cluster orders observations for display: single-linkage
// agglomerative clustering followed by an optimal leaf ordering of the
// resulting dendrogram.
//
// The DSM display order treats every matrix row as an observation; parts with
// similar connection patterns end up next to each other.
//
// Conventions (pinned, so repeated runs always agree):
//
//   - Leaves are 0..n−1; the k-th merge creates cluster n+k.
//   - Pairwise distances are processed in ascending order with a stable sort
//     over (i, j), i < j, lexicographic. Equal distances merge in that order.
//   - A Merge records the smaller cluster id as Left.
//   - The leaf ordering minimizes the sum of distances between adjacent
//     leaves over all 2^(n−1) child flips (Bar-Joseph, Gifford, Jaakkola
//     2001). Among equal optima the first pair found wins, scanning the left
//     subtree leaves and then the right subtree leaves in dendrogram order.
//
// Complexity:
//
//   - Linkage:          O(n² log n) time, O(n²) memory.
//   - OptimalLeafOrder: O(n³) time, O(n²) memory.
package cluster
