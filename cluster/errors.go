// SPDX-License-Identifier: MIT

package cluster

import "errors"

var (
	// ErrRagged is returned when observations differ in dimension.
	ErrRagged = errors.New("cluster: observations have different dimensions")

	// ErrBadLinkage is returned when merges do not describe a full binary tree
	// over the leaves.
	ErrBadLinkage = errors.New("cluster: linkage does not match observation count")
)
