// Copyright (C) The SSEA Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package ssea

import "sort"

// rankDescending returns the sample indices ordered by descending value.
// The sort is stable, so equal values keep ascending-index order; the
// result is deterministic for identical input.
func rankDescending(x []float64) []int {
	ranks := identityPerm(len(x))
	sort.SliceStable(ranks, func(a, b int) bool {
		return x[ranks[a]] > x[ranks[b]]
	})
	return ranks
}

func identityPerm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}
