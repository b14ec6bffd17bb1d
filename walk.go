// Copyright (C) The SSEA Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package ssea

import "math"

// WalkResult holds the per-set output of one random walk over a ranked
// sample list: the signed enrichment score, the rank position where the
// extreme occurred, and the full running trace, stored row-major with one
// length-Sets row per rank position.
type WalkResult struct {
	Samples int
	Sets    int
	Scores  []float64
	Ranks   []int
	Trace   []float64
}

// TraceAt returns the running statistic for set j at rank position i.
func (w *WalkResult) TraceAt(i, j int) float64 {
	return w.Trace[i*w.Sets+j]
}

// randomWalk scores every sample set by walking the ranked sample order and
// accumulating weighted hit/miss mass. At rank position i the weight comes
// from sample ranks[i], while membership is consulted for sample
// perm[ranks[i]], so a shuffled perm reassigns identities without touching
// the ranking. This is the hot path of the whole analysis: one invocation
// per permutation per row, all simple nested loops over flat slices.
func randomWalk(weightsMiss, weightsHit []float64, m *Membership, ranks, perm []int) *WalkResult {
	n, nsets := m.Samples, m.Sets
	res := &WalkResult{
		Samples: n,
		Sets:    nsets,
		Scores:  make([]float64, nsets),
		Ranks:   make([]int, nsets),
		Trace:   make([]float64, n*nsets),
	}
	if n == 0 {
		return res
	}

	phit := make([]float64, n*nsets)
	pmiss := make([]float64, n*nsets)
	for i := 0; i < n; i++ {
		r := ranks[i]
		p := perm[r]
		row := i * nsets
		prev := row - nsets
		for j := 0; j < nsets; j++ {
			if i > 0 {
				phit[row+j] = phit[prev+j]
				pmiss[row+j] = pmiss[prev+j]
			}
			if m.In(p, j) {
				phit[row+j] += weightsHit[r]
			} else {
				pmiss[row+j] += weightsMiss[r]
			}
		}
	}

	last := (n - 1) * nsets
	for j := 0; j < nsets; j++ {
		phitTotal := phit[last+j]
		pmissTotal := pmiss[last+j]
		switch {
		case phitTotal == 0 && pmissTotal == 0:
			// No weighted mass on either side: no signal, all-zero
			// result.
		case phitTotal == 0:
			res.Scores[j] = -1
			res.Ranks[j] = n - 1
			for i := 0; i < n; i++ {
				res.Trace[i*nsets+j] = -1
			}
		case pmissTotal == 0:
			res.Scores[j] = 1
			res.Ranks[j] = 0
			for i := 0; i < n; i++ {
				res.Trace[i*nsets+j] = 1
			}
		default:
			for i := 0; i < n; i++ {
				es := phit[i*nsets+j]/phitTotal - pmiss[i*nsets+j]/pmissTotal
				res.Trace[i*nsets+j] = es
				if math.Abs(es) >= math.Abs(res.Scores[j]) {
					res.Scores[j] = es
					res.Ranks[j] = i
				}
			}
		}
	}
	return res
}
