// Copyright (C) The SSEA Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package ssea

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// Result is the per-set outcome of one analysis: the observed enrichment
// score and its rank position, the normalized score (observed over the mean
// magnitude of same-signed null scores), the nominal p-value, and the raw
// null distribution the normalization was computed from.
type Result struct {
	ES       float64
	ESRank   int
	NES      float64
	NominalP float64
	Null     []float64
}

// AnalysisResult bundles the observed kernel run with one Result per set.
type AnalysisResult struct {
	Observed *KernelResult
	Results  []Result
}

// Analyze evaluates one row of the count matrix against every sample set:
// a single observed kernel run under the configured resampling/noise flags,
// then perms permuted runs accumulating a per-set null enrichment-score
// distribution. All draws flow through rng in a fixed order, so a worker
// that records its initial state can reproduce or resume the row exactly.
func Analyze(counts, sizeFactors []float64, m *Membership, rng *RandomState, cfg Config, perms int) (*AnalysisResult, error) {
	if perms < 1 {
		return nil, fmt.Errorf("got %d permutations, want >= 1", perms)
	}
	obsCfg := cfg
	obsCfg.PermuteSamples = false
	observed, err := RunKernel(counts, sizeFactors, m, rng, obsCfg)
	if err != nil {
		return nil, err
	}

	nullCfg := cfg
	nullCfg.PermuteSamples = true
	null := make([][]float64, m.Sets)
	for j := range null {
		null[j] = make([]float64, perms)
	}
	for k := 0; k < perms; k++ {
		kr, err := RunKernel(counts, sizeFactors, m, rng, nullCfg)
		if err != nil {
			return nil, err
		}
		for j := 0; j < m.Sets; j++ {
			null[j][k] = kr.Walk.Scores[j]
		}
		if (k+1)%1000 == 0 {
			log.Debugf("analyze: %d/%d permutations", k+1, perms)
		}
	}

	res := &AnalysisResult{
		Observed: observed,
		Results:  make([]Result, m.Sets),
	}
	for j := 0; j < m.Sets; j++ {
		res.Results[j] = summarize(observed.Walk.Scores[j], observed.Walk.Ranks[j], null[j])
	}
	return res, nil
}

// summarize normalizes an observed score against the same-signed portion of
// its null distribution. Scores of zero, and observed signs never reached
// by the null, yield NES 0 and p-value 1: the set carries no resolvable
// signal at this permutation depth.
func summarize(es float64, esRank int, null []float64) Result {
	res := Result{ES: es, ESRank: esRank, Null: null, NominalP: 1}
	if es == 0 {
		return res
	}
	sameSign := make([]float64, 0, len(null))
	extreme := 0
	for _, v := range null {
		if (es > 0) == (v > 0) && v != 0 {
			sameSign = append(sameSign, math.Abs(v))
			if math.Abs(v) >= math.Abs(es) {
				extreme++
			}
		}
	}
	if len(sameSign) == 0 {
		return res
	}
	res.NES = es / stat.Mean(sameSign, nil)
	res.NominalP = float64(extreme) / float64(len(sameSign))
	return res
}
