// Copyright (C) The SSEA Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package ssea

// normalizeCounts rewrites counts in place: optional Poisson resampling
// around each observed count, division by the per-sample size factor, and
// optional additive noise (a Poisson draw with mean noiseLoc plus a uniform
// draw scaled by noiseScale). The caller owns counts and must pass a
// private copy; the draw order (all resampling and noise for sample i
// before sample i+1) is part of the reproducibility contract.
func normalizeCounts(counts, sizeFactors []float64, rng *RandomState, resample, addNoise bool, noiseLoc, noiseScale float64) {
	for i := range counts {
		if resample {
			counts[i] = rng.Poisson(counts[i])
		}
		counts[i] /= sizeFactors[i]
		if addNoise {
			counts[i] += rng.Poisson(noiseLoc)
			counts[i] += rng.UniformDouble() * noiseScale
		}
	}
}
