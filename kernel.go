// Copyright (C) The SSEA Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package ssea

import "fmt"

// Config is the orchestrator's configuration surface. Zero value disables
// resampling, permutation and noise; use DefaultConfig for the reference
// defaults.
type Config struct {
	ResampleCounts bool
	PermuteSamples bool
	AddNoise       bool
	NoiseLoc       float64
	NoiseScale     float64
	MethodMiss     WeightMethod
	MethodHit      WeightMethod
	MethodParam    float64
}

func DefaultConfig() Config {
	return Config{
		NoiseLoc:    1,
		NoiseScale:  1,
		MethodMiss:  MethodWeighted,
		MethodHit:   MethodWeighted,
		MethodParam: 1,
	}
}

// Check validates the configuration before any numeric work runs.
func (cfg Config) Check() error {
	for _, m := range []WeightMethod{cfg.MethodMiss, cfg.MethodHit} {
		switch m {
		case MethodUnweighted, MethodWeighted, MethodExp, MethodLog:
		default:
			return fmt.Errorf("unknown weight method selector %d", int(m))
		}
	}
	return nil
}

// KernelResult carries every intermediate artifact the reduction stage
// needs from one kernel invocation: the rank order and sample permutation,
// the normalized counts, both weight vectors, and the per-set walk output.
type KernelResult struct {
	Ranks       []int
	Perm        []int
	NormCounts  []float64
	WeightsMiss []float64
	WeightsHit  []float64
	Walk        *WalkResult
}

// RunKernel evaluates every sample set in m against counts under one
// configuration. counts is never modified; all randomness flows through
// rng in a fixed order (resampling and noise in sample order, then the
// permutation shuffle), so identical inputs and an identical initial rng
// state produce byte-identical results. Callers invoke this once per
// permutation/resampling iteration and aggregate.
func RunKernel(counts, sizeFactors []float64, m *Membership, rng *RandomState, cfg Config) (*KernelResult, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	n := len(counts)
	if len(sizeFactors) != n {
		return nil, fmt.Errorf("got %d size factors for %d samples", len(sizeFactors), n)
	}
	if m.Samples != n {
		return nil, fmt.Errorf("membership has %d rows for %d samples", m.Samples, n)
	}
	for i, sf := range sizeFactors {
		if sf <= 0 {
			return nil, fmt.Errorf("size factor %d is %g, want > 0", i, sf)
		}
	}

	norm := make([]float64, n)
	copy(norm, counts)
	normalizeCounts(norm, sizeFactors, rng, cfg.ResampleCounts, cfg.AddNoise, cfg.NoiseLoc, cfg.NoiseScale)

	weightsMiss, err := PowerTransform(norm, cfg.MethodMiss, cfg.MethodParam)
	if err != nil {
		return nil, err
	}
	weightsHit, err := PowerTransform(norm, cfg.MethodHit, cfg.MethodParam)
	if err != nil {
		return nil, err
	}

	ranks := rankDescending(norm)
	perm := identityPerm(n)
	if cfg.PermuteSamples {
		ShuffleInts(perm, rng)
	}

	return &KernelResult{
		Ranks:       ranks,
		Perm:        perm,
		NormCounts:  norm,
		WeightsMiss: weightsMiss,
		WeightsHit:  weightsHit,
		Walk:        randomWalk(weightsMiss, weightsHit, m, ranks, perm),
	}, nil
}
