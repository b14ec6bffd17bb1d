// Copyright (C) The SSEA Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package ssea

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// lcgSource implements rand.Source over a single 64-bit multiplicative
// congruential state (Knuth MMIX constants). The entire generator state is
// one integer, so workers can checkpoint it and resuming a run replays the
// identical draw sequence.
type lcgSource struct {
	state uint64
}

func (s *lcgSource) Seed(seed uint64) {
	s.state = seed
}

func (s *lcgSource) Uint64() uint64 {
	s.state = s.state*6364136223846793005 + 1442695040888963407
	return s.state
}

// RandomState is the seeded generator threaded by pointer through every
// stochastic operation in the kernel. All draws are fully determined by the
// current state and the call arguments, and every draw advances the state,
// so repeating a call sequence from the same initial state reproduces the
// same outputs and the same final state.
type RandomState struct {
	src *lcgSource
	rnd *rand.Rand
}

func NewRandomState(seed uint64) *RandomState {
	src := &lcgSource{state: seed}
	return &RandomState{src: src, rnd: rand.New(src)}
}

// State returns the current generator state, for checkpointing and for
// verifying that two runs consumed identical draw sequences.
func (r *RandomState) State() uint64 {
	return r.src.state
}

// UniformRange returns a uniform int in [lo, hi], bounds inclusive.
func (r *RandomState) UniformRange(lo, hi int) int {
	return lo + r.rnd.Intn(hi-lo+1)
}

// UniformDouble returns a uniform float64 in [0, 1).
func (r *RandomState) UniformDouble() float64 {
	return r.rnd.Float64()
}

// Poisson returns a Poisson-distributed draw with the given mean. A
// non-positive mean yields 0 (a zero count resamples to zero).
func (r *RandomState) Poisson(mean float64) float64 {
	if mean <= 0 {
		return 0
	}
	return distuv.Poisson{Lambda: mean, Src: r.src}.Rand()
}

// Normal returns a draw from the normal distribution with the given
// location and scale.
func (r *RandomState) Normal(loc, scale float64) float64 {
	return distuv.Normal{Mu: loc, Sigma: scale, Src: r.src}.Rand()
}
