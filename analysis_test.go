// Copyright (C) The SSEA Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package ssea

import (
	"gopkg.in/check.v1"
)

type analysisSuite struct{}

var _ = check.Suite(&analysisSuite{})

// Counts descending from n down to 1, with the set covering the top nhit
// samples: about as enriched toward the top as a set can be.
func topEnriched(c *check.C, n, nhit int) ([]float64, *Membership) {
	counts := make([]float64, n)
	data := make([]uint8, n)
	for i := range counts {
		counts[i] = float64(n - i)
		if i < nhit {
			data[i] = 1
		}
	}
	return counts, mustMembership(c, data, n, 1)
}

func (s *analysisSuite) TestNullLengthMatchesPerms(c *check.C) {
	const perms = 245
	counts, m := topEnriched(c, 40, 10)
	res, err := Analyze(counts, ones(40), m, NewRandomState(235908223), DefaultConfig(), perms)
	c.Assert(err, check.IsNil)
	c.Assert(res.Results, check.HasLen, 1)
	c.Check(res.Results[0].Null, check.HasLen, perms)
}

func (s *analysisSuite) TestEnrichedSetScoresHigh(c *check.C) {
	counts, m := topEnriched(c, 50, 10)
	res, err := Analyze(counts, ones(50), m, NewRandomState(42), DefaultConfig(), 200)
	c.Assert(err, check.IsNil)
	r := res.Results[0]
	c.Check(r.ES > 0.5, check.Equals, true, check.Commentf("ES=%g", r.ES))
	c.Check(r.ESRank < 10, check.Equals, true, check.Commentf("ESRank=%d", r.ESRank))
	c.Check(r.NES > 0, check.Equals, true, check.Commentf("NES=%g", r.NES))
	c.Check(r.NominalP < 0.5, check.Equals, true, check.Commentf("p=%g", r.NominalP))
}

func (s *analysisSuite) TestReproducible(c *check.C) {
	cfg := DefaultConfig()
	cfg.ResampleCounts = true
	cfg.AddNoise = true
	counts, _ := topEnriched(c, 30, 5)
	m := testMembership(c, 30, 2)
	ra := NewRandomState(1089667133)
	rb := NewRandomState(1089667133)
	resa, err := Analyze(counts, ones(30), m, ra, cfg, 50)
	c.Assert(err, check.IsNil)
	resb, err := Analyze(counts, ones(30), m, rb, cfg, 50)
	c.Assert(err, check.IsNil)
	c.Check(resa, check.DeepEquals, resb)
	c.Check(ra.State(), check.Equals, rb.State())
}

func (s *analysisSuite) TestZeroObservedScore(c *check.C) {
	// Zero counts with no noise: every weight is zero, nothing to rank.
	m := mustMembership(c, []uint8{1, 0, 1, 0}, 4, 1)
	res, err := Analyze(make([]float64, 4), ones(4), m, NewRandomState(9), DefaultConfig(), 10)
	c.Assert(err, check.IsNil)
	r := res.Results[0]
	c.Check(r.ES, check.Equals, 0.0)
	c.Check(r.NES, check.Equals, 0.0)
	c.Check(r.NominalP, check.Equals, 1.0)
}

func (s *analysisSuite) TestPermsValidation(c *check.C) {
	counts, m := topEnriched(c, 4, 2)
	_, err := Analyze(counts, ones(4), m, NewRandomState(1), DefaultConfig(), 0)
	c.Check(err, check.ErrorMatches, `got 0 permutations, want >= 1`)
}
