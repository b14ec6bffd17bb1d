// Copyright (C) The SSEA Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package ssea

import (
	"math"

	"gopkg.in/check.v1"
)

type transformSuite struct{}

var _ = check.Suite(&transformSuite{})

func (s *transformSuite) TestUnweighted(c *check.C) {
	out, err := PowerTransform([]float64{0, -2, 17.5}, MethodUnweighted, 3)
	c.Assert(err, check.IsNil)
	c.Check(out, check.DeepEquals, []float64{1, 1, 1})
}

func (s *transformSuite) TestWeighted(c *check.C) {
	in := []float64{0, -2, 17.5}
	out, err := PowerTransform(in, MethodWeighted, 1)
	c.Assert(err, check.IsNil)
	c.Check(out, check.DeepEquals, in)
	out[0] = 99
	c.Check(in[0], check.Equals, 0.0)
}

func (s *transformSuite) TestExp(c *check.C) {
	out, err := PowerTransform([]float64{1, 2, 3}, MethodExp, 2)
	c.Assert(err, check.IsNil)
	c.Check(out, check.DeepEquals, []float64{1, 4, 9})
}

func (s *transformSuite) TestLogPreservesSign(c *check.C) {
	out, err := PowerTransform([]float64{3, -3, 0, 7}, MethodLog, 1)
	c.Assert(err, check.IsNil)
	c.Check(out[0], check.Equals, math.Log2(4))
	c.Check(out[1], check.Equals, -math.Log2(4))
	c.Check(out[2], check.Equals, 0.0)
	c.Check(out[3], check.Equals, math.Log2(8))
}

func (s *transformSuite) TestUnknownMethod(c *check.C) {
	_, err := PowerTransform([]float64{1}, WeightMethod(4), 1)
	c.Check(err, check.ErrorMatches, `unknown weight method selector 4`)
}

func (s *transformSuite) TestParse(c *check.C) {
	for name, want := range map[string]WeightMethod{
		"unweighted": MethodUnweighted,
		"weighted":   MethodWeighted,
		"exp":        MethodExp,
		"log":        MethodLog,
	} {
		got, err := ParseWeightMethod(name)
		c.Assert(err, check.IsNil)
		c.Check(got, check.Equals, want)
		c.Check(got.String(), check.Equals, name)
	}
	_, err := ParseWeightMethod("quadratic")
	c.Check(err, check.ErrorMatches, `unknown weight method "quadratic"`)
}
