// Copyright (C) The SSEA Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package ssea

import (
	"fmt"
	"math"
)

// WeightMethod selects how normalized counts are reweighted into hit/miss
// contribution magnitudes.
type WeightMethod int

const (
	// MethodUnweighted makes every sample contribute 1.0.
	MethodUnweighted WeightMethod = 0
	// MethodWeighted uses the normalized count unchanged.
	MethodWeighted WeightMethod = 1
	// MethodExp raises the normalized count to the power param.
	MethodExp WeightMethod = 2
	// MethodLog takes sign(x)*log2(|x|+param); param is a pseudo-count.
	MethodLog WeightMethod = 3
)

func (m WeightMethod) String() string {
	switch m {
	case MethodUnweighted:
		return "unweighted"
	case MethodWeighted:
		return "weighted"
	case MethodExp:
		return "exp"
	case MethodLog:
		return "log"
	}
	return fmt.Sprintf("WeightMethod(%d)", int(m))
}

// ParseWeightMethod maps a configuration-file method name to its selector.
func ParseWeightMethod(name string) (WeightMethod, error) {
	switch name {
	case "unweighted":
		return MethodUnweighted, nil
	case "weighted":
		return MethodWeighted, nil
	case "exp":
		return MethodExp, nil
	case "log":
		return MethodLog, nil
	}
	return 0, fmt.Errorf("unknown weight method %q", name)
}

// PowerTransform returns a newly allocated reweighting of x under the given
// method. param is the exponent for MethodExp and the pseudo-count for
// MethodLog; other methods ignore it. An unknown method is a configuration
// error, never a silent fallthrough.
func PowerTransform(x []float64, method WeightMethod, param float64) ([]float64, error) {
	out := make([]float64, len(x))
	switch method {
	case MethodUnweighted:
		for i := range out {
			out[i] = 1
		}
	case MethodWeighted:
		copy(out, x)
	case MethodExp:
		for i, v := range x {
			out[i] = math.Pow(v, param)
		}
	case MethodLog:
		for i, v := range x {
			switch {
			case v > 0:
				out[i] = math.Log2(v + param)
			case v < 0:
				out[i] = -math.Log2(-v + param)
			}
		}
	default:
		return nil, fmt.Errorf("unknown weight method selector %d", int(method))
	}
	return out, nil
}
