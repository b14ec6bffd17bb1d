// Copyright (C) The SSEA Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package ssea

// ShuffleInts permutes x in place with a Fisher-Yates shuffle, consuming
// exactly len(x)-1 draws from rng. Zero- and one-element slices are no-ops.
func ShuffleInts(x []int, rng *RandomState) {
	for i := len(x) - 1; i > 0; i-- {
		j := rng.UniformRange(0, i)
		x[i], x[j] = x[j], x[i]
	}
}

// ShuffleFloat64s permutes x in place with a Fisher-Yates shuffle,
// consuming exactly len(x)-1 draws from rng.
func ShuffleFloat64s(x []float64, rng *RandomState) {
	for i := len(x) - 1; i > 0; i-- {
		j := rng.UniformRange(0, i)
		x[i], x[j] = x[j], x[i]
	}
}
