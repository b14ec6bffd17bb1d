// Copyright (C) The SSEA Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package ssea

import "fmt"

// Membership is an immutable samples-by-sets 0/1 matrix, stored row-major
// so one rank position's set flags are contiguous. Columns are independent
// sample sets and can be scored in any order.
type Membership struct {
	Samples int
	Sets    int
	Data    []uint8
}

// NewMembership wraps row-major data as a Membership matrix, validating
// shape and the 0/1 domain.
func NewMembership(data []uint8, samples, sets int) (*Membership, error) {
	if samples < 0 || sets < 0 {
		return nil, fmt.Errorf("membership shape (%d, %d) is negative", samples, sets)
	}
	if len(data) != samples*sets {
		return nil, fmt.Errorf("membership has %d cells, want %d×%d = %d", len(data), samples, sets, samples*sets)
	}
	for i, v := range data {
		if v > 1 {
			return nil, fmt.Errorf("membership cell %d is %d, want 0 or 1", i, v)
		}
	}
	return &Membership{Samples: samples, Sets: sets, Data: data}, nil
}

// NewMembershipVector wraps a single sample set as an N×1 matrix.
func NewMembershipVector(column []uint8) (*Membership, error) {
	return NewMembership(column, len(column), 1)
}

// In reports whether sample i belongs to set j.
func (m *Membership) In(i, j int) bool {
	return m.Data[i*m.Sets+j] != 0
}
