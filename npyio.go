// Copyright (C) The SSEA Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package ssea

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/kshedden/gonpy"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// ReadVectorNpy loads a 1-D float64 .npy file (counts, size factors or a
// weight vector). Shape and dtype mismatches fail fast rather than coerce.
func ReadVectorNpy(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	npy, err := gonpy.NewReader(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(npy.Shape) != 1 {
		return nil, fmt.Errorf("%s: shape %v, want a 1-D vector", path, npy.Shape)
	}
	data, err := npy.GetFloat64()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// ReadMembershipNpy loads a 2-D uint8 .npy file as a samples-by-sets
// membership matrix, enforcing row-major layout and the 0/1 domain.
func ReadMembershipNpy(path string) (*Membership, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	npy, err := gonpy.NewReader(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(npy.Shape) != 2 {
		return nil, fmt.Errorf("%s: shape %v, want a 2-D matrix", path, npy.Shape)
	}
	if npy.ColumnMajor {
		return nil, fmt.Errorf("%s: column-major arrays are not supported", path)
	}
	data, err := npy.GetUint8()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m, err := NewMembership(data, npy.Shape[0], npy.Shape[1])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// WriteVectorNpy saves a float64 vector as a 1-D .npy file.
func WriteVectorNpy(path string, data []float64) error {
	return writeNpy(path, []int{len(data)}, data)
}

// WriteTraceNpy saves a walk's running trace as a 2-D float64 .npy file,
// one row per rank position.
func WriteTraceNpy(path string, w *WalkResult) error {
	return writeNpy(path, []int{w.Samples, w.Sets}, w.Trace)
}

func writeNpy(path string, shape []int, data []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	bufw := bufio.NewWriter(f)
	npw, err := gonpy.NewWriter(nopCloser{bufw})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	npw.Shape = shape
	if err = npw.WriteFloat64(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = bufw.Flush(); err != nil {
		return err
	}
	return f.Close()
}
