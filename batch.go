// Copyright (C) The SSEA Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package ssea

import (
	"fmt"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

type throttle struct {
	Max       int
	wg        sync.WaitGroup
	ch        chan bool
	err       atomic.Value
	setupOnce sync.Once
	errorOnce sync.Once
}

func (t *throttle) Acquire() {
	t.setupOnce.Do(func() { t.ch = make(chan bool, t.Max) })
	t.wg.Add(1)
	t.ch <- true
}

func (t *throttle) Release() {
	t.wg.Done()
	<-t.ch
}

func (t *throttle) Report(err error) {
	if err != nil {
		t.errorOnce.Do(func() { t.err.Store(err) })
	}
}

func (t *throttle) Wait() error {
	t.wg.Wait()
	err, _ := t.err.Load().(error)
	return err
}

// deriveSeed gives row its own generator seed, splitmix64-style, so every
// row's draw sequence is independent of scheduling order and of how rows
// are chunked across workers.
func deriveSeed(baseSeed uint64, row int) uint64 {
	z := baseSeed + uint64(row+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// AnalyzeRows runs Analyze over every row of a count matrix with bounded
// concurrency. Each row gets a private RandomState seeded from baseSeed and
// its row index, so the output is identical to a serial run row by row.
// maxGoroutines <= 0 means one row at a time.
func AnalyzeRows(rows [][]float64, sizeFactors []float64, m *Membership, baseSeed uint64, cfg Config, perms, maxGoroutines int) ([]*AnalysisResult, error) {
	if maxGoroutines < 1 {
		maxGoroutines = 1
	}
	results := make([]*AnalysisResult, len(rows))
	limiter := throttle{Max: maxGoroutines}
	for i := range rows {
		i := i
		limiter.Acquire()
		go func() {
			defer limiter.Release()
			rng := NewRandomState(deriveSeed(baseSeed, i))
			res, err := Analyze(rows[i], sizeFactors, m, rng, cfg, perms)
			if err != nil {
				limiter.Report(fmt.Errorf("row %d: %w", i, err))
				return
			}
			results[i] = res
		}()
	}
	if err := limiter.Wait(); err != nil {
		return nil, err
	}
	log.Debugf("analyzed %d rows × %d sets, %d permutations", len(rows), m.Sets, perms)
	return results, nil
}
