// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package codec implements the sequential and chunk-parallel Huffman
// encoder and decoder on top of the histogram, tree, table and bitstream
// packages.
package codec

import (
	"time"

	"github.com/intel/fasthuff/compress/huffman/internal/hist"
	"github.com/intel/fasthuff/internal/cpu"
)

// Config controls the codec.
type Config struct {
	// Workers is the number of chunks, and of goroutines, used by the
	// chunk-parallel codec. When encoding, a value <= 0 selects
	// cpu.Workers(). When decoding, a value <= 0 accepts the chunk count
	// recorded in the stream and a positive value must match it. The
	// number of goroutines in flight never exceeds the configured or
	// default worker count, whatever the stream declares.
	Workers int

	// ParallelHistogram counts symbol frequencies with one private
	// histogram per worker instead of a single pass.
	ParallelHistogram bool

	// Observer, if set, receives the duration of every phase.
	Observer Observer
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return cpu.Workers()
}

func (c *Config) histogram(input []byte, workers int) hist.Table {
	if c.ParallelHistogram {
		return hist.CountParallel(input, workers)
	}
	return hist.Count(input)
}

// Phase identifies one step of compression or decompression.
type Phase int

const (
	PhaseHistogram Phase = iota
	PhaseBuildCodes
	PhaseSizing
	PhaseWriteTable
	PhaseEncode
	PhaseReadTable
	PhaseDecode
	numPhases
)

var phaseNames = [numPhases]string{
	"histogram",
	"build codes",
	"sizing",
	"write table",
	"encode",
	"read table",
	"decode",
}

func (p Phase) String() string {
	if p < 0 || p >= numPhases {
		return "unknown"
	}
	return phaseNames[p]
}

// Phases lists the compression phases followed by the decompression
// phases, in execution order.
func Phases() []Phase {
	ps := make([]Phase, numPhases)
	for i := range ps {
		ps[i] = Phase(i)
	}
	return ps
}

// Observer receives phase timings. It is called from the goroutine that
// runs Encode or Decode, never from a worker.
type Observer interface {
	Observe(p Phase, d time.Duration)
}

// PhaseTimes is an Observer accumulating the time spent in every phase.
type PhaseTimes [numPhases]time.Duration

// Observe implements Observer.
func (t *PhaseTimes) Observe(p Phase, d time.Duration) {
	t[p] += d
}

// Total returns the sum of all phases.
func (t *PhaseTimes) Total() (d time.Duration) {
	for _, v := range t {
		d += v
	}
	return d
}

type stopwatch struct {
	obs  Observer
	last time.Time
}

func (c *Config) stopwatch() stopwatch {
	if c.Observer == nil {
		return stopwatch{}
	}
	return stopwatch{obs: c.Observer, last: time.Now()}
}

func (s *stopwatch) lap(p Phase) {
	if s.obs == nil {
		return
	}
	now := time.Now()
	s.obs.Observe(p, now.Sub(s.last))
	s.last = now
}
