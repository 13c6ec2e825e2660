// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package chunk partitions a byte range into contiguous chunks and runs
// one task per chunk on a fixed-size worker group.
//
// Encoder and decoder must agree on the partition, so every chunked stage
// (histogram shards, sizing, encoding and decoding) goes through Bounds.
package chunk

import (
	"golang.org/x/sync/errgroup"
)

// Size returns the length of every chunk but possibly the last one when
// n items are split into count chunks.
func Size(n, count int) int {
	if count <= 0 {
		panic("chunk: non-positive chunk count")
	}
	return (n + count - 1) / count
}

// Bounds returns the half-open range [start, end) of chunk i.
// Trailing chunks are empty when n is smaller than count.
func Bounds(n, count, i int) (start, end int) {
	size := Size(n, count)
	start = size * i
	if start > n {
		start = n
	}
	end = start + size
	if end > n {
		end = n
	}
	return start, end
}

// Run calls fn once for every chunk index in [0, count) with at most
// workers goroutines in flight, and waits for all of them. It returns the
// first non-nil error. Wait acts as the barrier between two phases.
//
// count may come from an untrusted stream header, workers must not.
func Run(count, workers int, fn func(i int) error) error {
	if workers < 1 {
		workers = 1
	}
	if count == 1 || workers == 1 {
		for i := 0; i < count; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}
	var g errgroup.Group
	g.SetLimit(min(count, workers))
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			return fn(i)
		})
	}
	return g.Wait()
}
