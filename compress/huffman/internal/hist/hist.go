// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package hist counts byte frequencies.
package hist

import "github.com/intel/fasthuff/compress/huffman/internal/chunk"

// Symbols is the size of the byte alphabet.
const Symbols = 256

// Table maps every byte value to its number of occurrences.
type Table [Symbols]uint64

// Distinct returns the number of symbols with a non-zero count.
func (t *Table) Distinct() int {
	n := 0
	for _, v := range t {
		if v != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (t *Table) Total() uint64 {
	var sum uint64
	for _, v := range t {
		sum += v
	}
	return sum
}

// Count builds the table with a single pass over input.
func Count(input []byte) (t Table) {
	countInto(&t, input)
	return t
}

func countInto(t *Table, input []byte) {
	// four interleaved counters hide the store-to-load dependency
	// when the same byte repeats
	var c [4]Table
	n := len(input) &^ 3
	for i := 0; i < n; i += 4 {
		c[0][input[i]]++
		c[1][input[i+1]]++
		c[2][input[i+2]]++
		c[3][input[i+3]]++
	}
	for _, b := range input[n:] {
		c[0][b]++
	}
	for s := range t {
		t[s] += c[0][s] + c[1][s] + c[2][s] + c[3][s]
	}
}

// CountParallel builds the same table as Count using workers goroutines.
// Each worker counts one contiguous chunk of input into a private shard.
// After a barrier the shards are reduced, with the symbol range split
// across the same workers.
func CountParallel(input []byte, workers int) (t Table) {
	if workers <= 1 {
		return Count(input)
	}
	shards := make([]Table, workers)
	chunk.Run(workers, workers, func(i int) error {
		start, end := chunk.Bounds(len(input), workers, i)
		countInto(&shards[i], input[start:end])
		return nil
	})
	chunk.Run(workers, workers, func(i int) error {
		start, end := chunk.Bounds(Symbols, workers, i)
		for s := start; s < end; s++ {
			var sum uint64
			for j := range shards {
				sum += shards[j][s]
			}
			t[s] = sum
		}
		return nil
	})
	return t
}
