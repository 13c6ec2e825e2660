// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package codec

import (
	"fmt"

	"github.com/intel/fasthuff/compress/huffman/internal/bitstream"
	"github.com/intel/fasthuff/compress/huffman/internal/chunk"
	"github.com/intel/fasthuff/compress/huffman/internal/table"
	"github.com/intel/fasthuff/compress/huffman/internal/tree"
)

// Decode decompresses a stream produced by Encode.
func Decode(data []byte, cfg Config) ([]byte, error) {
	sw := cfg.stopwatch()
	h, n, err := table.Read(data)
	if err != nil {
		return nil, err
	}
	sw.lap(PhaseReadTable)

	packed := data[n:]
	if err := checkSize(h.Size, len(packed)); err != nil {
		return nil, err
	}
	out := make([]byte, h.Size)
	if err := decodeChunk(out, packed, h.Decoder); err != nil {
		return nil, err
	}
	sw.lap(PhaseDecode)
	return out, nil
}

// DecodeParallel decompresses a stream produced by EncodeParallel. The
// recorded chunks are decoded by at most cfg.Workers goroutines, or one
// per CPU when Workers <= 0, however many chunks the stream declares.
func DecodeParallel(data []byte, cfg Config) ([]byte, error) {
	sw := cfg.stopwatch()
	h, n, err := table.Read(data)
	if err != nil {
		return nil, err
	}
	offsets, m, err := table.ReadOffsets(data[n:])
	if err != nil {
		return nil, err
	}
	chunks := len(offsets)
	if cfg.Workers > 0 && cfg.Workers != chunks {
		return nil, fmt.Errorf("%w: stream has %d chunks, decoder configured for %d", ErrConfigurationMismatch, chunks, cfg.Workers)
	}
	sw.lap(PhaseReadTable)

	packed := data[n+m:]
	if err := checkSize(h.Size, len(packed)); err != nil {
		return nil, err
	}
	out := make([]byte, h.Size)
	err = chunk.Run(chunks, cfg.workers(), func(i int) error {
		start, end := chunk.Bounds(len(out), chunks, i)
		lo, hi := offsets[i], uint64(len(packed))
		if i+1 < chunks {
			hi = offsets[i+1]
		}
		if err := decodeChunk(out[start:end], packed[lo:hi], h.Decoder); err != nil {
			return fmt.Errorf("chunk %d: %w", i, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sw.lap(PhaseDecode)
	return out, nil
}

// checkSize rejects a declared size that cannot be backed by the packed
// bytes before the output is allocated. Every symbol takes at least one
// bit.
func checkSize(size uint64, packed int) error {
	if size > uint64(packed)*8 {
		return fmt.Errorf("%w: %d bytes declared, %d packed bytes", ErrTruncatedStream, size, packed)
	}
	return nil
}

// decodeChunk walks the decode tree from the root for every symbol until
// out is full. Padding bits after the last symbol are never read.
func decodeChunk(out []byte, packed []byte, d *tree.Decoder) error {
	r := bitstream.NewReader(packed)
	node := int32(0)
	for i := 0; i < len(out); {
		bit, ok := r.ReadBit()
		if !ok {
			return fmt.Errorf("%w: %d of %d bytes decoded", ErrTruncatedStream, i, len(out))
		}
		node = d.Next(node, bit)
		switch {
		case node < 0:
			out[i] = byte(^node)
			i++
			node = 0
		case node == 0:
			return fmt.Errorf("%w: at byte %d", ErrCorruptStream, i)
		}
	}
	return nil
}
