// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package codec

import (
	"bytes"

	"github.com/intel/fasthuff/compress/huffman/internal/bitstream"
	"github.com/intel/fasthuff/compress/huffman/internal/chunk"
	"github.com/intel/fasthuff/compress/huffman/internal/table"
	"github.com/intel/fasthuff/compress/huffman/internal/tree"
)

// Encode compresses input into a single packed bitstream preceded by the
// code table.
func Encode(input []byte, cfg Config) []byte {
	sw := cfg.stopwatch()
	freq := cfg.histogram(input, cfg.workers())
	sw.lap(PhaseHistogram)

	codes := tree.Build(&freq).Codes()
	sw.lap(PhaseBuildCodes)

	hdr := table.Size(&codes)
	packed := codes.EncodedBytes(input)
	sw.lap(PhaseSizing)

	out := make([]byte, hdr+packed)
	writeHeader(out[:hdr], func(buf *bytes.Buffer) error {
		return table.Write(buf, &codes, uint64(len(input)))
	})
	sw.lap(PhaseWriteTable)

	encodeChunk(out[hdr:], input, &codes)
	sw.lap(PhaseEncode)
	return out
}

// EncodeParallel compresses input as cfg.Workers independent chunks. Each
// chunk is encoded from bit 0 of its own byte range, and the start of
// every range is recorded after the code table.
func EncodeParallel(input []byte, cfg Config) []byte {
	workers := cfg.workers()
	sw := cfg.stopwatch()
	freq := cfg.histogram(input, workers)
	sw.lap(PhaseHistogram)

	codes := tree.Build(&freq).Codes()
	sw.lap(PhaseBuildCodes)

	// The output buffer is shared by all workers, so every chunk's exact
	// size must be known before it is allocated.
	sizes := make([]int, workers)
	chunk.Run(workers, workers, func(i int) error {
		start, end := chunk.Bounds(len(input), workers, i)
		sizes[i] = codes.EncodedBytes(input[start:end])
		return nil
	})
	offsets := make([]uint64, workers)
	packed := 0
	for i, size := range sizes {
		offsets[i] = uint64(packed)
		packed += size
	}
	hdr := table.Size(&codes) + table.OffsetsSize(workers)
	sw.lap(PhaseSizing)

	out := make([]byte, hdr+packed)
	writeHeader(out[:hdr], func(buf *bytes.Buffer) error {
		if err := table.Write(buf, &codes, uint64(len(input))); err != nil {
			return err
		}
		return table.WriteOffsets(buf, offsets)
	})
	sw.lap(PhaseWriteTable)

	region := out[hdr:]
	chunk.Run(workers, workers, func(i int) error {
		start, end := chunk.Bounds(len(input), workers, i)
		lo := offsets[i]
		hi := lo + uint64(sizes[i])
		encodeChunk(region[lo:hi:hi], input[start:end], &codes)
		return nil
	})
	sw.lap(PhaseEncode)
	return out
}

// writeHeader runs write against a buffer backed by dst and checks that it
// filled dst exactly.
func writeHeader(dst []byte, write func(buf *bytes.Buffer) error) {
	buf := bytes.NewBuffer(dst[:0:len(dst)])
	if err := write(buf); err != nil {
		panic(err)
	}
	if buf.Len() != len(dst) {
		panic(ErrBufferOverflow)
	}
}

// encodeChunk packs the codes of input into dst, which must have been
// sized with codes.EncodedBytes(input).
func encodeChunk(dst []byte, input []byte, codes *tree.Codes) {
	w := bitstream.NewWriter(dst)
	for _, b := range input {
		w.WriteCode(&codes[b])
	}
	w.Flush()
	if w.Len() != len(dst) {
		panic(ErrBufferOverflow)
	}
}
