// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements a byte-oriented Huffman compressor.
//
// A stream starts with a code table (symbol count, original size and the
// code of every symbol present) followed by the packed bitstream. The
// chunked format produced by EncodeParallel additionally records the byte
// offset of every independently encoded chunk, so that decoding can be
// split across goroutines as well.
package huffman

import (
	"github.com/intel/fasthuff/compress/huffman/internal/codec"
)

type (
	// Config controls the parallelism and instrumentation of a call.
	Config = codec.Config
	// Observer receives the time spent in every phase.
	Observer = codec.Observer
	// Phase names one step of compression or decompression.
	Phase = codec.Phase
	// PhaseTimes is an Observer that accumulates phase durations.
	PhaseTimes = codec.PhaseTimes
	// Info describes the header of a compressed stream.
	Info = codec.Info
)

const (
	PhaseHistogram  = codec.PhaseHistogram
	PhaseBuildCodes = codec.PhaseBuildCodes
	PhaseSizing     = codec.PhaseSizing
	PhaseWriteTable = codec.PhaseWriteTable
	PhaseEncode     = codec.PhaseEncode
	PhaseReadTable  = codec.PhaseReadTable
	PhaseDecode     = codec.PhaseDecode
)

var (
	ErrMalformedTable        = codec.ErrMalformedTable
	ErrTruncatedStream       = codec.ErrTruncatedStream
	ErrCorruptStream         = codec.ErrCorruptStream
	ErrConfigurationMismatch = codec.ErrConfigurationMismatch
	ErrBufferOverflow        = codec.ErrBufferOverflow
)

// Phases lists every phase in execution order.
func Phases() []Phase { return codec.Phases() }

// Format selects the stream layout.
type Format int

const (
	// Sequential is a single bitstream, see Encode.
	Sequential Format = iota
	// Chunked is a bitstream split into independently decodable chunks,
	// see EncodeParallel.
	Chunked
)

func (f Format) String() string {
	switch f {
	case Sequential:
		return "seq"
	case Chunked:
		return "par"
	}
	return "unknown"
}

// Encode compresses input on the calling goroutine. Only
// cfg.ParallelHistogram and cfg.Observer are used.
func Encode(input []byte, cfg Config) []byte {
	return codec.Encode(input, cfg)
}

// Decode decompresses a stream produced by Encode.
func Decode(data []byte, cfg Config) ([]byte, error) {
	return codec.Decode(data, cfg)
}

// EncodeParallel compresses input as cfg.Workers chunks encoded
// concurrently. Workers <= 0 uses one chunk per available CPU. The output
// depends on the chunk count but never on scheduling.
func EncodeParallel(input []byte, cfg Config) []byte {
	return codec.EncodeParallel(input, cfg)
}

// DecodeParallel decompresses a stream produced by EncodeParallel on a
// pool of at most cfg.Workers goroutines, one per CPU when Workers <= 0.
// A positive cfg.Workers must equal the chunk count
// recorded in the stream, otherwise ErrConfigurationMismatch is returned.
func DecodeParallel(data []byte, cfg Config) ([]byte, error) {
	return codec.DecodeParallel(data, cfg)
}

// Inspect parses the header of a stream in format f.
func Inspect(data []byte, f Format) (*Info, error) {
	return codec.Inspect(data, f == Chunked)
}

func encode(input []byte, f Format, cfg Config) []byte {
	if f == Chunked {
		return EncodeParallel(input, cfg)
	}
	return Encode(input, cfg)
}

func decode(data []byte, f Format, cfg Config) ([]byte, error) {
	if f == Chunked {
		return DecodeParallel(data, cfg)
	}
	return Decode(data, cfg)
}
