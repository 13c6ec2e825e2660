// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package codec

import (
	"errors"

	"github.com/intel/fasthuff/compress/huffman/internal/bitstream"
	"github.com/intel/fasthuff/compress/huffman/internal/table"
)

var (
	// ErrMalformedTable reports a truncated or inconsistent header.
	ErrMalformedTable = table.ErrMalformed
	// ErrTruncatedStream reports packed data ending before all symbols
	// were decoded.
	ErrTruncatedStream = errors.New("huffman: truncated stream")
	// ErrCorruptStream reports a bit sequence that matches no code.
	ErrCorruptStream = errors.New("huffman: invalid code in stream")
	// ErrConfigurationMismatch reports a stream whose chunk count differs
	// from the configured worker count.
	ErrConfigurationMismatch = errors.New("huffman: chunk count mismatch")
	// ErrBufferOverflow is the panic value raised when the encoder writes
	// a different number of bytes than the sizing pass computed.
	ErrBufferOverflow = bitstream.ErrOverflow
)
