// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package table reads and writes the header of a compressed stream:
//
//	count     u32  number of distinct symbols
//	size      u64  number of original bytes
//	count × { symbol u8, numbits u8, code ceil(numbits/8) bytes }
//
// followed, in the chunked variant, by
//
//	chunks    u32
//	chunks × offset u64  start of each chunk in the packed region
//
// Multi-byte fields are big-endian.
package table

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/intel/fasthuff/compress/huffman/internal/hist"
	"github.com/intel/fasthuff/compress/huffman/internal/tree"
)

// ErrMalformed reports a header that is truncated or inconsistent.
var ErrMalformed = errors.New("huffman: malformed code table")

const (
	countBits  = 32
	sizeBits   = 64
	offsetBits = 64
)

// Header is the decoded code table.
type Header struct {
	Symbols int
	Size    uint64
	Codes   tree.Codes
	Decoder *tree.Decoder
}

// Size returns the number of bytes Write produces for codes.
func Size(codes *tree.Codes) int {
	n := countBits/8 + sizeBits/8
	for i := range codes {
		if codes[i].Len != 0 {
			n += 2 + codes[i].NumBytes()
		}
	}
	return n
}

// OffsetsSize returns the number of bytes WriteOffsets produces.
func OffsetsSize(chunks int) int {
	return countBits/8 + chunks*offsetBits/8
}

// Write serializes codes and the original size to w, symbols in ascending
// order.
func Write(w io.Writer, codes *tree.Codes, size uint64) error {
	bw := bitio.NewWriter(w)
	bw.TryWriteBits(uint64(codes.Count()), countBits)
	bw.TryWriteBits(size, sizeBits)
	var buf [tree.MaxCodeLen/8 + 1]byte
	for s := range codes {
		c := &codes[s]
		if c.Len == 0 {
			continue
		}
		bw.TryWriteByte(byte(s))
		bw.TryWriteByte(c.Len)
		for _, b := range c.AppendBytes(buf[:0]) {
			bw.TryWriteByte(b)
		}
	}
	if bw.TryError != nil {
		return bw.TryError
	}
	return bw.Close()
}

// Read parses the code table at the front of data and rebuilds the decode
// tree from it. It returns the number of bytes consumed.
func Read(data []byte) (h *Header, n int, err error) {
	in := bytes.NewReader(data)
	br := bitio.NewReader(in)
	count := br.TryReadBits(countBits)
	size := br.TryReadBits(sizeBits)
	if br.TryError != nil {
		return nil, 0, fmt.Errorf("%w: short header", ErrMalformed)
	}
	if count > hist.Symbols {
		return nil, 0, fmt.Errorf("%w: %d symbols", ErrMalformed, count)
	}
	if count == 0 && size != 0 {
		return nil, 0, fmt.Errorf("%w: no symbols for %d bytes", ErrMalformed, size)
	}

	h = &Header{Symbols: int(count), Size: size, Decoder: tree.NewDecoder()}
	var buf [tree.MaxCodeLen/8 + 1]byte
	for i := 0; i < int(count); i++ {
		symbol := br.TryReadByte()
		numbits := br.TryReadByte()
		code := tree.Code{Len: numbits}
		for k := 0; k < code.NumBytes(); k++ {
			buf[k] = br.TryReadByte()
		}
		if br.TryError != nil {
			return nil, 0, fmt.Errorf("%w: entry %d of %d is truncated", ErrMalformed, i, count)
		}
		if h.Codes[symbol].Len != 0 {
			return nil, 0, fmt.Errorf("%w: symbol %d appears twice", ErrMalformed, symbol)
		}
		code = tree.CodeFromBytes(numbits, buf[:code.NumBytes()])
		if err := h.Decoder.Insert(symbol, &code); err != nil {
			return nil, 0, fmt.Errorf("%w: symbol %d: %v", ErrMalformed, symbol, err)
		}
		h.Codes[symbol] = code
	}
	return h, len(data) - in.Len(), nil
}

// WriteOffsets serializes the chunk offset table.
func WriteOffsets(w io.Writer, offsets []uint64) error {
	bw := bitio.NewWriter(w)
	bw.TryWriteBits(uint64(len(offsets)), countBits)
	for _, off := range offsets {
		bw.TryWriteBits(off, offsetBits)
	}
	if bw.TryError != nil {
		return bw.TryError
	}
	return bw.Close()
}

// ReadOffsets parses the chunk offset table at the front of data. The
// bytes after the table are the packed region; every offset must point
// into it, the first must be 0 and they must not decrease.
func ReadOffsets(data []byte) (offsets []uint64, n int, err error) {
	in := bytes.NewReader(data)
	br := bitio.NewReader(in)
	chunks := br.TryReadBits(countBits)
	if br.TryError != nil {
		return nil, 0, fmt.Errorf("%w: missing chunk count", ErrMalformed)
	}
	if chunks == 0 || chunks > uint64(in.Len())/(offsetBits/8) {
		return nil, 0, fmt.Errorf("%w: %d chunks do not fit in %d bytes", ErrMalformed, chunks, in.Len())
	}
	offsets = make([]uint64, chunks)
	for i := range offsets {
		offsets[i] = br.TryReadBits(offsetBits)
	}
	if br.TryError != nil {
		return nil, 0, fmt.Errorf("%w: truncated offset table", ErrMalformed)
	}
	n = len(data) - in.Len()
	packed := uint64(len(data) - n)
	prev := uint64(0)
	for i, off := range offsets {
		if (i == 0 && off != 0) || off < prev || off > packed {
			return nil, 0, fmt.Errorf("%w: chunk %d starts at %d", ErrMalformed, i, off)
		}
		prev = off
	}
	return offsets, n, nil
}
