// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package bitstream packs variable-length codes into bytes and reads them
// back, least significant bit first.
package bitstream

import (
	"errors"

	"github.com/intel/fasthuff/compress/huffman/internal/tree"
)

// ErrOverflow is the panic value raised when a Writer runs past the end of
// its pre-sized output. It means the sizing pass and the encoder disagree.
var ErrOverflow = errors.New("bitstream: output buffer overflow")

// Writer appends bits into a fixed output slice.
// The slice must be sized in advance; the Writer never grows it.
type Writer struct {
	output []byte
	idx    int
	bits   uint64
	bitLen uint
}

// NewWriter returns a Writer that fills output from its first byte.
func NewWriter(output []byte) *Writer {
	return &Writer{output: output}
}

// Reset discards any pending bits and starts writing at the front of
// output.
func (w *Writer) Reset(output []byte) {
	w.output = output
	w.idx = 0
	w.bits = 0
	w.bitLen = 0
}

// WriteBits writes the n low bits of v, bit 0 first. n must not exceed 56.
func (w *Writer) WriteBits(v uint64, n uint) {
	w.bits |= v << w.bitLen
	w.bitLen += n
	for w.bitLen >= 8 {
		w.emit(byte(w.bits))
		w.bits >>= 8
		w.bitLen -= 8
	}
}

// WriteCode writes all bits of c, first bit first.
func (w *Writer) WriteCode(c *tree.Code) {
	n := uint(c.Len)
	if n <= 56 {
		w.WriteBits(c.Bits[0], n)
		return
	}
	for i := 0; n > 0; i++ {
		word := c.Bits[i]
		for half := 0; half < 2 && n > 0; half++ {
			k := min(n, 32)
			w.WriteBits(word&(1<<k-1), k)
			word >>= 32
			n -= k
		}
	}
}

// Flush writes the last partial byte, if any. Its unused high bits are
// zero.
func (w *Writer) Flush() {
	if w.bitLen > 0 {
		w.emit(byte(w.bits))
		w.bits = 0
		w.bitLen = 0
	}
}

// Len returns the number of whole bytes written so far.
func (w *Writer) Len() int {
	return w.idx
}

func (w *Writer) emit(b byte) {
	if w.idx >= len(w.output) {
		panic(ErrOverflow)
	}
	w.output[w.idx] = b
	w.idx++
}
