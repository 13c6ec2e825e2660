// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitstream

import "encoding/binary"

// Reader returns the bits of a byte slice one at a time, starting with the
// least significant bit of the first byte.
type Reader struct {
	input  []byte
	bits   uint64
	bitLen uint
}

// NewReader returns a Reader over input.
func NewReader(input []byte) *Reader {
	return &Reader{input: input}
}

// ReadBit returns the next bit. ok is false once input is exhausted.
func (r *Reader) ReadBit() (bit uint, ok bool) {
	if r.bitLen == 0 && !r.load() {
		return 0, false
	}
	bit = uint(r.bits & 1)
	r.bits >>= 1
	r.bitLen--
	return bit, true
}

// Remaining returns the number of bits not read yet.
func (r *Reader) Remaining() int {
	return len(r.input)*8 + int(r.bitLen)
}

func (r *Reader) load() bool {
	if len(r.input) >= 8 {
		r.bits = binary.LittleEndian.Uint64(r.input)
		r.input = r.input[8:]
		r.bitLen = 64
		return true
	}
	if len(r.input) == 0 {
		return false
	}
	r.bits = 0
	for i, b := range r.input {
		r.bits |= uint64(b) << (8 * uint(i))
	}
	r.bitLen = 8 * uint(len(r.input))
	r.input = nil
	return true
}
