// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"strings"

	"github.com/intel/fasthuff/compress/huffman/internal/hist"
)

// MaxCodeLen is the longest code a tree over 256 symbols can produce.
const MaxCodeLen = hist.Symbols - 1

// Code is the bit sequence of one symbol.
// Bit i of the code, i = 0 being the branch taken at the root and the
// first bit emitted, is stored at bit i%64 of Bits[i/64].
type Code struct {
	Len  uint8
	Bits [4]uint64
}

// Bit returns bit i of the code.
func (c *Code) Bit(i int) uint {
	return uint(c.Bits[i>>6]>>(uint(i)&63)) & 1
}

func (c *Code) setBit(i int) {
	c.Bits[i>>6] |= 1 << (uint(i) & 63)
}

// NumBytes returns how many bytes hold the code when it is packed.
func (c *Code) NumBytes() int {
	return (int(c.Len) + 7) / 8
}

// AppendBytes appends the code packed into NumBytes bytes to dst. Bit i of
// the code lands at bit i%8 of byte i/8.
func (c *Code) AppendBytes(dst []byte) []byte {
	for k := 0; k < c.NumBytes(); k++ {
		dst = append(dst, byte(c.Bits[k/8]>>(8*(uint(k)%8))))
	}
	return dst
}

// CodeFromBytes is the inverse of AppendBytes. Bits of b beyond n are
// ignored.
func CodeFromBytes(n uint8, b []byte) (c Code) {
	c.Len = n
	for k := 0; k < c.NumBytes(); k++ {
		c.Bits[k/8] |= uint64(b[k]) << (8 * (uint(k) % 8))
	}
	if rest := uint(n) % 64; rest != 0 {
		c.Bits[n/64] &= 1<<rest - 1
	}
	return c
}

// String renders the code as a string of '0' and '1', first bit first.
func (c Code) String() string {
	var sb strings.Builder
	for i := 0; i < int(c.Len); i++ {
		sb.WriteByte('0' + byte(c.Bit(i)))
	}
	return sb.String()
}

// Codes is the code table, indexed by symbol. Absent symbols have Len 0.
type Codes [hist.Symbols]Code

// Count returns the number of symbols that have a code.
func (cs *Codes) Count() int {
	n := 0
	for i := range cs {
		if cs[i].Len != 0 {
			n++
		}
	}
	return n
}

// EncodedBits returns the number of bits input occupies once encoded.
// The encoder sizes its output with this function, so the two must never
// disagree.
func (cs *Codes) EncodedBits(input []byte) (n uint64) {
	var lens [hist.Symbols]uint64
	for i := range cs {
		lens[i] = uint64(cs[i].Len)
	}
	for _, b := range input {
		n += lens[b]
	}
	return n
}

// EncodedBytes is EncodedBits rounded up to whole bytes.
func (cs *Codes) EncodedBytes(input []byte) int {
	return int((cs.EncodedBits(input) + 7) / 8)
}
