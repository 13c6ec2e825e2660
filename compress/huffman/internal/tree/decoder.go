// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import "errors"

var (
	errZeroLength  = errors.New("zero length code")
	errThroughLeaf = errors.New("code passes through a leaf")
	errOccupied    = errors.New("code ends on an occupied node")
)

// IsConflict reports whether err was returned by Decoder.Insert for a code
// that cannot be placed in the tree.
func IsConflict(err error) bool {
	return err == errZeroLength || err == errThroughLeaf || err == errOccupied
}

// Decoder is a decode tree rebuilt from serialized codes rather than from
// a histogram. Node 0 is the root. A child reference c is
//
//	c == 0: no child
//	c > 0:  internal node c
//	c < 0:  leaf holding symbol ^c
type Decoder struct {
	nodes [][2]int32
}

// NewDecoder returns a decode tree containing only the root.
func NewDecoder() *Decoder {
	d := &Decoder{nodes: make([][2]int32, 1, MaxCodeLen)}
	return d
}

// Insert places symbol at the end of the path spelled by code, creating
// internal nodes on the way.
func (d *Decoder) Insert(symbol byte, code *Code) error {
	if code.Len == 0 {
		return errZeroLength
	}
	p := int32(0)
	last := int(code.Len) - 1
	for i := 0; i < last; i++ {
		b := code.Bit(i)
		c := d.nodes[p][b]
		switch {
		case c < 0:
			return errThroughLeaf
		case c == 0:
			c = int32(len(d.nodes))
			d.nodes = append(d.nodes, [2]int32{})
			d.nodes[p][b] = c
		}
		p = c
	}
	b := code.Bit(last)
	if d.nodes[p][b] != 0 {
		return errOccupied
	}
	d.nodes[p][b] = ^int32(symbol)
	return nil
}

// Next returns the child of node reached with bit.
func (d *Decoder) Next(node int32, bit uint) int32 {
	return d.nodes[node][bit&1]
}

// Len returns the number of internal nodes including the root.
func (d *Decoder) Len() int {
	return len(d.nodes)
}
