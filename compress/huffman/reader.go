// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"io"
)

// Reader decompresses a stream read from an underlying reader. The whole
// stream is consumed and decoded on the first call to Read.
type Reader struct {
	under  io.Reader
	format Format
	cfg    Config
	out    *bytes.Reader
	err    error
}

// NewReader returns a Reader decoding format f from under.
func NewReader(under io.Reader, f Format, cfg Config) *Reader {
	return &Reader{under: under, format: f, cfg: cfg}
}

func (r *Reader) Read(b []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.out == nil {
		data, err := io.ReadAll(r.under)
		if err != nil {
			r.err = err
			return 0, err
		}
		out, err := decode(data, r.format, r.cfg)
		if err != nil {
			r.err = err
			return 0, err
		}
		r.out = bytes.NewReader(out)
	}
	return r.out.Read(b)
}

// Reset discards any state and switches to a new underlying reader.
func (r *Reader) Reset(under io.Reader) error {
	r.under = under
	r.out = nil
	r.err = nil
	return nil
}

func (r *Reader) Close() error {
	return nil
}
