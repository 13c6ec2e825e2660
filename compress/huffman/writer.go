// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"errors"
	"io"
)

var errClosed = errors.New("huffman: write after close")

// Writer compresses everything written to it as a single stream. The code
// table depends on the whole input, so data is buffered and encoded when
// the Writer is closed.
type Writer struct {
	err    error
	under  io.Writer
	format Format
	cfg    Config
	buf    []byte
	closed bool
}

// NewWriter returns a Writer producing format f on under.
func NewWriter(under io.Writer, f Format, cfg Config) *Writer {
	return &Writer{under: under, format: f, cfg: cfg}
}

// Write buffers data until Close.
func (w *Writer) Write(data []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, errClosed
	}
	w.buf = append(w.buf, data...)
	return len(data), nil
}

// Reset discards buffered data and switches to a new underlying writer,
// keeping the format and configuration.
func (w *Writer) Reset(under io.Writer) {
	w.under = under
	w.buf = w.buf[:0]
	w.err = nil
	w.closed = false
}

// Close encodes the buffered data and writes the stream. It does not
// close the underlying writer.
func (w *Writer) Close() (err error) {
	if w.err != nil || w.closed {
		return w.err
	}
	w.closed = true
	_, w.err = w.under.Write(encode(w.buf, w.format, w.cfg))
	return w.err
}
