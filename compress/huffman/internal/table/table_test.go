// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package table

import (
	"bytes"
	"errors"
	"testing"

	"github.com/intel/fasthuff/compress/huffman/internal/hist"
	"github.com/intel/fasthuff/compress/huffman/internal/tree"
)

func codesFor(input string) tree.Codes {
	freq := hist.Count([]byte(input))
	return tree.Build(&freq).Codes()
}

func TestWriteLayout(t *testing.T) {
	codes := codesFor("AAAAAAAA")
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, &codes, 8); err != nil {
		t.Fatal(err)
	}
	expected := []byte{
		0, 0, 0, 1, // count
		0, 0, 0, 0, 0, 0, 0, 8, // size
		'A', 1, 0x00, // symbol, numbits, code
	}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Fatalf("expected % x, got % x", expected, buf.Bytes())
	}
	if Size(&codes) != len(expected) {
		t.Fatalf("Size reports %d, expected %d", Size(&codes), len(expected))
	}
}

func TestWriteEmpty(t *testing.T) {
	var codes tree.Codes
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, &codes, 0); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), make([]byte, 12)) {
		t.Fatalf("unexpected empty header % x", buf.Bytes())
	}
	h, n, err := Read(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if n != 12 || h.Symbols != 0 || h.Size != 0 {
		t.Fatalf("unexpected header %+v (%d bytes)", h, n)
	}
}

func TestRoundTrip(t *testing.T) {
	input := "It is a truth universally acknowledged, that a single man in possession of a good fortune, must be in want of a wife."
	codes := codesFor(input)
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, &codes, uint64(len(input))); err != nil {
		t.Fatal(err)
	}
	buf.WriteString("trailing payload")
	h, n, err := Read(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if n != Size(&codes) {
		t.Fatalf("consumed %d bytes, expected %d", n, Size(&codes))
	}
	if h.Size != uint64(len(input)) || h.Symbols != codes.Count() {
		t.Fatalf("unexpected header %d symbols, %d bytes", h.Symbols, h.Size)
	}
	if h.Codes != codes {
		t.Fatal("codes differ after a round trip")
	}
	if string(buf.Bytes()[n:]) != "trailing payload" {
		t.Fatal("Read consumed bytes past the table")
	}
}

func TestReadTruncated(t *testing.T) {
	codes := codesFor("mississippi river")
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, &codes, 17); err != nil {
		t.Fatal(err)
	}
	full := buf.Bytes()
	for i := 0; i < len(full); i++ {
		_, _, err := Read(full[:i])
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("prefix of %d bytes: expected ErrMalformed, got %v", i, err)
		}
	}
}

func TestReadInvalid(t *testing.T) {
	header := func(count uint32, size uint64, entries ...byte) []byte {
		b := []byte{byte(count >> 24), byte(count >> 16), byte(count >> 8), byte(count)}
		for i := 7; i >= 0; i-- {
			b = append(b, byte(size>>(8*i)))
		}
		return append(b, entries...)
	}
	cases := map[string][]byte{
		"too many symbols":  header(257, 1),
		"size without code": header(0, 5),
		"zero length code":  header(1, 1, 'a', 0),
		"duplicate symbol":  header(2, 2, 'a', 1, 0, 'a', 1, 1),
		"through a leaf":    header(2, 2, 'a', 1, 0, 'b', 2, 0),
		"occupied leaf":     header(2, 2, 'a', 2, 1, 'b', 2, 1),
		"occupied internal": header(2, 2, 'a', 2, 1, 'b', 1, 1),
	}
	for name, data := range cases {
		if _, _, err := Read(data); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: expected ErrMalformed, got %v", name, err)
		}
	}
}

func TestOffsets(t *testing.T) {
	offsets := []uint64{0, 3, 3, 10}
	buf := bytes.NewBuffer(nil)
	if err := WriteOffsets(buf, offsets); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != OffsetsSize(len(offsets)) {
		t.Fatalf("wrote %d bytes, expected %d", buf.Len(), OffsetsSize(len(offsets)))
	}
	buf.Write(make([]byte, 12))
	got, n, err := ReadOffsets(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if n != OffsetsSize(len(offsets)) {
		t.Fatalf("consumed %d bytes", n)
	}
	for i := range offsets {
		if got[i] != offsets[i] {
			t.Fatalf("offset %d: expected %d, got %d", i, offsets[i], got[i])
		}
	}
}

func TestReadOffsetsInvalid(t *testing.T) {
	encode := func(packed int, offsets ...uint64) []byte {
		buf := bytes.NewBuffer(nil)
		WriteOffsets(buf, offsets)
		buf.Write(make([]byte, packed))
		return buf.Bytes()
	}
	cases := map[string][]byte{
		"empty":          nil,
		"no chunks":      encode(4),
		"first not zero": encode(4, 1, 2),
		"decreasing":     encode(4, 0, 3, 2),
		"past the end":   encode(4, 0, 5),
		"count too big":  {0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0, 0, 0, 0, 0},
		"truncated":      encode(0, 0, 0)[:10],
	}
	for name, data := range cases {
		if _, _, err := ReadOffsets(data); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: expected ErrMalformed, got %v", name, err)
		}
	}
}
