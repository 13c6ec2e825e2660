// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package codec

import "github.com/intel/fasthuff/compress/huffman/internal/table"

// Info describes the header of a compressed stream.
type Info struct {
	Symbols     int             // distinct symbols in the code table
	Size        uint64          // original size in bytes
	HeaderBytes int             // code table and offset table
	PackedBytes int             // packed bitstream
	Offsets     []uint64        // chunk start offsets, chunked streams only
	Codes       map[byte]string // code of every symbol, first bit first
}

// Inspect parses the header of a stream without decoding its payload.
// chunked selects the layout written by EncodeParallel.
func Inspect(data []byte, chunked bool) (*Info, error) {
	h, n, err := table.Read(data)
	if err != nil {
		return nil, err
	}
	info := &Info{
		Symbols: h.Symbols,
		Size:    h.Size,
		Codes:   make(map[byte]string, h.Symbols),
	}
	for s := range h.Codes {
		if h.Codes[s].Len != 0 {
			info.Codes[byte(s)] = h.Codes[s].String()
		}
	}
	if chunked {
		offsets, m, err := table.ReadOffsets(data[n:])
		if err != nil {
			return nil, err
		}
		info.Offsets = offsets
		n += m
	}
	info.HeaderBytes = n
	info.PackedBytes = len(data) - n
	return info, nil
}
