// Package fasthuff provides a Huffman compressor whose encoder and decoder
// can split their input into independent byte-aligned chunks and process
// them on all available CPUs.
package fasthuff

import "github.com/intel/fasthuff/internal/cpu"

// Parallel reports whether the chunk-parallel codec will use more than one
// worker by default. It returns false when GOMAXPROCS is 1, in which case
// the parallel entry points produce a single chunk.
func Parallel() bool {
	return cpu.Workers() > 1
}
