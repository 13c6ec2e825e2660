// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package tree builds Huffman trees from byte histograms and derives the
// per-symbol codes, and rebuilds decode trees from serialized codes.
package tree

import (
	"sort"

	"github.com/intel/fasthuff/compress/huffman/internal/hist"
)

// Kind is the variant part of a Node: either a Leaf or an Internal node.
type Kind interface {
	kind()
}

// Leaf is a tree node carrying one symbol.
type Leaf struct {
	Symbol byte
}

// Internal is a tree node with exactly two children, referenced by their
// arena index. Left is reached with bit 0, Right with bit 1.
type Internal struct {
	Left, Right int32
}

func (Leaf) kind()     {}
func (Internal) kind() {}

// NoParent is the parent index of the root.
const NoParent = -1

// Node is an element of the tree arena.
// Parent is only used to walk from a leaf back to the root.
type Node struct {
	Weight uint64
	Parent int32
	Kind   Kind
}

// Tree is a Huffman tree stored in an arena. Nodes never outlive the
// arena and only refer to each other by index.
type Tree struct {
	nodes []Node
	leaf  [hist.Symbols]int32
}

// Build constructs the Huffman tree for freq by repeatedly merging the two
// nodes of smallest weight.
//
// Ties are broken deterministically: a leaf is preferred over an internal
// node of the same weight, leaves of the same weight are taken in
// ascending symbol order and internal nodes in creation order. The first
// node taken becomes the left child.
//
// A histogram with a single symbol yields a tree whose root is that leaf.
// An empty histogram yields an empty tree.
func Build(freq *hist.Table) *Tree {
	t := &Tree{nodes: make([]Node, 0, 2*hist.Symbols-1)}
	leaves := make([]int32, 0, hist.Symbols)
	for s, w := range freq {
		t.leaf[s] = -1
		if w == 0 {
			continue
		}
		t.leaf[s] = int32(len(t.nodes))
		leaves = append(leaves, int32(len(t.nodes)))
		t.nodes = append(t.nodes, Node{Weight: w, Parent: NoParent, Kind: Leaf{Symbol: byte(s)}})
	}
	// leaves were appended in symbol order, a stable sort keeps it among equal weights
	sort.SliceStable(leaves, func(i, j int) bool {
		return t.nodes[leaves[i]].Weight < t.nodes[leaves[j]].Weight
	})

	// Internal nodes are created with non-decreasing weights, so a FIFO
	// queue of them stays sorted and the minimum is always at one of the
	// two queue heads.
	merged := make([]int32, 0, len(leaves))
	li, mi := 0, 0
	next := func() int32 {
		if li < len(leaves) && (mi == len(merged) || t.nodes[leaves[li]].Weight <= t.nodes[merged[mi]].Weight) {
			li++
			return leaves[li-1]
		}
		mi++
		return merged[mi-1]
	}
	for remaining := len(leaves); remaining > 1; remaining-- {
		left := next()
		right := next()
		idx := int32(len(t.nodes))
		t.nodes = append(t.nodes, Node{
			Weight: t.nodes[left].Weight + t.nodes[right].Weight,
			Parent: NoParent,
			Kind:   Internal{Left: left, Right: right},
		})
		t.nodes[left].Parent = idx
		t.nodes[right].Parent = idx
		merged = append(merged, idx)
	}
	return t
}

// Root returns the arena index of the root, or -1 for an empty tree.
func (t *Tree) Root() int32 {
	return int32(len(t.nodes)) - 1
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node at arena index i.
func (t *Tree) Node(i int32) Node {
	return t.nodes[i]
}

// Leaf returns the arena index of the leaf holding symbol s, or -1 when s
// is not in the tree.
func (t *Tree) Leaf(s byte) int32 {
	return t.leaf[s]
}

// Codes derives the code of every symbol in the tree by walking from its
// leaf up to the root. Symbols not in the tree get a zero Code.
func (t *Tree) Codes() (codes Codes) {
	if len(t.nodes) == 1 {
		// a lone leaf still needs one bit per occurrence
		s := t.nodes[0].Kind.(Leaf).Symbol
		codes[s].Len = 1
		return codes
	}
	var path [hist.Symbols]uint8
	for s, idx := range t.leaf {
		if idx < 0 {
			continue
		}
		depth := 0
		for n := idx; t.nodes[n].Parent != NoParent; n = t.nodes[n].Parent {
			parent := t.nodes[t.nodes[n].Parent].Kind.(Internal)
			path[depth] = 0
			if parent.Right == n {
				path[depth] = 1
			}
			depth++
		}
		c := &codes[s]
		c.Len = uint8(depth)
		for i := 0; i < depth; i++ {
			if path[depth-1-i] != 0 {
				c.setBit(i)
			}
		}
	}
	return codes
}
