package yen

import (
	"slices"

	"github.com/tidwall/btree"
)

// pool holds candidate paths not yet confirmed, ordered so that the next
// path to confirm is always the tree's maximum. Identical paths occupy a
// single slot.
type pool struct {
	tree *btree.BTreeG[[]int]
}

// newPool returns an empty pool for the given order. The search is
// single-threaded, so the tree runs without its internal locks.
func newPool(order Order) *pool {
	return &pool{
		tree: btree.NewBTreeGOptions(lessFor(order), btree.Options{NoLocks: true}),
	}
}

// lessFor returns the strict ordering whose maximum is the next candidate.
func lessFor(order Order) func(a, b []int) bool {
	if order == OrderShortestFirst {
		return func(a, b []int) bool {
			if len(a) != len(b) {
				return len(a) > len(b)
			}
			return slices.Compare(a, b) < 0
		}
	}

	return func(a, b []int) bool {
		return slices.Compare(a, b) < 0
	}
}

// push adds path and reports whether it was new.
func (p *pool) push(path []int) bool {
	_, replaced := p.tree.Set(path)

	return !replaced
}

// pop removes and returns the next candidate.
func (p *pool) pop() ([]int, bool) {
	return p.tree.PopMax()
}

func (p *pool) len() int {
	return p.tree.Len()
}
