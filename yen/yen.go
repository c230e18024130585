package yen

import (
	"fmt"

	"github.com/katalvlaran/lvyen/bfs"
	"github.com/katalvlaran/lvyen/core"
)

// search encapsulates mutable state of one Find call.
type search struct {
	graph     *core.Graph
	opts      Options
	end       int
	length    int
	confirmed [][]int
	pool      *pool
	res       *Result
}

// Find looks for a simple path from start to end with exactly length
// vertices. When none is found the returned Result has Found == false and
// a nil error; errors are reserved for invalid input (ErrGraphNil,
// ErrVertexNotFound, ErrBadLength, ErrOptionViolation) and cancellation.
//
// The graph is mutated during the call and restored before it returns, on
// every exit path. Find holds g.Reserve for its whole duration.
//
// Termination:
//   - seed shortest path missing, or longer than length → not found;
//   - popped candidate of exactly length vertices → found;
//   - popped candidate longer than length → not found (unless WithExhaustive);
//   - empty pool → not found.
func Find(g *core.Graph, start, end, length int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.Size()
	if start < 0 || start >= n || end < 0 || end >= n {
		return nil, fmt.Errorf("%w: start=%d end=%d on %d vertices", ErrVertexNotFound, start, end, n)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadLength, length)
	}

	res := &Result{}
	// A simple path visits each vertex at most once.
	if length == 0 || length > n {
		return res, nil
	}
	if start == end {
		if length == 1 {
			res.Path, res.Found = []int{start}, true
		}
		return res, nil
	}

	defer g.Reserve()()

	s := &search{
		graph:  g,
		opts:   o,
		end:    end,
		length: length,
		pool:   newPool(o.Order),
		res:    res,
	}
	if err := s.run(start); err != nil {
		return res, err
	}

	return res, nil
}

// run drives seeding, expanding and selecting until a terminal condition.
func (s *search) run(start int) error {
	seed, err := bfs.ShortestPath(s.graph, start, s.end, bfs.WithContext(s.opts.Ctx))
	if err != nil || seed == nil {
		return err
	}
	// No simple path is shorter than the shortest one, whatever the order.
	if len(seed) > s.length || s.accept(seed) {
		return nil
	}

	for {
		if err := s.opts.Ctx.Err(); err != nil {
			return err
		}
		if err := s.expand(s.confirmed[len(s.confirmed)-1]); err != nil {
			return err
		}
		next, ok := s.pool.pop()
		if !ok {
			// search space exhausted
			return nil
		}
		if s.accept(next) {
			return nil
		}
	}
}

// accept applies the length checks to a selected path and reports whether
// the search is over. Paths that do not end it are confirmed.
func (s *search) accept(path []int) (done bool) {
	switch {
	case len(path) == s.length:
		s.res.Path, s.res.Found = path, true
		return true
	case len(path) > s.length && !s.opts.Exhaustive:
		return true
	}
	s.confirmed = append(s.confirmed, path)
	s.res.Confirmed++
	s.opts.OnConfirm(path)

	return false
}
