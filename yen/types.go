package yen

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for path search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("yen: graph is nil")

	// ErrVertexNotFound is returned when start or end lies outside the graph.
	ErrVertexNotFound = errors.New("yen: vertex not found")

	// ErrBadLength is returned for a negative requested vertex count.
	ErrBadLength = errors.New("yen: length must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("yen: invalid option supplied")
)

// Order selects which candidate the pool yields next.
type Order int

const (
	// OrderLexMax yields the lexicographically greatest vertex sequence first
	// (first differing vertex id decides; a strict prefix is smaller). Path
	// length plays no role, so stopping at the first over-long candidate is a
	// heuristic under this order: a matching path may still be reachable.
	OrderLexMax Order = iota

	// OrderShortestFirst yields the candidate with the fewest vertices first,
	// ties broken by OrderLexMax. Confirmed paths then come out in
	// non-decreasing length and stopping at the first over-long candidate
	// never misses a matching path.
	OrderShortestFirst
)

// String returns the flag spelling of the order.
func (o Order) String() string {
	switch o {
	case OrderLexMax:
		return "lex"
	case OrderShortestFirst:
		return "shortest"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps "lex" / "shortest" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "lex":
		return OrderLexMax, nil
	case "shortest":
		return OrderShortestFirst, nil
	default:
		return 0, fmt.Errorf("%w: unknown order %q (want lex or shortest)", ErrOptionViolation, s)
	}
}

// Option configures Find via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation. The default never cancels.
	Ctx context.Context

	// Order is the candidate-pool policy.
	Order Order

	// Exhaustive keeps searching after an over-long candidate is popped,
	// until the pool drains.
	Exhaustive bool

	// OnConfirm is called with every path accepted for further deviation,
	// the seed shortest path included. The slice must not be modified.
	OnConfirm func(path []int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the options Find uses when none are given:
// background context, OrderLexMax, short-circuit on over-long candidates,
// no-op OnConfirm.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Order:     OrderLexMax,
		OnConfirm: func([]int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOrder selects the candidate ordering policy.
func WithOrder(order Order) Option {
	return func(o *Options) {
		switch order {
		case OrderLexMax, OrderShortestFirst:
			o.Order = order
		default:
			o.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, int(order))
		}
	}
}

// WithExhaustive disables the over-long short-circuit.
func WithExhaustive() Option {
	return func(o *Options) { o.Exhaustive = true }
}

// WithOnConfirm registers a callback for confirmed paths.
func WithOnConfirm(fn func(path []int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnConfirm = fn
		}
	}
}

// Result is the outcome of Find.
//   - Path/Found: the exact-length path, or nil/false.
//   - Confirmed: paths accepted for deviation, seed included.
//   - Generated: candidates produced by spur searches, duplicates included.
//   - Spurs: spur searches run.
type Result struct {
	Path      []int
	Found     bool
	Confirmed int
	Generated int
	Spurs     int
}
