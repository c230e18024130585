// File: builder_impl_test.go
// Package builder_test contains functional tests for the constructors in the
// builder package, verifying topology, counts, determinism and errors.
package builder_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvyen/builder"
	"github.com/katalvlaran/lvyen/core"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		n           int
		ctor        builder.Constructor
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", n: 5, ctor: builder.Cycle(5), wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					if !g.HasEdge(i, (i+1)%5) {
						t.Errorf("Cycle: missing edge %d-%d", i, (i+1)%5)
					}
				}
			},
		},
		{
			name: "Path(4)", n: 4, ctor: builder.Path(4), wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				want := [][2]int{{0, 1}, {1, 2}, {2, 3}}
				if got := g.Edges(); !reflect.DeepEqual(got, want) {
					t.Errorf("Path edges = %v; want %v", got, want)
				}
			},
		},
		{
			name: "Complete(5)", n: 5, ctor: builder.Complete(5), wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for u := 0; u < 5; u++ {
					if g.Degree(u) != 4 {
						t.Errorf("Complete: Degree(%d) = %d; want 4", u, g.Degree(u))
					}
				}
			},
		},
		{
			name: "Path(3) on 6 vertices", n: 6, ctor: builder.Path(3), wantE: 2,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for u := 3; u < 6; u++ {
					if g.Degree(u) != 0 {
						t.Errorf("vertex %d outside the span must stay isolated", u)
					}
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.n, nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.n, g.Size())
			require.Equal(t, tc.wantE, g.EdgeCount())
			tc.sampleCheck(t, g)
		})
	}
}

// TestBuilders_Errors asserts sentinel errors for invalid parameters.
func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		n    int
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Cycle too small", 2, nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path too small", 1, nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Complete exceeds graph", 3, nil, builder.Complete(4), builder.ErrBadSize},
		{"p below range", 3, nil, builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"p above range", 3, nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"missing rng", 3, nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", 3, nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.n, tc.opts, tc.ctor)
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := builder.BuildGraph(0, nil); !errors.Is(err, builder.ErrTooFewVertices) {
		t.Errorf("BuildGraph(0): want ErrTooFewVertices, got %v", err)
	}
	// Overlapping constructors surface core errors through the wrap chain.
	_, err := builder.BuildGraph(4, nil, builder.Path(4), builder.Cycle(4))
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

// TestRandomSparse_Deterministic checks that equal seeds give identical graphs.
func TestRandomSparse_Deterministic(t *testing.T) {
	const n, p = 60, 0.2
	g1, err := builder.BuildGraph(n, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(n, p))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(n, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(42)))}, builder.RandomSparse(n, p))
	require.NoError(t, err)

	require.True(t, g1.Equal(g2))
	for u := 0; u < n; u++ {
		require.Equal(t, g1.Neighbors(u), g2.Neighbors(u), "neighbor order of %d", u)
	}
}

// TestRandomSparse_Extremes checks p=0 and p=1 without an RNG.
func TestRandomSparse_Extremes(t *testing.T) {
	empty, err := builder.BuildGraph(8, nil, builder.RandomSparse(8, 0))
	require.NoError(t, err)
	require.Zero(t, empty.EdgeCount())

	full, err := builder.BuildGraph(8, nil, builder.RandomSparse(8, 1))
	require.NoError(t, err)
	require.Equal(t, 8*7/2, full.EdgeCount())
}

// TestRandomSparse_Density checks the edge count stays near p·C(n,2) and no
// self-loops appear.
func TestRandomSparse_Density(t *testing.T) {
	const n, p = 200, 0.1
	g, err := builder.BuildGraph(n, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(n, p))
	require.NoError(t, err)

	pairs := float64(n*(n-1)) / 2
	got := float64(g.EdgeCount())
	require.InDelta(t, p*pairs, got, 0.15*p*pairs)
	for u := 0; u < n; u++ {
		require.False(t, g.HasEdge(u, u))
	}
}

// TestWithRand_PanicsOnNil keeps the option-constructor panic contract.
func TestWithRand_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
}
