// File: edit.go
// Role: Scoped, reversible edge suppression (Edit).
// Determinism:
//   - Restore undoes removals in reverse order at their original positions,
//     so adjacency order after Restore equals adjacency order before BeginEdit.
// Concurrency:
//   - Each Suppress/Isolate/Restore step takes mu for writing. The Edit as a
//     whole is not atomic; hold Graph.Reserve to keep other writers out.

package core

// removal records one detached edge and where its endpoints used to sit.
type removal struct {
	u, v   int
	iu, iv int
}

// Edit is a scoped set of edge removals on a Graph. Every edge removed
// through an Edit is put back by Restore, which is idempotent and meant to be
// deferred right after BeginEdit so that every exit path restores the graph.
//
// The graph must not be mutated outside the Edit between BeginEdit and
// Restore; positional restoration relies on it.
type Edit struct {
	g    *Graph
	undo []removal
}

// BeginEdit opens a new scoped edit on g.
func (g *Graph) BeginEdit() *Edit {
	return &Edit{g: g}
}

// Suppress removes the edge {u,v} if it exists and reports whether it did.
// Suppressing an absent edge is a no-op, so callers may suppress the same
// pair from several sources without checking HasEdge first.
// Complexity: O(deg(u) + deg(v)).
func (e *Edit) Suppress(u, v int) bool {
	g := e.g
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.valid(u) || !g.valid(v) {
		return false
	}
	iu, iv, ok := g.detach(u, v)
	if ok {
		e.undo = append(e.undo, removal{u: u, v: v, iu: iu, iv: iv})
	}

	return ok
}

// Isolate removes every edge incident to u and returns how many were removed.
// Complexity: O(deg(u) · max deg).
func (e *Edit) Isolate(u int) int {
	g := e.g
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.valid(u) {
		return 0
	}
	n := 0
	// Always detach the current head; detach shifts the slice left.
	for len(g.adj[u]) > 0 {
		v := g.adj[u][0]
		iu, iv, _ := g.detach(u, v)
		e.undo = append(e.undo, removal{u: u, v: v, iu: iu, iv: iv})
		n++
	}

	return n
}

// Len returns the number of edges currently suppressed by e.
func (e *Edit) Len() int {
	return len(e.undo)
}

// Restore re-inserts every suppressed edge, newest first, and empties e.
// Calling Restore again is a no-op.
// Complexity: O(k · max deg) for k suppressed edges.
func (e *Edit) Restore() {
	if len(e.undo) == 0 {
		return
	}
	g := e.g
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := len(e.undo) - 1; i >= 0; i-- {
		r := e.undo[i]
		g.attach(r.u, r.v, r.iu, r.iv)
	}
	e.undo = e.undo[:0]
}
