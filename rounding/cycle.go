package rounding

import (
	"github.com/katalvlaran/gbalance/fractional"
)

// FindCycle locates a directed cycle in the fractional support graph G_x.
//
// Strategy: start at the smallest-id vertex with fractional degree ≥ 1 and
// extend a walk one support edge at a time, preferring big support edges and
// breaking ties by smallest edge id. The arriving edge is never re-traversed,
// so a 2-cycle is only reported across two distinct parallel edges. The walk
// marks each vertex with its position; revisiting a marked vertex closes the
// cycle, which is returned as the walk suffix from that position.
//
// The tail of every arc is the walk's current vertex — the convention Rotate
// expects: x_{e,tail} is the variable the rotation decreases, and both
// endpoints of a support edge are strictly positive, so δ > 0 holds for any
// tail choice.
//
// When the support restricted to a component is a tree plus at most one
// extra edge (the LP3 pseudoforest structure), the walk must close within
// |V| steps whenever no leaf exists; a dead end returns ErrNoCycle.
//
// Complexity: O(V + E) time, O(V) space.
func FindCycle(x *fractional.Assignment) ([]Arc, error) {
	if x == nil {
		return nil, ErrNilAssignment
	}

	g := x.Graph()
	n := g.NumVertices()

	start := -1
	for v := 0; v < n; v++ {
		if x.FractionalDegree(v) > 0 {
			start = v

			break
		}
	}
	if start < 0 {
		return nil, ErrNoCycle
	}

	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}

	var walk []Arc
	cur, lastEdge := start, -1
	for {
		if pos[cur] >= 0 {
			return walk[pos[cur]:], nil
		}
		pos[cur] = len(walk)

		id := nextSupportEdge(x, cur, lastEdge)
		if id < 0 {
			// Dead end: cur is a leaf of G_x. The driver only asks for a
			// cycle when no leaf exists, so this is an invariant violation.
			return nil, ErrNoCycle
		}

		head, err := g.OtherEndpoint(id, cur)
		if err != nil {
			return nil, err
		}
		walk = append(walk, Arc{Edge: id, Tail: cur, Head: head})
		cur, lastEdge = head, id
	}
}

// nextSupportEdge picks the edge to extend the walk from v: big support
// edges first, then small ones, smallest id within each class; the edge the
// walk arrived on is excluded.
func nextSupportEdge(x *fractional.Assignment, v, lastEdge int) int {
	g := x.Graph()
	bestSmall := -1
	for _, id := range x.IncidentFractional(v) {
		if id == lastEdge {
			continue
		}
		if g.IsBig(id) {
			// Incident lists are ascending, so the first big hit wins.
			return id
		}
		if bestSmall < 0 {
			bestSmall = id
		}
	}

	return bestSmall
}
