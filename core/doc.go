// Package core defines the fundamental data model for graph balancing:
// weighted multigraphs with per-vertex dedicated loads, and edge orientations.
//
// Overview:
//
//   - A Graph is G = (V, E, p, q): vertices 0..n-1, an indexed list of
//     undirected edges (parallel edges allowed, self-loops rejected), a
//     positive weight p_e per edge, and a non-negative dedicated load q_v
//     per vertex. Graphs are immutable after construction and may be shared
//     freely across goroutines (read-only).
//   - An Orientation assigns each edge to exactly one of its endpoints.
//     The load of a vertex v is q_v plus the weights of all edges oriented
//     into v; the makespan is the maximum load over all vertices.
//   - Edges with weight strictly above BigThreshold (1/2) are "big" —
//     the balancing algorithms treat them specially.
//
// Edge identity is by integer index, never by endpoint pair: two parallel
// edges between the same vertices are distinct objects with distinct indices.
// Incidence lists are precomputed at construction, so IncidentEdges is O(1)
// and always sorted ascending by edge id (the determinism contract of the
// rounding driver relies on this ordering).
//
// Errors (sentinel):
//
//	– ErrVertexOutOfRange if an endpoint or vertex index is outside 0..n-1.
//	– ErrBadWeight        if an edge weight is non-positive, NaN or ±Inf.
//	– ErrBadDedicated     if a dedicated load is negative, NaN or ±Inf.
//	– ErrSelfLoop         if an edge has identical endpoints.
//	– ErrLengthMismatch   if the dedicated-load slice length differs from n.
//	– ErrEdgeOutOfRange   if an edge index is outside 0..m-1.
//	– ErrNotEndpoint      if an orientation targets a non-endpoint vertex.
//	– ErrNotTotal         if a partial orientation is used where a total one
//	                      is required.
//
// Complexity:
//
//	– NewGraph:        O(V + E)
//	– IncidentEdges:   O(1) (returns a shared slice; callers must not mutate)
//	– Load:            O(deg v)
//	– Makespan:        O(V + E)
package core
