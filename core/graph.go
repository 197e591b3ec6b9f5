// Accessor methods of Graph. All of them are read-only; a Graph never
// changes after NewGraph returns.
package core

// NumVertices returns |V|.
func (g *Graph) NumVertices() int { return g.numVertices }

// NumEdges returns |E|.
func (g *Graph) NumEdges() int { return len(g.edges) }

// EdgeAt returns the edge record for id. The boolean is false when id is out
// of range.
func (g *Graph) EdgeAt(id int) (Edge, bool) {
	if id < 0 || id >= len(g.edges) {
		return Edge{}, false
	}

	return g.edges[id], true
}

// Weight returns p_e for edge id, or 0 when id is out of range.
func (g *Graph) Weight(id int) float64 {
	if id < 0 || id >= len(g.edges) {
		return 0
	}

	return g.edges[id].Weight
}

// Dedicated returns q_v for vertex v, or 0 when v is out of range.
func (g *Graph) Dedicated(v int) float64 {
	if v < 0 || v >= g.numVertices {
		return 0
	}

	return g.dedicated[v]
}

// IncidentEdges returns the edge ids touching v, sorted ascending.
// The returned slice is shared with the Graph and must not be mutated.
// Complexity: O(1).
func (g *Graph) IncidentEdges(v int) []int {
	if v < 0 || v >= g.numVertices {
		return nil
	}

	return g.incident[v]
}

// Degree returns the number of edges touching v (parallel edges counted
// individually).
func (g *Graph) Degree(v int) int { return len(g.IncidentEdges(v)) }

// OtherEndpoint returns the endpoint of edge id opposite to v.
// Returns ErrEdgeOutOfRange or ErrNotEndpoint accordingly.
func (g *Graph) OtherEndpoint(id, v int) (int, error) {
	e, ok := g.EdgeAt(id)
	if !ok {
		return Unassigned, ErrEdgeOutOfRange
	}
	switch v {
	case e.U:
		return e.V, nil
	case e.V:
		return e.U, nil
	}

	return Unassigned, ErrNotEndpoint
}

// HasEndpoint reports whether v is an endpoint of edge id.
func (g *Graph) HasEndpoint(id, v int) bool {
	e, ok := g.EdgeAt(id)

	return ok && (e.U == v || e.V == v)
}

// IsBig reports whether edge id is big, i.e. p_e > BigThreshold.
func (g *Graph) IsBig(id int) bool { return g.Weight(id) > BigThreshold }

// BigEdges returns the ids of all big edges, ascending.
// Complexity: O(E).
func (g *Graph) BigEdges() []int {
	var big []int
	for id := range g.edges {
		if g.IsBig(id) {
			big = append(big, id)
		}
	}

	return big
}

// Scale returns a copy of g with every weight and dedicated load multiplied
// by factor. The decision procedure uses Scale(1/T) to reduce "makespan ≤ T"
// to the canonical target 1.
// Complexity: O(V + E).
func (g *Graph) Scale(factor float64) *Graph {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	for i := range edges {
		edges[i].Weight *= factor
	}

	dedicated := make([]float64, g.numVertices)
	for v, q := range g.dedicated {
		dedicated[v] = q * factor
	}

	// Inputs were validated once; a positive factor cannot invalidate them.
	scaled, _ := NewGraph(g.numVertices, edges, dedicated)

	return scaled
}
