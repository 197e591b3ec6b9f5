package lp3

import "github.com/katalvlaran/gbalance/core"

// BuildProblem derives the LP3 program from g at target 1 (callers scale the
// graph beforehand to encode other targets).
//
// Row order is deterministic: edge rows by edge id, then load rows by vertex
// id, then star rows by vertex id (only for vertices touching a big edge).
// The load rows fold the dedicated load into the right-hand side,
// Σ x_ev · p_e ≤ 1 − q_v, which may legitimately be negative — the program is
// then infeasible and the engine reports it as such.
//
// Complexity: O(V + E) time and space.
func BuildProblem(g *core.Graph) (*Problem, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	m := g.NumEdges()
	p := &Problem{
		NumVars: 2 * m,
		Cost:    make([]float64, 2*m),
		g:       g,
	}

	// Edge rows: x_eu + x_ev = 1.
	p.Eq = make([]Constraint, 0, m)
	for id := 0; id < m; id++ {
		p.Eq = append(p.Eq, Constraint{
			Cols:  []int{2 * id, 2*id + 1},
			Coefs: []float64{1, 1},
			RHS:   1,
		})
	}

	// Load rows: Σ_{e ∋ v} x_ev · p_e ≤ 1 − q_v.
	for v := 0; v < g.NumVertices(); v++ {
		incident := g.IncidentEdges(v)
		if len(incident) == 0 {
			continue
		}
		row := Constraint{RHS: 1 - g.Dedicated(v)}
		for _, id := range incident {
			row.Cols = append(row.Cols, p.Column(id, v))
			row.Coefs = append(row.Coefs, g.Weight(id))
		}
		p.Ub = append(p.Ub, row)
	}

	// Star rows: Σ_{big e ∋ v} x_ev ≤ 1.
	for v := 0; v < g.NumVertices(); v++ {
		var row Constraint
		for _, id := range g.IncidentEdges(v) {
			if g.IsBig(id) {
				row.Cols = append(row.Cols, p.Column(id, v))
				row.Coefs = append(row.Coefs, 1)
			}
		}
		if len(row.Cols) == 0 {
			continue
		}
		row.RHS = 1
		p.Ub = append(p.Ub, row)
	}

	return p, nil
}

// denseRows expands sparse constraints into the dense [][]float64 / []float64
// shape the simplex engines consume. Returns (nil, nil) for an empty set.
func denseRows(rows []Constraint, numVars int) ([][]float64, []float64) {
	if len(rows) == 0 {
		return nil, nil
	}

	a := make([][]float64, len(rows))
	b := make([]float64, len(rows))
	for i, row := range rows {
		a[i] = make([]float64, numVars)
		for j, col := range row.Cols {
			a[i][col] += row.Coefs[j]
		}
		b[i] = row.RHS
	}

	return a, b
}
