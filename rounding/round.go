package rounding

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gbalance/core"
	"github.com/katalvlaran/gbalance/fractional"
)

// Round integralizes a feasible LP3 assignment in place and returns the
// induced orientation.
//
// The state machine evaluates, on each macro-step and in this order:
//
//	(R1) Leaf present — the smallest-id vertex v with fractional degree 1,
//	     with unique fractional edge e = {u, v} and α = x_eu · p_e:
//	     (R1a) α ≤ LeafThreshold: orient e toward the leaf (x_ev := 1).
//	           Equality at the threshold takes this branch.
//	     (R1b) α > LeafThreshold: orient the big-support component of e away
//	           from v — BFS from v in vertex-id order, each tree edge set
//	           integral toward the child. Small fractional edges at v and
//	           non-tree edges stay for later steps.
//	(R2) No leaf — find a directed cycle in G_x and Rotate along it.
//
// Every rule removes at least one edge from the support, so the loop runs at
// most |E| macro-steps; a step that fails to shrink the support aborts with
// ErrStalled. When the support empties the assignment is integral and the
// orientation is total by construction.
//
// Round assumes x came from a feasible LP3 solve (its big support is a
// pseudoforest). On corrupt input it fails with ErrNoCycle or ErrStalled
// rather than looping.
//
// Complexity: O(|E|) macro-steps of O(V + E) each.
func Round(x *fractional.Assignment, opts Options) (*core.Orientation, error) {
	if x == nil {
		return nil, ErrNilAssignment
	}
	if err := opts.normalize(); err != nil {
		return nil, err
	}

	g := x.Graph()
	log := opts.Logger

	support := x.SupportEdges()
	for step := 0; len(support) > 0; step++ {
		if step >= g.NumEdges() {
			return nil, ErrStalled
		}
		before := len(support)

		leaf, id, ok := findLeaf(x)
		switch {
		case ok:
			far, err := g.OtherEndpoint(id, leaf)
			if err != nil {
				return nil, err
			}
			alpha := x.Value(id, far) * g.Weight(id)
			if alpha <= opts.LeafThreshold {
				log.Debug("leaf assignment",
					zap.Int("step", step),
					zap.Int("edge", id),
					zap.Int("leaf", leaf),
					zap.Float64("alpha", alpha))
				if err = x.SetIntegral(id, leaf); err != nil {
					return nil, err
				}
			} else {
				log.Debug("tree assignment",
					zap.Int("step", step),
					zap.Int("edge", id),
					zap.Int("root", leaf),
					zap.Float64("alpha", alpha))
				if err = treeAssign(x, leaf); err != nil {
					return nil, err
				}
			}
		default:
			cycle, err := FindCycle(x)
			if err != nil {
				return nil, fmt.Errorf("Round: %w", err)
			}
			log.Debug("rotate",
				zap.Int("step", step),
				zap.Int("cycle_len", len(cycle)))
			if err = Rotate(x, cycle); err != nil {
				return nil, err
			}
		}

		support = x.SupportEdges()
		if len(support) >= before {
			return nil, ErrStalled
		}
	}

	orientation, err := x.Orientation()
	if err != nil {
		return nil, err
	}
	if !orientation.IsTotal() {
		return nil, core.ErrNotTotal
	}

	return orientation, nil
}

// findLeaf returns the smallest-id vertex with fractional degree exactly 1
// together with its unique fractional edge.
func findLeaf(x *fractional.Assignment) (v, edge int, ok bool) {
	g := x.Graph()
	for v = 0; v < g.NumVertices(); v++ {
		if x.FractionalDegree(v) == 1 {
			return v, x.IncidentFractional(v)[0], true
		}
	}

	return 0, 0, false
}

// treeAssign orients the big-support component containing root away from
// root: BFS over big fractional edges, every discovered edge set integral
// toward the child. Edges closing back onto a visited vertex are left
// fractional — the pseudoforest structure means at most one such edge per
// component, and later steps handle it.
func treeAssign(x *fractional.Assignment, root int) error {
	g := x.Graph()
	visited := make([]bool, g.NumVertices())
	visited[root] = true

	queue := []int{root}
	for i := 0; i < len(queue); i++ {
		parent := queue[i]
		for _, id := range x.IncidentFractional(parent) {
			if !g.IsBig(id) {
				continue
			}
			child, err := g.OtherEndpoint(id, parent)
			if err != nil {
				return err
			}
			if visited[child] {
				continue
			}
			if err = x.SetIntegral(id, child); err != nil {
				return err
			}
			visited[child] = true
			queue = append(queue, child)
		}
	}

	return nil
}
