package lp3

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gbalance/core"
	"github.com/katalvlaran/gbalance/fractional"
)

// SolveLP3 builds the LP3 program for g and runs the configured backends in
// priority order.
//
// Backend policy: the first ErrInfeasible verdict is final (every correct
// engine agrees on feasibility), while ErrSolverFailure falls through to the
// next backend. If every backend fails, the last failure is returned.
//
// On success the raw vector is absorbed through the numerical boundary:
//  1. Edge pairs whose raw sum misses 1 by more than StructuralTol mean the
//     engine returned garbage — surfaced as ErrSolverFailure, not repaired.
//  2. Each value is clamped into [0, 1].
//  3. Each edge pair is rescaled to sum exactly to 1 (an even split when the
//     pair sums to ≈ 0).
//  4. Values within Eps of a bound snap to it, making the support E_x
//     well-defined.
//
// Complexity: O(V + E) outside the engine call.
func SolveLP3(g *core.Graph, opts Options) (*fractional.Assignment, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if opts.Eps == 0 {
		opts.Eps = fractional.DefaultEps
	}
	if len(opts.Solvers) == 0 {
		opts.Solvers = DefaultSolvers()
	}

	problem, err := BuildProblem(g)
	if err != nil {
		return nil, err
	}

	x, err := trySolvers(problem, opts.Solvers)
	if err != nil {
		return nil, err
	}

	return extractAssignment(g, problem, x, opts.Eps)
}

// trySolvers runs backends in order, stopping at the first answer that is
// either a solution or a definite infeasibility verdict.
func trySolvers(p *Problem, solvers []Solver) ([]float64, error) {
	if len(solvers) == 0 {
		return nil, ErrNoSolvers
	}

	var lastErr error
	for _, s := range solvers {
		x, err := s.Solve(p)
		if err == nil {
			if len(x) < p.NumVars {
				lastErr = fmt.Errorf("lp3: %s returned %d of %d variables: %w",
					s.Name(), len(x), p.NumVars, ErrSolverFailure)

				continue
			}

			return x, nil
		}
		if errors.Is(err, ErrInfeasible) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

// extractAssignment applies the clamp-and-renormalize policy and produces
// the fractional assignment.
func extractAssignment(g *core.Graph, p *Problem, x []float64, eps float64) (*fractional.Assignment, error) {
	asg, err := fractional.NewAssignment(g, fractional.WithEps(eps))
	if err != nil {
		return nil, err
	}

	for id := 0; id < g.NumEdges(); id++ {
		e, _ := g.EdgeAt(id)
		low := x[p.Column(id, e.Low())]
		high := x[p.Column(id, e.High())]

		if residue := math.Abs(low + high - 1); residue > StructuralTol {
			return nil, fmt.Errorf("lp3: edge %d constraint off by %g: %w",
				id, residue, ErrSolverFailure)
		}

		low = clamp01(low)
		high = clamp01(high)
		if total := low + high; total > eps {
			low /= total
		} else {
			low = 0.5
		}
		if err = asg.Set(id, e.Low(), low); err != nil {
			return nil, err
		}
	}
	asg.Normalize()

	return asg, nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}

	return v
}
