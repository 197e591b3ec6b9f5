package lp3

import (
	"fmt"

	"github.com/willauld/lpsimplex"
)

// lpSimplexSolver adapts github.com/willauld/lpsimplex, a scipy-style
// simplex that accepts the LP3 shape natively: inequality rows, equality
// rows, and per-variable bounds.
type lpSimplexSolver struct {
	maxIter int
	tol     float64
}

// NewLPSimplexSolver returns the first-priority backend.
func NewLPSimplexSolver() Solver {
	return &lpSimplexSolver{maxIter: defaultMaxIter, tol: defaultSolverTol}
}

// Name implements Solver.
func (s *lpSimplexSolver) Name() string { return "lpsimplex" }

// Solve implements Solver. Status code 2 is the engine's infeasibility
// verdict; every other unsuccessful outcome (iteration limit, unbounded,
// internal error) surfaces as ErrSolverFailure.
func (s *lpSimplexSolver) Solve(p *Problem) ([]float64, error) {
	if p == nil {
		return nil, ErrNilProblem
	}

	aub, bub := denseRows(p.Ub, p.NumVars)
	aeq, beq := denseRows(p.Eq, p.NumVars)

	bounds := make([]lpsimplex.Bound, p.NumVars)
	for i := range bounds {
		bounds[i] = lpsimplex.Bound{Lb: 0, Ub: 1}
	}

	callback := lpsimplex.Callbackfunc(nil)
	res := lpsimplex.LPSimplex(
		p.Cost,
		aub, bub,
		aeq, beq,
		bounds,
		callback,
		false,     // disp
		s.maxIter, // maxiter
		s.tol,     // tol
		false,     // bland
	)

	switch {
	case res.Success:
		return res.X, nil
	case res.Status == 2:
		return nil, ErrInfeasible
	}

	return nil, fmt.Errorf("lp3: lpsimplex status %d: %s: %w",
		res.Status, res.Message, ErrSolverFailure)
}
