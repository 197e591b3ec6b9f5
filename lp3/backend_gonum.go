package lp3

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// gonumSolver adapts gonum's standard-form simplex. The engine solves
// minimize cᵀx subject to Ax = b, x ≥ 0, so the adapter appends one slack
// column per inequality row. The explicit upper bound x ≤ 1 needs no extra
// rows: non-negativity plus the edge equality x_eu + x_ev = 1 already caps
// each variable at 1.
type gonumSolver struct {
	tol float64
}

// NewGonumSolver returns the second-priority backend.
func NewGonumSolver() Solver {
	return &gonumSolver{tol: defaultSolverTol}
}

// Name implements Solver.
func (s *gonumSolver) Name() string { return "gonum" }

// Solve implements Solver.
func (s *gonumSolver) Solve(p *Problem) ([]float64, error) {
	if p == nil {
		return nil, ErrNilProblem
	}

	numEq := len(p.Eq)
	numUb := len(p.Ub)
	rows := numEq + numUb
	cols := p.NumVars + numUb // one slack per ≤ row

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)

	for i, row := range p.Eq {
		for j, col := range row.Cols {
			a.Set(i, col, a.At(i, col)+row.Coefs[j])
		}
		b[i] = row.RHS
	}
	for i, row := range p.Ub {
		r := numEq + i
		for j, col := range row.Cols {
			a.Set(r, col, a.At(r, col)+row.Coefs[j])
		}
		a.Set(r, p.NumVars+i, 1) // slack turns ≤ into =
		b[r] = row.RHS
	}

	c := make([]float64, cols) // zero objective — feasibility only

	_, x, err := lp.Simplex(c, a, b, s.tol, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return nil, ErrInfeasible
		}

		return nil, fmt.Errorf("lp3: gonum simplex: %v: %w", err, ErrSolverFailure)
	}

	return x[:p.NumVars], nil
}
