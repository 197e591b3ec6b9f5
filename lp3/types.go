package lp3

import (
	"errors"

	"github.com/katalvlaran/gbalance/core"
)

// StructuralTol bounds how far a solver may leave an edge pair from summing
// to 1 before the output counts as corrupt rather than noisy.
const StructuralTol = 1e-6

// defaultSolverTol is the pivot tolerance handed to the simplex engines.
const defaultSolverTol = 1e-9

// defaultMaxIter caps simplex iterations for the lpsimplex backend.
const defaultMaxIter = 4000

// Sentinel errors for LP3 solving.
var (
	// ErrNilGraph indicates a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("lp3: graph is nil")

	// ErrNilProblem indicates a nil *Problem was handed to a backend.
	ErrNilProblem = errors.New("lp3: problem is nil")

	// ErrNoSolvers indicates SolveLP3 was called with an empty backend list.
	ErrNoSolvers = errors.New("lp3: no solvers configured")

	// ErrInfeasible indicates the LP3 program has no feasible point.
	// This outcome is recoverable: the instance admits no orientation at the
	// current target.
	ErrInfeasible = errors.New("lp3: infeasible")

	// ErrSolverFailure indicates the engine failed for reasons other than
	// infeasibility. Callers may retry with a different backend.
	ErrSolverFailure = errors.New("lp3: solver failure")
)

// Constraint is one sparse linear row: Σ Coefs[i] · x[Cols[i]] (= or ≤) RHS.
type Constraint struct {
	Cols  []int
	Coefs []float64
	RHS   float64
}

// Problem is the plain-data LP3 program over a graph: a zero cost vector,
// equality rows (edge constraints), inequality rows (load then star), and
// [0, 1] bounds on every variable. Column layout is deterministic:
// column 2e addresses x for the lower endpoint of edge e, column 2e+1 the
// higher endpoint.
type Problem struct {
	// NumVars is the number of columns, always 2·|E|.
	NumVars int

	// Cost is the (all-zero) objective vector; LP3 is a pure feasibility
	// program.
	Cost []float64

	// Eq holds the edge rows x_eu + x_ev = 1.
	Eq []Constraint

	// Ub holds the ≤ rows: one load row per vertex with at least one incident
	// edge, then one star row per vertex with at least one incident big edge.
	Ub []Constraint

	g *core.Graph
}

// Column returns the column index of variable x_ev, or -1 when v is not an
// endpoint of edge id.
func (p *Problem) Column(id, v int) int {
	e, ok := p.g.EdgeAt(id)
	if !ok {
		return -1
	}
	switch v {
	case e.Low():
		return 2 * id
	case e.High():
		return 2*id + 1
	}

	return -1
}

// Graph returns the graph the problem was built from.
func (p *Problem) Graph() *core.Graph { return p.g }

// Solver is the narrow engine interface the core consumes. Solve returns a
// vector of NumVars values satisfying the program within engine tolerance,
// ErrInfeasible, or an error wrapping ErrSolverFailure.
type Solver interface {
	// Name identifies the backend in logs and error contexts.
	Name() string

	// Solve attempts the feasibility program.
	Solve(p *Problem) ([]float64, error)
}

// DefaultSolvers returns the built-in backends in fixed priority order:
// lpsimplex first, gonum second.
func DefaultSolvers() []Solver {
	return []Solver{NewLPSimplexSolver(), NewGonumSolver()}
}

// Options configures SolveLP3.
type Options struct {
	// Eps is the zero/one snapping tolerance applied to the returned
	// assignment (default fractional.DefaultEps).
	Eps float64

	// Solvers are tried in order; a backend is skipped only on
	// ErrSolverFailure. Empty means DefaultSolvers().
	Solvers []Solver
}

// DefaultOptions returns Options with the default tolerance and backends.
func DefaultOptions() Options {
	return Options{Solvers: DefaultSolvers()}
}
