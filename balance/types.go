package balance

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/gbalance/core"
	"github.com/katalvlaran/gbalance/lp3"
	"github.com/katalvlaran/gbalance/rounding"
)

// ApproxRatio is the guaranteed approximation factor of the algorithm.
// Fixed by the analysis; never configurable.
const ApproxRatio = 1.75

// DefaultSearchTol is the relative width at which the binary search stops.
const DefaultSearchTol = 1e-6

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("balance: graph is nil")

	// ErrNoOrientation indicates the instance admits no orientation at the
	// requested target (LP3 infeasible). A result, not a failure of the
	// machinery.
	ErrNoOrientation = errors.New("balance: no orientation at target")

	// ErrBadTarget indicates a non-positive or non-finite target makespan.
	ErrBadTarget = errors.New("balance: target must be finite and positive")

	// ErrBadTolerance indicates a non-positive binary-search tolerance.
	ErrBadTolerance = errors.New("balance: search tolerance must be positive")
)

// Config carries every tunable of the composed algorithm. Zero values mean
// defaults, so Config{} is usable as-is.
//
//   - Eps:           zero/one equality tolerance (default 1e-9).
//   - LeafThreshold: rounding α cutoff (default 3/4; the guarantee holds
//     only for the default).
//   - SearchTol:     relative stopping width of Optimize (default 1e-6).
//   - Solvers:       LP backends in priority order (default
//     lp3.DefaultSolvers()).
//   - Logger:        Debug tracing for solve and round steps (default off).
type Config struct {
	Eps           float64
	LeafThreshold float64
	SearchTol     float64
	Solvers       []lp3.Solver
	Logger        *zap.Logger
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Eps:           1e-9,
		LeafThreshold: rounding.DefaultLeafThreshold,
		SearchTol:     DefaultSearchTol,
		Solvers:       lp3.DefaultSolvers(),
	}
}

// normalize fills zero fields with defaults.
func (c *Config) normalize() {
	if c.Eps == 0 {
		c.Eps = 1e-9
	}
	if c.LeafThreshold == 0 {
		c.LeafThreshold = rounding.DefaultLeafThreshold
	}
	if c.SearchTol == 0 {
		c.SearchTol = DefaultSearchTol
	}
	if len(c.Solvers) == 0 {
		c.Solvers = lp3.DefaultSolvers()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

// Result is the outcome of Optimize.
type Result struct {
	// Orientation is the best orientation found, on the original
	// (unscaled) graph.
	Orientation *core.Orientation

	// Makespan is Orientation.Makespan().
	Makespan float64

	// Target is the smallest target the search proved achievable
	// (the final upper bracket).
	Target float64
}

// lowerBoundTarget returns max(max p_e, max q_v) — no orientation can beat
// the heaviest single edge landing on its endpoint, nor the largest
// dedicated load.
func lowerBoundTarget(g *core.Graph) float64 {
	lo := 0.0
	for id := 0; id < g.NumEdges(); id++ {
		lo = math.Max(lo, g.Weight(id))
	}
	for v := 0; v < g.NumVertices(); v++ {
		lo = math.Max(lo, g.Dedicated(v))
	}

	return lo
}

// upperBoundTarget returns max_v (q_v + Σ incident p_e): even the worst
// orientation keeps every load under it, so LP3 at this target is feasible.
func upperBoundTarget(g *core.Graph) float64 {
	hi := 0.0
	for v := 0; v < g.NumVertices(); v++ {
		total := g.Dedicated(v)
		for _, id := range g.IncidentEdges(v) {
			total += g.Weight(id)
		}
		hi = math.Max(hi, total)
	}

	return hi
}
