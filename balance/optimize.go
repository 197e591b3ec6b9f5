package balance

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/gbalance/core"
)

// Optimize binary-searches the smallest target at which Decision succeeds and
// returns the best orientation found along the way.
//
// The initial bracket is [lowerBoundTarget, upperBoundTarget]; the first
// Decision runs at the upper end, where LP3 is feasible for every instance,
// so the search always starts with an orientation in hand. The loop then
// halves the bracket while its relative width exceeds SearchTol:
//
//	(O1) Decision(mid) succeeds  — keep the orientation, hi := mid.
//	(O2) Decision(mid) infeasible — lo := mid.
//	(O3) any other error          — abort; the machinery is broken, not the
//	     instance.
//
// The returned makespan is at most 1.75·(1+SearchTol)·OPT.
//
// Complexity: O(log(1/SearchTol)) Decision calls, each an independent LP
// solve plus rounding.
func Optimize(g *core.Graph, cfg Config) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg.normalize()
	if cfg.SearchTol <= 0 || math.IsNaN(cfg.SearchTol) {
		return nil, ErrBadTolerance
	}

	if g.NumEdges() == 0 {
		return trivialResult(g)
	}

	lo := lowerBoundTarget(g)
	hi := upperBoundTarget(g)

	best, err := Decision(g, hi, cfg)
	if err != nil {
		// Feasible by construction at hi; any error is a machinery failure.
		return nil, err
	}
	bestTarget := hi

	for (hi-lo)/lo > cfg.SearchTol {
		mid := (lo + hi) / 2
		o, err := Decision(g, mid, cfg)
		switch {
		case err == nil:
			best, bestTarget = o, mid
			hi = mid
		case errors.Is(err, ErrNoOrientation):
			lo = mid
		default:
			return nil, err
		}
		cfg.Logger.Debug("bracket",
			zap.Float64("lo", lo),
			zap.Float64("hi", hi))
	}

	return &Result{
		Orientation: best,
		Makespan:    best.Makespan(),
		Target:      bestTarget,
	}, nil
}

// trivialResult handles the edgeless instance: the only orientation is the
// empty one and the makespan is the largest dedicated load.
func trivialResult(g *core.Graph) (*Result, error) {
	o, err := core.NewOrientation(g)
	if err != nil {
		return nil, err
	}
	makespan := o.Makespan()

	return &Result{Orientation: o, Makespan: makespan, Target: makespan}, nil
}
