package balance

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/gbalance/core"
	"github.com/katalvlaran/gbalance/lp3"
	"github.com/katalvlaran/gbalance/rounding"
)

// LPBalance runs the core pipeline at the canonical target 1: solve LP3 on g,
// then round the fractional assignment to an orientation.
//
// On a feasible instance the returned orientation is total and its makespan is
// at most 7/4. Infeasibility surfaces as lp3.ErrInfeasible; callers that treat
// it as a verdict rather than a failure should use Decision instead.
//
// Complexity: one LP solve plus O(|E|) rounding macro-steps.
func LPBalance(g *core.Graph, cfg Config) (*core.Orientation, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg.normalize()

	x, err := lp3.SolveLP3(g, lp3.Options{Eps: cfg.Eps, Solvers: cfg.Solvers})
	if err != nil {
		return nil, err
	}

	return rounding.Round(x, rounding.Options{
		LeafThreshold: cfg.LeafThreshold,
		Logger:        cfg.Logger,
	})
}

// Decision answers the scaled question: does g admit an orientation with
// makespan at most 1.75·target?
//
// The instance is scaled by 1/target so the canonical pipeline applies, then
// the resulting orientation is translated back edge-by-edge onto the original
// graph. LP3 infeasibility at the scaled target means no orientation with
// makespan ≤ target exists at all, reported as ErrNoOrientation. Engine
// failures and rounding violations propagate unchanged.
func Decision(g *core.Graph, target float64, cfg Config) (*core.Orientation, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if target <= 0 || math.IsInf(target, 0) || math.IsNaN(target) {
		return nil, ErrBadTarget
	}
	cfg.normalize()

	scaled := g.Scale(1 / target)

	cfg.Logger.Debug("decision",
		zap.Float64("target", target),
		zap.Int("vertices", g.NumVertices()),
		zap.Int("edges", g.NumEdges()))

	oriented, err := LPBalance(scaled, cfg)
	if err != nil {
		if errors.Is(err, lp3.ErrInfeasible) {
			return nil, ErrNoOrientation
		}

		return nil, err
	}

	// Same edge ids, same endpoints; only the weights were scaled.
	back, err := core.NewOrientation(g)
	if err != nil {
		return nil, err
	}
	for id := 0; id < g.NumEdges(); id++ {
		if err = back.Set(id, oriented.Target(id)); err != nil {
			return nil, err
		}
	}

	return back, nil
}
