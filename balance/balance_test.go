package balance_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gbalance/balance"
	"github.com/katalvlaran/gbalance/core"
	"github.com/katalvlaran/gbalance/gen"
	"github.com/katalvlaran/gbalance/lp3"
)

// BalanceSuite exercises the three public entry points end to end, real LP
// backends included.
type BalanceSuite struct {
	suite.Suite
}

// TestLPBalanceSimple runs the canonical pipeline on the fixed instance.
func (s *BalanceSuite) TestLPBalanceSimple() {
	g := gen.Simple()

	o, err := balance.LPBalance(g, balance.DefaultConfig())
	require.NoError(s.T(), err)
	require.True(s.T(), o.IsTotal())
	require.LessOrEqual(s.T(), o.Makespan(), balance.ApproxRatio+1e-6)
}

// TestLPBalanceInfeasible verifies LP infeasibility surfaces unconverted.
func (s *BalanceSuite) TestLPBalanceInfeasible() {
	g, err := core.NewGraph(2,
		[]core.Edge{{U: 0, V: 1, Weight: 0.5}},
		[]float64{1.2, 0})
	require.NoError(s.T(), err)

	_, err = balance.LPBalance(g, balance.DefaultConfig())
	require.ErrorIs(s.T(), err, lp3.ErrInfeasible)
}

// TestDecisionFeasible verifies the orientation lands on the original graph
// and respects the scaled guarantee.
func (s *BalanceSuite) TestDecisionFeasible() {
	g := gen.Simple()
	const target = 1.0

	o, err := balance.Decision(g, target, balance.DefaultConfig())
	require.NoError(s.T(), err)
	require.True(s.T(), o.IsTotal())
	require.Same(s.T(), g, o.Graph(), "orientation lives on the unscaled graph")
	require.LessOrEqual(s.T(), o.Makespan(), balance.ApproxRatio*target+1e-6)
}

// TestDecisionScaledTarget verifies a target other than 1 round-trips
// through the scaling.
func (s *BalanceSuite) TestDecisionScaledTarget() {
	g := gen.Simple()
	const target = 2.0

	o, err := balance.Decision(g, target, balance.DefaultConfig())
	require.NoError(s.T(), err)
	require.LessOrEqual(s.T(), o.Makespan(), balance.ApproxRatio*target+1e-6)
}

// TestDecisionInfeasible verifies the no-orientation verdict.
func (s *BalanceSuite) TestDecisionInfeasible() {
	g, err := core.NewGraph(2,
		[]core.Edge{{U: 0, V: 1, Weight: 0.5}},
		[]float64{1.2, 0})
	require.NoError(s.T(), err)

	_, err = balance.Decision(g, 1, balance.DefaultConfig())
	require.ErrorIs(s.T(), err, balance.ErrNoOrientation)
}

// TestDecisionBadTarget covers target validation.
func (s *BalanceSuite) TestDecisionBadTarget() {
	g := gen.Simple()
	for _, target := range []float64{0, -1} {
		_, err := balance.Decision(g, target, balance.DefaultConfig())
		require.ErrorIs(s.T(), err, balance.ErrBadTarget)
	}
}

// TestOptimizeSimple verifies the binary search brackets the known optimum.
func (s *BalanceSuite) TestOptimizeSimple() {
	g := gen.Simple()

	res, err := balance.Optimize(g, balance.DefaultConfig())
	require.NoError(s.T(), err)
	require.True(s.T(), res.Orientation.IsTotal())
	require.InDelta(s.T(), res.Orientation.Makespan(), res.Makespan, 1e-12)

	// The optimum is 0.7 (both edges oriented away from vertex 1).
	require.GreaterOrEqual(s.T(), res.Makespan, 0.7-1e-9)
	require.LessOrEqual(s.T(), res.Makespan, balance.ApproxRatio*0.7+1e-6)

	// The proved target sits inside the initial bracket.
	require.GreaterOrEqual(s.T(), res.Target, 0.6)
	require.LessOrEqual(s.T(), res.Target, 1.2+1e-9)
}

// TestOptimizeInfeasibleLoads verifies heavy dedicated loads are handled by
// scaling rather than reported as failures.
func (s *BalanceSuite) TestOptimizeInfeasibleLoads() {
	g, err := core.NewGraph(2,
		[]core.Edge{{U: 0, V: 1, Weight: 0.5}},
		[]float64{1.2, 0})
	require.NoError(s.T(), err)

	res, err := balance.Optimize(g, balance.DefaultConfig())
	require.NoError(s.T(), err)
	// Orienting the edge to vertex 1 yields the optimum 1.2.
	require.GreaterOrEqual(s.T(), res.Makespan, 1.2-1e-9)
	require.LessOrEqual(s.T(), res.Makespan, balance.ApproxRatio*1.2+1e-6)
}

// TestOptimizeNoEdges covers the trivial empty-orientation case.
func (s *BalanceSuite) TestOptimizeNoEdges() {
	g, err := core.NewGraph(2, nil, []float64{0.3, 0.9})
	require.NoError(s.T(), err)

	res, err := balance.Optimize(g, balance.DefaultConfig())
	require.NoError(s.T(), err)
	require.True(s.T(), res.Orientation.IsTotal())
	require.Equal(s.T(), 0.9, res.Makespan)
	require.Equal(s.T(), 0.9, res.Target)
}

// TestOptimizeGapInstance runs the search on the three-path construction.
func (s *BalanceSuite) TestOptimizeGapInstance() {
	g, err := gen.ThreePaths(3, 0.01)
	require.NoError(s.T(), err)

	res, err := balance.Optimize(g, balance.DefaultConfig())
	require.NoError(s.T(), err)
	require.True(s.T(), res.Orientation.IsTotal())
	require.LessOrEqual(s.T(), res.Makespan, balance.ApproxRatio*res.Target+1e-6)
}

// TestNilGraph covers the nil guards of all three entry points.
func (s *BalanceSuite) TestNilGraph() {
	cfg := balance.DefaultConfig()

	_, err := balance.LPBalance(nil, cfg)
	require.ErrorIs(s.T(), err, balance.ErrNilGraph)

	_, err = balance.Decision(nil, 1, cfg)
	require.ErrorIs(s.T(), err, balance.ErrNilGraph)

	_, err = balance.Optimize(nil, cfg)
	require.ErrorIs(s.T(), err, balance.ErrNilGraph)
}

// TestBadTolerance covers SearchTol validation.
func (s *BalanceSuite) TestBadTolerance() {
	cfg := balance.DefaultConfig()
	cfg.SearchTol = -1

	_, err := balance.Optimize(gen.Simple(), cfg)
	require.ErrorIs(s.T(), err, balance.ErrBadTolerance)
}

func TestBalanceSuite(t *testing.T) {
	suite.Run(t, new(BalanceSuite))
}
