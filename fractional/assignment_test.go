package fractional_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gbalance/core"
	"github.com/katalvlaran/gbalance/fractional"
)

// AssignmentSuite exercises the fractional layer: values, support
// bookkeeping, and the integral hand-off to an orientation.
type AssignmentSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *AssignmentSuite) SetupTest() {
	g, err := core.NewGraph(3,
		[]core.Edge{
			{U: 0, V: 1, Weight: 0.6},
			{U: 1, V: 2, Weight: 0.4},
		},
		[]float64{0.1, 0.2, 0.1})
	require.NoError(s.T(), err)
	s.g = g
}

func (s *AssignmentSuite) fresh() *fractional.Assignment {
	x, err := fractional.NewAssignment(s.g)
	require.NoError(s.T(), err)

	return x
}

// TestFreshSplit verifies the even initial split and full support.
func (s *AssignmentSuite) TestFreshSplit() {
	x := s.fresh()
	require.Equal(s.T(), 0.5, x.Value(0, 0))
	require.Equal(s.T(), 0.5, x.Value(0, 1))
	require.Equal(s.T(), []int{0, 1}, x.SupportEdges())
	require.Equal(s.T(), 2, x.FractionalDegree(1))
}

// TestConstructionErrors verifies a nil graph and bad tolerances are rejected
// at construction.
func (s *AssignmentSuite) TestConstructionErrors() {
	_, err := fractional.NewAssignment(nil)
	require.ErrorIs(s.T(), err, fractional.ErrNilGraph)

	_, err = fractional.NewAssignment(s.g, fractional.WithEps(0))
	require.ErrorIs(s.T(), err, fractional.ErrBadEps)

	_, err = fractional.NewAssignment(s.g, fractional.WithEps(-1))
	require.ErrorIs(s.T(), err, fractional.ErrBadEps)
}

// TestSetComplement verifies the edge constraint is maintained exactly.
func (s *AssignmentSuite) TestSetComplement() {
	x := s.fresh()
	require.NoError(s.T(), x.Set(0, 1, 0.3))
	// Vertex 1 is the higher endpoint, so its value is read back as 1 − 0.7.
	require.InDelta(s.T(), 0.3, x.Value(0, 1), 1e-12)
	require.Equal(s.T(), 0.7, x.Value(0, 0))
	require.Equal(s.T(), 1.0, x.Value(0, 0)+x.Value(0, 1))
}

// TestSetClamps verifies values outside [0, 1] are clamped, not rejected.
func (s *AssignmentSuite) TestSetClamps() {
	x := s.fresh()
	require.NoError(s.T(), x.Set(0, 0, 1.5))
	require.Equal(s.T(), 1.0, x.Value(0, 0))
	require.NoError(s.T(), x.Set(0, 0, -0.5))
	require.Equal(s.T(), 0.0, x.Value(0, 0))
}

// TestSetErrors covers range and endpoint rejections.
func (s *AssignmentSuite) TestSetErrors() {
	x := s.fresh()
	require.ErrorIs(s.T(), x.Set(9, 0, 0.5), core.ErrEdgeOutOfRange)
	require.ErrorIs(s.T(), x.Set(0, 2, 0.5), core.ErrNotEndpoint)
}

// TestNonEndpointValue verifies Value returns 0 off the edge.
func (s *AssignmentSuite) TestNonEndpointValue() {
	x := s.fresh()
	require.Equal(s.T(), 0.0, x.Value(0, 2))
	require.Equal(s.T(), 0.0, x.Value(9, 0))
}

// TestSupportShrinks verifies integral edges leave E_x.
func (s *AssignmentSuite) TestSupportShrinks() {
	x := s.fresh()
	require.NoError(s.T(), x.SetIntegral(0, 1))
	require.True(s.T(), x.IsIntegral(0))
	require.Equal(s.T(), []int{1}, x.SupportEdges())
	require.Equal(s.T(), []int{1}, x.IncidentFractional(1))
	require.Equal(s.T(), 0, x.FractionalDegree(0))
}

// TestBigSupport verifies the big/small split of the support.
func (s *AssignmentSuite) TestBigSupport() {
	x := s.fresh()
	require.Equal(s.T(), []int{0}, x.BigSupportEdges(), "only the 0.6 edge is big")
}

// TestFractionalLoad verifies the LP load expression at an even split.
func (s *AssignmentSuite) TestFractionalLoad() {
	x := s.fresh()
	// Vertex 1: 0.2 + 0.5·0.6 + 0.5·0.4.
	require.InDelta(s.T(), 0.7, x.FractionalLoad(1), 1e-12)
}

// TestNormalizeSnaps verifies near-bound values snap exactly.
func (s *AssignmentSuite) TestNormalizeSnaps() {
	x, err := fractional.NewAssignment(s.g, fractional.WithEps(1e-6))
	require.NoError(s.T(), err)
	require.NoError(s.T(), x.Set(0, 0, 1e-9))
	require.NoError(s.T(), x.Set(1, 1, 1-1e-9))

	x.Normalize()
	require.Equal(s.T(), 0.0, x.Value(0, 0))
	require.Equal(s.T(), 1.0, x.Value(1, 1))
	require.Empty(s.T(), x.SupportEdges())
}

// TestOrientation verifies the integral hand-off and the split rejection.
func (s *AssignmentSuite) TestOrientation() {
	x := s.fresh()

	_, err := x.Orientation()
	require.ErrorIs(s.T(), err, fractional.ErrNotIntegral)

	require.NoError(s.T(), x.SetIntegral(0, 1))
	require.NoError(s.T(), x.SetIntegral(1, 2))

	o, err := x.Orientation()
	require.NoError(s.T(), err)
	require.True(s.T(), o.IsTotal())
	require.Equal(s.T(), 1, o.Target(0))
	require.Equal(s.T(), 2, o.Target(1))
}

// TestClone verifies independence of copies.
func (s *AssignmentSuite) TestClone() {
	x := s.fresh()
	dup := x.Clone()
	require.NoError(s.T(), dup.SetIntegral(0, 0))
	require.Equal(s.T(), 0.5, x.Value(0, 0))
	require.Equal(s.T(), 1.0, dup.Value(0, 0))
}

func TestAssignmentSuite(t *testing.T) {
	suite.Run(t, new(AssignmentSuite))
}
