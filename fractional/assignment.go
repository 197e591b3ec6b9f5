package fractional

import (
	"errors"
	"math"

	"github.com/katalvlaran/gbalance/core"
)

// DefaultEps is the tolerance under which a fractional value counts as
// exactly 0 or 1.
const DefaultEps = 1e-9

// Sentinel errors for assignment operations.
var (
	// ErrNilGraph indicates a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("fractional: graph is nil")

	// ErrBadEps indicates a non-positive or non-finite tolerance.
	ErrBadEps = errors.New("fractional: eps must be finite and positive")

	// ErrNotIntegral indicates an orientation was requested from an
	// assignment that still has strictly fractional edges.
	ErrNotIntegral = errors.New("fractional: assignment is not integral")
)

// Option configures an Assignment at construction.
type Option func(*Assignment)

// WithEps overrides the zero/one equality tolerance (default DefaultEps).
func WithEps(eps float64) Option {
	return func(a *Assignment) { a.eps = eps }
}

// Assignment holds one fractional value per edge: x[e] is the fraction of e
// assigned to the numerically smaller endpoint; the larger endpoint holds
// 1 − x[e]. New assignments start at an even 1/2–1/2 split.
type Assignment struct {
	g   *core.Graph
	x   []float64
	eps float64
}

// NewAssignment creates a fresh assignment over g with every edge split
// evenly between its endpoints.
func NewAssignment(g *core.Graph, opts ...Option) (*Assignment, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	a := &Assignment{
		g:   g,
		x:   make([]float64, g.NumEdges()),
		eps: DefaultEps,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.eps <= 0 || math.IsNaN(a.eps) || math.IsInf(a.eps, 0) {
		return nil, ErrBadEps
	}
	for i := range a.x {
		a.x[i] = 0.5
	}

	return a, nil
}

// Graph returns the underlying graph.
func (a *Assignment) Graph() *core.Graph { return a.g }

// Eps returns the zero/one equality tolerance in effect.
func (a *Assignment) Eps() float64 { return a.eps }

// Value returns x_ev for edge id and endpoint v. A vertex that is not an
// endpoint of the edge contributes nothing, so Value returns 0 for it.
func (a *Assignment) Value(id, v int) float64 {
	e, ok := a.g.EdgeAt(id)
	if !ok {
		return 0
	}
	switch v {
	case e.Low():
		return a.x[id]
	case e.High():
		return 1 - a.x[id]
	}

	return 0
}

// Set assigns x_ev := val (clamped into [0, 1]) and the companion variable to
// its complement, preserving the edge constraint exactly.
func (a *Assignment) Set(id, v int, val float64) error {
	e, ok := a.g.EdgeAt(id)
	if !ok {
		return core.ErrEdgeOutOfRange
	}
	val = clamp01(val)
	switch v {
	case e.Low():
		a.x[id] = val
	case e.High():
		a.x[id] = 1 - val
	default:
		return core.ErrNotEndpoint
	}

	return nil
}

// SetIntegral orients edge id fully toward v: x_ev := 1, companion := 0.
func (a *Assignment) SetIntegral(id, v int) error { return a.Set(id, v, 1) }

// IsIntegral reports whether edge id is decided, i.e. its value lies within
// Eps of 0 or 1.
func (a *Assignment) IsIntegral(id int) bool {
	if id < 0 || id >= len(a.x) {
		return true
	}

	return a.x[id] <= a.eps || a.x[id] >= 1-a.eps
}

// SupportEdges returns E_x, the ids of strictly split edges, ascending.
// Complexity: O(E).
func (a *Assignment) SupportEdges() []int {
	var support []int
	for id := range a.x {
		if !a.IsIntegral(id) {
			support = append(support, id)
		}
	}

	return support
}

// BigSupportEdges returns E_x ∩ E_B, ascending.
// Complexity: O(E).
func (a *Assignment) BigSupportEdges() []int {
	var support []int
	for id := range a.x {
		if !a.IsIntegral(id) && a.g.IsBig(id) {
			support = append(support, id)
		}
	}

	return support
}

// IncidentFractional returns the edges of E_x touching v, ascending.
// Complexity: O(deg v).
func (a *Assignment) IncidentFractional(v int) []int {
	var ids []int
	for _, id := range a.g.IncidentEdges(v) {
		if !a.IsIntegral(id) {
			ids = append(ids, id)
		}
	}

	return ids
}

// FractionalDegree returns |IncidentFractional(v)|, the degree of v in G_x.
func (a *Assignment) FractionalDegree(v int) int {
	deg := 0
	for _, id := range a.g.IncidentEdges(v) {
		if !a.IsIntegral(id) {
			deg++
		}
	}

	return deg
}

// FractionalLoad returns q_v + Σ_{e ∋ v} x_ev · p_e, the LP load expression
// at v under the current (partly fractional) assignment.
// Complexity: O(deg v).
func (a *Assignment) FractionalLoad(v int) float64 {
	load := a.g.Dedicated(v)
	for _, id := range a.g.IncidentEdges(v) {
		load += a.Value(id, v) * a.g.Weight(id)
	}

	return load
}

// Normalize snaps every value within Eps of 0 or 1 to the exact bound, so
// the support is well-defined after a solver hand-off.
func (a *Assignment) Normalize() {
	for id, v := range a.x {
		switch {
		case v <= a.eps:
			a.x[id] = 0
		case v >= 1-a.eps:
			a.x[id] = 1
		}
	}
}

// Clone returns an independent copy sharing the same immutable graph.
func (a *Assignment) Clone() *Assignment {
	dup := &Assignment{
		g:   a.g,
		x:   make([]float64, len(a.x)),
		eps: a.eps,
	}
	copy(dup.x, a.x)

	return dup
}

// Orientation converts an integral assignment into the orientation it
// induces: each edge goes to the endpoint holding the larger share. Fails
// with ErrNotIntegral if any edge is still strictly split.
// Complexity: O(E).
func (a *Assignment) Orientation() (*core.Orientation, error) {
	o, err := core.NewOrientation(a.g)
	if err != nil {
		return nil, err
	}
	for id := range a.x {
		if !a.IsIntegral(id) {
			return nil, ErrNotIntegral
		}
		e, _ := a.g.EdgeAt(id)
		target := e.High()
		if a.x[id] >= 0.5 {
			target = e.Low()
		}
		if err = o.Set(id, target); err != nil {
			return nil, err
		}
	}

	return o, nil
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
