package rounding

import (
	"errors"

	"go.uber.org/zap"
)

// DefaultLeafThreshold is the α cutoff between leaf assignment (α ≤ 3/4)
// and tree assignment (α > 3/4). The 1.75 guarantee is proved for this
// exact value.
const DefaultLeafThreshold = 0.75

// Sentinel errors. Every one of them is fatal: the fractional input violated
// the LP3 structure or the caller broke the contract.
var (
	// ErrNilAssignment indicates a nil fractional assignment.
	ErrNilAssignment = errors.New("rounding: assignment is nil")

	// ErrEmptyCycle indicates Rotate was handed a zero-length cycle.
	ErrEmptyCycle = errors.New("rounding: cycle is empty")

	// ErrMalformedCycle indicates the arcs do not form a directed cycle in
	// the fractional support: a tail/head pair that is not the edge's
	// endpoint set, a chain that does not close, or an edge outside E_x.
	ErrMalformedCycle = errors.New("rounding: malformed cycle")

	// ErrNoCycle indicates the support walk found no cycle. Round treats
	// this as an invariant violation when no leaf exists either.
	ErrNoCycle = errors.New("rounding: no cycle in fractional support")

	// ErrStalled indicates a macro-step failed to strictly shrink the
	// fractional support.
	ErrStalled = errors.New("rounding: support did not shrink")

	// ErrBadThreshold indicates a leaf threshold outside (0, 1).
	ErrBadThreshold = errors.New("rounding: leaf threshold must lie in (0, 1)")
)

// Arc is one directed step of a cycle: edge Edge traversed from Tail to
// Head. Cycles are sequences of arcs, not of vertices — parallel edges are
// legal and must stay distinguishable.
type Arc struct {
	// Edge is the edge id.
	Edge int

	// Tail is the endpoint whose variable x_{e,Tail} the rotation decreases.
	Tail int

	// Head is the endpoint whose variable x_{e,Head} the rotation increases.
	Head int
}

// Options configures the Round driver.
//   - LeafThreshold: the α cutoff for leaf vs tree assignment. The
//     approximation guarantee requires the default 3/4; it is exposed only
//     so tests can probe the state machine.
//   - Logger: step-level Debug tracing. Nil means no logging.
//
// Equality ties at the threshold (α == LeafThreshold) take the leaf branch.
type Options struct {
	LeafThreshold float64
	Logger        *zap.Logger
}

// DefaultOptions returns Options with the proven threshold and no logging.
func DefaultOptions() Options {
	return Options{LeafThreshold: DefaultLeafThreshold}
}

// normalize fills zero values in place.
func (o *Options) normalize() error {
	if o.LeafThreshold == 0 {
		o.LeafThreshold = DefaultLeafThreshold
	}
	if o.LeafThreshold <= 0 || o.LeafThreshold >= 1 {
		return ErrBadThreshold
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return nil
}
