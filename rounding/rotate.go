package rounding

import (
	"fmt"

	"github.com/katalvlaran/gbalance/fractional"
)

// Rotate applies the cycle-update primitive to x along the directed cycle.
//
// Semantics: δ = min_i x_{e_i, tail_i} · p_{e_i}; then for every arc,
// x_{e,tail} decreases by δ/p_e and x_{e,head} increases by the same amount
// (the complement update is implicit in the assignment's single-float
// storage, so the edge constraint is preserved exactly). The arc attaining
// the minimum — smallest cycle position on ties — is snapped to exactly 0 on
// its tail, so at least one edge leaves the support.
//
// Per-vertex fractional load is conserved: every cycle vertex appears once
// as a head (gaining δ) and once as a tail (losing δ), so the Load and Star
// constraint values at every vertex are unchanged.
//
// Validation failures return ErrEmptyCycle or ErrMalformedCycle; both are
// invariant violations, not recoverable states.
//
// Complexity: O(len cycle).
func Rotate(x *fractional.Assignment, cycle []Arc) error {
	if x == nil {
		return ErrNilAssignment
	}
	if err := validateCycle(x, cycle); err != nil {
		return err
	}

	g := x.Graph()

	// δ = min over arcs of x_tail · p.
	delta := 0.0
	argMin := -1
	for i, arc := range cycle {
		d := x.Value(arc.Edge, arc.Tail) * g.Weight(arc.Edge)
		if argMin < 0 || d < delta {
			delta, argMin = d, i
		}
	}

	for i, arc := range cycle {
		if i == argMin {
			// The binding arc lands on exactly 0; snapping avoids a residue
			// that would keep the edge in the support.
			if err := x.SetIntegral(arc.Edge, arc.Head); err != nil {
				return err
			}

			continue
		}
		next := x.Value(arc.Edge, arc.Tail) - delta/g.Weight(arc.Edge)
		if err := x.Set(arc.Edge, arc.Tail, next); err != nil {
			return err
		}
	}

	return nil
}

// validateCycle checks that the arcs form a closed directed cycle whose
// edges all lie in the fractional support.
func validateCycle(x *fractional.Assignment, cycle []Arc) error {
	if len(cycle) == 0 {
		return ErrEmptyCycle
	}

	g := x.Graph()
	for i, arc := range cycle {
		e, ok := g.EdgeAt(arc.Edge)
		if !ok {
			return fmt.Errorf("%w: arc %d: edge %d out of range", ErrMalformedCycle, i, arc.Edge)
		}
		sameAsEdge := (arc.Tail == e.U && arc.Head == e.V) || (arc.Tail == e.V && arc.Head == e.U)
		if !sameAsEdge {
			return fmt.Errorf("%w: arc %d: %d→%d is not edge %d", ErrMalformedCycle, i, arc.Tail, arc.Head, arc.Edge)
		}
		if x.IsIntegral(arc.Edge) {
			return fmt.Errorf("%w: arc %d: edge %d is not fractional", ErrMalformedCycle, i, arc.Edge)
		}
		next := cycle[(i+1)%len(cycle)]
		if arc.Head != next.Tail {
			return fmt.Errorf("%w: arc %d head %d does not chain to tail %d", ErrMalformedCycle, i, arc.Head, next.Tail)
		}
	}

	return nil
}
