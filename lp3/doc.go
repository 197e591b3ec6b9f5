// Package lp3 formulates the LP3 feasibility relaxation of graph balancing
// and adapts external simplex engines to it.
//
// The relaxation, over variables x_ev for every (edge e, endpoint v):
//
//	(edge)  x_eu + x_ev = 1                       for every e = {u, v}
//	(load)  q_v + Σ_{e ∋ v} x_ev · p_e ≤ 1        for every vertex v
//	(star)  Σ_{big e ∋ v} x_ev ≤ 1                for every vertex v
//	(bound) 0 ≤ x_ev ≤ 1
//
// Any objective works — LP3 is solved for feasibility only, so the cost
// vector is identically zero. A feasible solution has the structural property
// the rounding driver depends on: the big-edge support graph G_B,x is a
// pseudoforest (every component carries at most one cycle).
//
// The package never references a concrete engine from its model types.
// Engines implement the small Solver interface; two real backends are
// provided and tried in a fixed priority order by SolveLP3:
//
//  1. lpsimplex (github.com/willauld/lpsimplex) — takes the A_ub/A_eq rows
//     and [0,1] bounds directly.
//  2. gonum (gonum.org/v1/gonum/optimize/convex/lp) — the adapter converts
//     LP3 to standard form by adding one slack column per inequality row.
//
// Outcomes are kept strictly apart:
//
//	– ErrInfeasible    the program has no feasible point (recoverable — the
//	                   caller reports "no orientation" or bisects onward).
//	– ErrSolverFailure the engine itself failed (numerical trouble, iteration
//	                   limit); SolveLP3 retries the next backend on this one.
//
// On success the raw vector passes through the boundary policy of the
// algorithm: clamp every value into [0,1], renormalize each edge pair to sum
// to exactly 1 (an even split when the pair sums to ≈ 0), and snap values
// within Eps of the bounds. Edge pairs off by more than StructuralTol before
// renormalization are treated as ErrSolverFailure, not noise.
package lp3
