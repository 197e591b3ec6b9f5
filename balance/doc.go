// Package balance composes the LP3 relaxation and the rounding driver into
// the public graph-balancing algorithms.
//
// Three entry points:
//
//   - LPBalance solves LP3 at the canonical target 1 and rounds the result.
//     The returned orientation has makespan at most 7/4 whenever the LP is
//     feasible; infeasibility surfaces as lp3.ErrInfeasible.
//   - Decision answers "is there an orientation with makespan ≤ 1.75·T?" by
//     scaling the instance by 1/T and running LPBalance. On success the
//     orientation (translated back to the unscaled graph) satisfies
//     Makespan ≤ 1.75·T; on LP infeasibility it returns ErrNoOrientation.
//   - Optimize binary-searches the target between max(max p_e, max q_v) —
//     a valid lower bound, every edge must land somewhere — and
//     max_v (q_v + Σ incident p_e), a target at which LP3 is always
//     feasible. The search keeps the best successful orientation and stops
//     when the bracket is relatively tighter than SearchTol, so the result
//     is within 1.75·(1+SearchTol) of the optimum.
//
// Decision calls inside Optimize are independent: each one re-solves the LP
// from scratch, and the best orientation seen so far is retained.
//
// Errors: Decision and Optimize convert lp3.ErrInfeasible to ErrNoOrientation
// (a result, not an exception), while LPBalance returns it as-is; engine failures (lp3.ErrSolverFailure) and
// rounding invariant violations propagate unchanged — the former may be
// retried with other backends, the latter are bugs.
package balance
