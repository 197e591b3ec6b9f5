// Package fractional implements the fractional edge assignment produced by
// the LP3 relaxation and consumed by the rounding driver.
//
// Overview:
//
//   - For every edge e = {u, v} the assignment stores the pair (x_eu, x_ev)
//     with x_eu + x_ev = 1 and both values in [0, 1]. x_ev reads as "fraction
//     of e assigned to v".
//   - Only one float per edge is actually kept: the fraction assigned to the
//     numerically smaller endpoint. The companion value is derived as its
//     complement, so the edge constraint holds by construction and cannot
//     drift under arithmetic — rotations stay exactly conservative.
//   - The support E_x is the set of strictly split edges (both values off
//     {0, 1} by more than Eps). The support graph G_x and its big-edge
//     restriction G_B,x drive the rounding state machine.
//
// An Assignment is owned by a single rounding run; it is not safe for
// concurrent mutation. The Graph underneath is immutable and shared.
//
// Errors (sentinel):
//
//	– ErrNilGraph     if a nil *core.Graph is supplied.
//	– ErrBadEps       if a non-positive or non-finite Eps is configured.
//	– ErrNotIntegral  if Orientation is requested while some edge is still
//	                  fractional.
//
// Complexity:
//
//	– Value / Set:          O(1)
//	– SupportEdges:         O(E)
//	– IncidentFractional:   O(deg v)
//	– FractionalLoad:       O(deg v)
package fractional
