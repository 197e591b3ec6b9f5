// Package rounding converts a feasible fractional LP3 assignment into an
// integral edge orientation while preserving the load invariants of the
// 1.75-approximation.
//
// Overview:
//
//   - Rotate is the cycle-update primitive. Given a directed cycle in the
//     fractional support it shifts δ = min x_tail · p units of fractional
//     load around the cycle, leaving every per-vertex fractional load
//     untouched (each cycle vertex is a head once and a tail once) and
//     driving at least one tail variable to exactly 0.
//   - FindCycle locates such a cycle by walking the support graph G_x,
//     preferring big support edges at every step (smallest edge id breaks
//     ties). The preference biases rotations toward eliminating big-edge
//     fractionality, which the load-bound argument needs.
//   - Round is the driver: while the support is non-empty it applies, in
//     order, leaf assignment (a leaf's edge contributes α = x_eu · p_e at
//     the far endpoint; α ≤ 3/4 orients the edge onto the leaf), tree
//     assignment (α > 3/4: orient the leaf's whole big-support component
//     away from the leaf, BFS in vertex-id order), or a cycle rotation.
//     Every step strictly shrinks the support, so Round halts within |E|
//     macro-steps.
//
// Determinism: all scans run in ascending id order and all ties break toward
// the smallest id, so identical inputs produce bit-identical orientations.
//
// Errors (sentinel) — all of them indicate corrupt LP output or a programming
// error, never a recoverable condition:
//
//	– ErrMalformedCycle if a cycle handed to Rotate is not a directed cycle
//	                    inside the support.
//	– ErrNoCycle        if the cycle walk dead-ends although no leaf exists
//	                    (impossible for a feasible LP3 input — its big
//	                    support is a pseudoforest).
//	– ErrStalled        if a macro-step fails to shrink the support.
//
// Complexity: Round is O(|E|) macro-steps, each O(V + E); Rotate and
// FindCycle are O(cycle length) and O(V + E) respectively.
package rounding
