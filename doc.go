// Package gbalance approximates the Graph Balancing problem: orient every
// edge of a weighted multigraph toward one of its endpoints so the maximum
// vertex load (dedicated load plus incoming edge weights) is as small as
// possible.
//
// 🎯 What is gbalance?
//
//	A library implementing the 1.75-approximation for Graph Balancing:
//		• Core primitives: weighted multigraphs, orientations, loads, makespan
//		• Fractional layer: LP3 edge assignments with support bookkeeping
//		• LP3 solving: pluggable simplex backends (lpsimplex, gonum)
//		• Rounding: the leaf / tree / rotate state machine
//		• Drivers: LPBalance, Decision, and binary-search Optimize
//		• Generators: fixed, random and integrality-gap instances
//
// ✨ Why choose gbalance?
//
//   - Proven guarantee – makespan at most 1.75 · OPT on every feasible input
//   - Deterministic – identical inputs produce identical orientations
//   - Pluggable – bring your own LP backend through a two-method interface
//   - Observable – step-level zap tracing through the whole pipeline
//
// Under the hood, everything is organized under six subpackages:
//
//	core/       — graphs, edges, orientations, loads & makespan
//	fractional/ — fractional edge assignments & the support graph E_x
//	lp3/        — the LP3 relaxation, problem builder & simplex backends
//	rounding/   — Rotate, cycle finding & the Round state machine
//	balance/    — LPBalance, Decision & Optimize entry points
//	gen/        — instance generators for tests and benchmarks
//
// Quick ASCII example:
//
//	    0───1───2        edge 0—1 weight 0.6, edge 1—2 weight 0.4
//
//	orienting both edges away from vertex 1 gives makespan 0.6; orienting
//	both toward it gives 1.0.
//
// Dive into the per-package docs for the exact invariants each layer
// maintains, and cmd/gbalance for the command-line front end.
//
//	go get github.com/katalvlaran/gbalance
package gbalance
