// Package gen builds graph-balancing instances for tests, benchmarks, and
// demos.
//
// Four families:
//
//   - Simple — a fixed 3-vertex, 2-edge instance; the smallest input on which
//     every stage of the pipeline does real work.
//   - Random — n vertices, m uniformly weighted edges between distinct random
//     endpoints. Deterministic under WithSeed.
//   - LongPath — a path of k edges of weight 1−ε with dedicated load 1 on both
//     endpoints. The instance whose LP1 relaxation has integrality gap 2.
//   - ThreePaths — three vertex-disjoint u–v paths with alternating weights
//     1 and 1/2−ε and dedicated load 1/4 everywhere. The instance that pins
//     the LP3 integrality gap at 7/4.
//
// All generators return validated *core.Graph values; structurally impossible
// parameter combinations (negative counts, too few vertices to avoid
// self-loops) return errors rather than panicking.
package gen
