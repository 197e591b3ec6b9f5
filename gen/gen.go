package gen

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/gbalance/core"
)

// Sentinel errors.
var (
	// ErrBadCount indicates a non-positive vertex or path-length count, or a
	// negative edge count.
	ErrBadCount = errors.New("gen: count must be positive")

	// ErrTooFewVertices indicates a random instance was requested with fewer
	// than two vertices, which makes self-loop-free edges impossible.
	ErrTooFewVertices = errors.New("gen: need at least two vertices")

	// ErrBadEpsilon indicates an ε outside (0, 1/2); the gap constructions
	// need 1−ε and 1/2−ε to stay positive and distinct.
	ErrBadEpsilon = errors.New("gen: epsilon must lie in (0, 1/2)")

	// ErrBadRange indicates an inverted sampling range, a non-positive weight
	// lower bound, or a negative dedicated-load lower bound.
	ErrBadRange = errors.New("gen: invalid sampling range")
)

// randomConfig carries the tunables of Random.
type randomConfig struct {
	seed        int64
	weightLo    float64
	weightHi    float64
	dedicatedLo float64
	dedicatedHi float64
}

// RandomOption tunes the Random generator.
type RandomOption func(*randomConfig)

// WithSeed fixes the PRNG seed, making the instance reproducible.
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) { c.seed = seed }
}

// WithWeightRange sets the uniform sampling range for edge weights.
// Default [0.1, 1.0].
func WithWeightRange(lo, hi float64) RandomOption {
	return func(c *randomConfig) { c.weightLo, c.weightHi = lo, hi }
}

// WithDedicatedRange sets the uniform sampling range for dedicated loads.
// Default [0, 0.5].
func WithDedicatedRange(lo, hi float64) RandomOption {
	return func(c *randomConfig) { c.dedicatedLo, c.dedicatedHi = lo, hi }
}

// Simple returns the fixed instance on 3 vertices and 2 edges:
// 0—1 (weight 0.6), 1—2 (weight 0.4), dedicated loads 0.1, 0.2, 0.1.
func Simple() *core.Graph {
	g, err := core.NewGraph(3,
		[]core.Edge{
			{U: 0, V: 1, Weight: 0.6},
			{U: 1, V: 2, Weight: 0.4},
		},
		[]float64{0.1, 0.2, 0.1})
	if err != nil {
		// The literals are valid; failure here is a programming error.
		panic(err)
	}

	return g
}

// Random returns an instance with n vertices and m edges. Each edge joins two
// distinct uniformly random vertices (parallel edges may occur); weights and
// dedicated loads are sampled from the configured ranges.
func Random(n, m int, opts ...RandomOption) (*core.Graph, error) {
	if n <= 0 || m < 0 {
		return nil, ErrBadCount
	}
	if n < 2 && m > 0 {
		return nil, ErrTooFewVertices
	}

	cfg := randomConfig{
		seed:        1,
		weightLo:    0.1,
		weightHi:    1.0,
		dedicatedLo: 0,
		dedicatedHi: 0.5,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.weightLo <= 0 || cfg.weightHi < cfg.weightLo {
		return nil, ErrBadRange
	}
	if cfg.dedicatedLo < 0 || cfg.dedicatedHi < cfg.dedicatedLo {
		return nil, ErrBadRange
	}

	rng := rand.New(rand.NewSource(cfg.seed))

	edges := make([]core.Edge, m)
	for i := range edges {
		u := rng.Intn(n)
		v := rng.Intn(n)
		for v == u {
			v = rng.Intn(n)
		}
		edges[i] = core.Edge{
			U:      u,
			V:      v,
			Weight: uniform(rng, cfg.weightLo, cfg.weightHi),
		}
	}

	dedicated := make([]float64, n)
	for v := range dedicated {
		dedicated[v] = uniform(rng, cfg.dedicatedLo, cfg.dedicatedHi)
	}

	return core.NewGraph(n, edges, dedicated)
}

// LongPath returns the path 0—1—…—k with every edge of weight 1−ε and
// dedicated load 1 on vertices 0 and k. Its optimum orientation has makespan
// close to 2, while the naive per-edge relaxation claims 1.
func LongPath(k int, eps float64) (*core.Graph, error) {
	if k <= 0 {
		return nil, ErrBadCount
	}
	if eps <= 0 || eps >= 0.5 {
		return nil, ErrBadEpsilon
	}

	edges := make([]core.Edge, k)
	for i := range edges {
		edges[i] = core.Edge{U: i, V: i + 1, Weight: 1 - eps}
	}

	dedicated := make([]float64, k+1)
	dedicated[0] = 1
	dedicated[k] = 1

	return core.NewGraph(k+1, edges, dedicated)
}

// ThreePaths returns three vertex-disjoint paths of k edges each between
// vertices 0 and 1, with weights alternating 1, 1/2−ε, 1, … along every path
// and dedicated load 1/4 on every vertex. Odd k keeps the endpoint edges
// heavy. The instance shows the 7/4 ratio is tight for the relaxation the
// algorithm rounds.
func ThreePaths(k int, eps float64) (*core.Graph, error) {
	if k <= 0 {
		return nil, ErrBadCount
	}
	if eps <= 0 || eps >= 0.5 {
		return nil, ErrBadEpsilon
	}

	const u, v = 0, 1
	numVertices := 2
	var edges []core.Edge

	for path := 0; path < 3; path++ {
		stops := make([]int, 0, k+1)
		stops = append(stops, u)
		for i := 0; i < k-1; i++ {
			stops = append(stops, numVertices)
			numVertices++
		}
		stops = append(stops, v)

		for i := 0; i < k; i++ {
			w := 1.0
			if i%2 == 1 {
				w = 0.5 - eps
			}
			edges = append(edges, core.Edge{U: stops[i], V: stops[i+1], Weight: w})
		}
	}

	dedicated := make([]float64, numVertices)
	for i := range dedicated {
		dedicated[i] = 0.25
	}

	return core.NewGraph(numVertices, edges, dedicated)
}

// uniform samples from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
