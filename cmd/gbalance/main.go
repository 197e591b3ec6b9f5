// Command gbalance reads a graph-balancing instance from a JSON file and runs
// one of the three entry points: optimize (binary search for the smallest
// provable target), decision (a single yes/no at a fixed target), or lp (the
// canonical solve-and-round at target 1).
//
// Instance format:
//
//	{
//	  "vertices": 3,
//	  "edges": [[0, 1], [1, 2]],
//	  "weights": [0.6, 0.4],
//	  "dedicated": [0.1, 0.2, 0.1]
//	}
//
// The dedicated array is optional and defaults to all zeros. Configuration
// comes from gbalance.yaml and GBALANCE_* environment variables; see
// config.go for the keys.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gbalance/balance"
	"github.com/katalvlaran/gbalance/core"
	"github.com/katalvlaran/gbalance/lp3"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gbalance:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is unactionable

	g, err := readInstance(cfg.Input)
	if err != nil {
		return err
	}

	bcfg := balance.DefaultConfig()
	bcfg.SearchTol = cfg.Tolerance
	bcfg.Logger = logger

	switch cfg.Mode {
	case ModeOptimize:
		return runOptimize(g, bcfg)
	case ModeDecision:
		return runDecision(g, cfg.Target, bcfg)
	case ModeLP:
		return runLP(g, bcfg)
	}

	return fmt.Errorf("unknown mode %q", cfg.Mode)
}

func runOptimize(g *core.Graph, cfg balance.Config) error {
	res, err := balance.Optimize(g, cfg)
	if err != nil {
		return err
	}

	return writeResult(g, res.Orientation, map[string]any{
		"makespan": res.Makespan,
		"target":   res.Target,
	})
}

func runDecision(g *core.Graph, target float64, cfg balance.Config) error {
	o, err := balance.Decision(g, target, cfg)
	if errors.Is(err, balance.ErrNoOrientation) {
		fmt.Printf("no orientation with makespan <= %g exists\n", target)
		os.Exit(1)
	}
	if err != nil {
		return err
	}

	return writeResult(g, o, map[string]any{
		"makespan": o.Makespan(),
		"target":   target,
		"bound":    balance.ApproxRatio * target,
	})
}

func runLP(g *core.Graph, cfg balance.Config) error {
	o, err := balance.LPBalance(g, cfg)
	if errors.Is(err, lp3.ErrInfeasible) {
		fmt.Println("relaxation infeasible at target 1")
		os.Exit(1)
	}
	if err != nil {
		return err
	}

	return writeResult(g, o, map[string]any{"makespan": o.Makespan()})
}

// instance is the JSON wire form of a graph-balancing input.
type instance struct {
	Vertices  int       `json:"vertices"`
	Edges     [][2]int  `json:"edges"`
	Weights   []float64 `json:"weights"`
	Dedicated []float64 `json:"dedicated"`
}

func readInstance(path string) (*core.Graph, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close() //nolint:errcheck // read-only handle

		r = f
	}

	var in instance
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("parse instance: %w", err)
	}
	if len(in.Weights) != len(in.Edges) {
		return nil, fmt.Errorf("instance has %d edges but %d weights",
			len(in.Edges), len(in.Weights))
	}

	edges := make([]core.Edge, len(in.Edges))
	for i, e := range in.Edges {
		edges[i] = core.Edge{U: e[0], V: e[1], Weight: in.Weights[i]}
	}

	dedicated := in.Dedicated
	if dedicated == nil {
		dedicated = make([]float64, in.Vertices)
	}

	return core.NewGraph(in.Vertices, edges, dedicated)
}

// writeResult prints the orientation as JSON: one target vertex per edge plus
// the caller's summary fields.
func writeResult(g *core.Graph, o *core.Orientation, summary map[string]any) error {
	targets := make([]int, g.NumEdges())
	for id := range targets {
		targets[id] = o.Target(id)
	}
	summary["orientation"] = targets

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(summary)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
