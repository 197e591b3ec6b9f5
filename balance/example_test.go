package balance_test

import (
	"fmt"

	"github.com/katalvlaran/gbalance/balance"
	"github.com/katalvlaran/gbalance/gen"
)

// ExampleOptimize searches for the smallest provable target on a small fixed
// instance and reports the guarantee that comes with the result.
func ExampleOptimize() {
	g := gen.Simple()

	res, err := balance.Optimize(g, balance.DefaultConfig())
	if err != nil {
		fmt.Println("optimize failed:", err)

		return
	}

	fmt.Println("total:", res.Orientation.IsTotal())
	fmt.Println("within guarantee:", res.Makespan <= balance.ApproxRatio*res.Target+1e-9)
	// Output:
	// total: true
	// within guarantee: true
}

// ExampleDecision asks whether the instance admits an orientation with
// makespan at most 1.75 times the given target.
func ExampleDecision() {
	g := gen.Simple()

	o, err := balance.Decision(g, 1.0, balance.DefaultConfig())
	if err != nil {
		fmt.Println("no orientation at this target")

		return
	}

	fmt.Println("oriented edges:", g.NumEdges())
	fmt.Println("makespan bounded:", o.Makespan() <= 1.75+1e-9)
	// Output:
	// oriented edges: 2
	// makespan bounded: true
}
