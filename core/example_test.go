package core_test

import (
	"fmt"

	"github.com/katalvlaran/dptrace/core"
)

// ExampleNewGraph builds a small labelled graph and inspects it.
func ExampleNewGraph() {
	g := core.NewGraph(3, core.WithLabels("S", "A", "B"))
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 2)

	fmt.Println(g.Validate())
	fmt.Println(g.Label(1), g.Outgoing()[0])
	fmt.Println(core.FormatDist(core.AddInf(core.Inf, -5)))
	// Output:
	// <nil>
	// A [0 1]
	// ∞
}
