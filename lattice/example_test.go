// SPDX-License-Identifier: MIT

package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/steinerkit/lattice"
	"github.com/katalvlaran/steinerkit/metric"
)

// ExampleBuild builds a two-column strip and prints its closure distances.
func ExampleBuild() {
	g, err := lattice.Build([][]lattice.Row{
		{{lattice.One, lattice.Inf, lattice.Two}},
		{{lattice.Inf, lattice.Inf, lattice.One}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Nodes())

	c, err := metric.Closure(g, lattice.EdgeCost)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := metric.Distance(c, lattice.Position{X: 0, Y: 1}, lattice.Position{X: 1, Y: 1})
	fmt.Println(d)
	// Output:
	// [(0,0) (0,1) (1,0) (1,1)]
	// 4
}
