// File: pathfind/example_test.go
package pathfind_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/mazekit/grid"
	"github.com/katalvlaran/mazekit/pathfind"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve demonstrates racing two variants over one maze.
// Scenario:
//
//   - A 12×12 maze whose interior is split by a wall column at col 6,
//     passable only at row 10; every start→end route must detour there.
//   - BFS and Dijkstra both find the 19-cell optimum (18 unit steps);
//     DFS finds some valid route, possibly longer.
func ExampleSolve() {
	text := "SIZE:12\n" +
		"111111111111\n" +
		"100000100001\n" +
		"100000100001\n" +
		"100000100001\n" +
		"100000100001\n" +
		"100000100001\n" +
		"100000100001\n" +
		"100000100001\n" +
		"100000100001\n" +
		"100000100001\n" +
		"100000000001\n" +
		"111111111111\n"
	g, err := grid.Decode([]byte(text))
	if err != nil {
		log.Fatal(err)
	}

	for _, algo := range []pathfind.Algorithm{pathfind.BFS, pathfind.Dijkstra} {
		res, err := pathfind.Solve(g, algo)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: solved=%t cells=%d cost=%.0f\n",
			algo, res.Solved(), res.Stats.PathLength, res.Stats.PathCost)
	}

	// Output:
	// BFS: solved=true cells=19 cost=18
	// Dijkstra: solved=true cells=19 cost=18
}

////////////////////////////////////////////////////////////////////////////////
// Example: Solve with diagonal movement
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve_diagonal demonstrates the √2-weighted diagonal movement
// model on an open maze: A* walks the pure diagonal and pays 4·√2.
func ExampleSolve_diagonal() {
	opts := grid.DefaultOptions()
	opts.Size = 10
	opts.WallProbability = 0 // open interior

	g, err := grid.Generate(opts)
	if err != nil {
		log.Fatal(err)
	}

	res, err := pathfind.Solve(g, pathfind.AStar,
		pathfind.WithEnd(grid.Cell{Row: 5, Col: 5}),
		pathfind.WithDiagonal(),
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("cells=%d cost=%.3f\n", res.Stats.PathLength, res.Stats.PathCost)

	// Output:
	// cells=5 cost=5.657
}
