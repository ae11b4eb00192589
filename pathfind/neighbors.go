package pathfind

import (
	"github.com/katalvlaran/mazekit/grid"
)

// Neighbor emission order is fixed so that every solver expands cells
// identically and tie-breaking stays reproducible:
// N, S, E, W, then NE, NW, SE, SW.
var (
	orthogonalOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}
	diagonalOffsets   = [4][2]int{{-1, 1}, {-1, -1}, {1, 1}, {1, -1}}
)

// Neighbors returns the movement edges out of c on g, in the fixed
// emission order. Orthogonal steps cost StraightCost; diagonal steps
// (emitted only when diagonal is true) cost DiagonalCost.
//
// A diagonal step is excluded when either of the two orthogonal cells
// flanking it is a wall, so no path ever cuts the corner between two
// adjacent walls.
//
// Defined only for in-bounds c. Complexity: O(1).
func Neighbors(g *grid.Grid, c grid.Cell, diagonal bool) []Step {
	steps := make([]Step, 0, 8)
	for _, d := range orthogonalOffsets {
		r, cc := c.Row+d[0], c.Col+d[1]
		if g.InBounds(r, cc) && !g.IsWall(r, cc) {
			steps = append(steps, Step{Cell: grid.Cell{Row: r, Col: cc}, Cost: StraightCost})
		}
	}
	if !diagonal {
		return steps
	}
	for _, d := range diagonalOffsets {
		r, cc := c.Row+d[0], c.Col+d[1]
		if !g.InBounds(r, cc) || g.IsWall(r, cc) {
			continue
		}
		// Corner rule: both flanking orthogonal cells must be open.
		if g.IsWall(c.Row+d[0], c.Col) || g.IsWall(c.Row, c.Col+d[1]) {
			continue
		}
		steps = append(steps, Step{Cell: grid.Cell{Row: r, Col: cc}, Cost: DiagonalCost})
	}

	return steps
}

// stepCost returns the movement cost between two adjacent cells.
// Assumes a and b form a valid movement edge.
func stepCost(a, b grid.Cell) float64 {
	if a.Row != b.Row && a.Col != b.Col {
		return DiagonalCost
	}

	return StraightCost
}
