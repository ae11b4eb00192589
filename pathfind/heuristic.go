package pathfind

import (
	"math"

	"github.com/katalvlaran/mazekit/grid"
)

// Manhattan returns |Δrow| + |Δcol|: the exact remaining cost under
// 4-directional movement, hence admissible and consistent for it.
func Manhattan(a, b grid.Cell) float64 {
	return math.Abs(float64(a.Row-b.Row)) + math.Abs(float64(a.Col-b.Col))
}

// Octile returns max(Δ) + (√2−1)·min(Δ): the exact remaining cost under
// 8-directional movement with √2 diagonals, hence admissible and
// consistent for it.
func Octile(a, b grid.Cell) float64 {
	dr := math.Abs(float64(a.Row - b.Row))
	dc := math.Abs(float64(a.Col - b.Col))

	return math.Max(dr, dc) + (DiagonalCost-1)*math.Min(dr, dc)
}

// heuristicFor selects the admissible heuristic matching the movement
// mode: Octile with diagonals enabled, Manhattan otherwise.
func heuristicFor(diagonal bool) func(a, b grid.Cell) float64 {
	if diagonal {
		return Octile
	}

	return Manhattan
}
