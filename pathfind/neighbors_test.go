package pathfind_test

import (
	"testing"

	"github.com/katalvlaran/mazekit/grid"
	"github.com/katalvlaran/mazekit/pathfind"
)

// buildGrid constructs a 10×10 grid with wall borders, open interior,
// and the given extra interior walls.
func buildGrid(t *testing.T, extraWalls ...grid.Cell) *grid.Grid {
	t.Helper()
	const n = 10
	walls := make([][]bool, n)
	for r := 0; r < n; r++ {
		walls[r] = make([]bool, n)
		for c := 0; c < n; c++ {
			walls[r][c] = r == 0 || r == n-1 || c == 0 || c == n-1
		}
	}
	for _, w := range extraWalls {
		walls[w.Row][w.Col] = true
	}
	g, err := grid.New(walls, grid.Cell{Row: 1, Col: 1}, grid.Cell{Row: 8, Col: 8})
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}

	return g
}

// cellsOf projects the neighbor cells out of a Step slice.
func cellsOf(steps []pathfind.Step) []grid.Cell {
	cells := make([]grid.Cell, len(steps))
	for i, s := range steps {
		cells[i] = s.Cell
	}

	return cells
}

// TestNeighbors_OrderAndCosts verifies the fixed emission order
// (N, S, E, W, NE, NW, SE, SW) and the two movement costs.
func TestNeighbors_OrderAndCosts(t *testing.T) {
	g := buildGrid(t)
	c := grid.Cell{Row: 5, Col: 5}

	steps := pathfind.Neighbors(g, c, true)
	want := []grid.Cell{
		{Row: 4, Col: 5}, {Row: 6, Col: 5}, {Row: 5, Col: 6}, {Row: 5, Col: 4},
		{Row: 4, Col: 6}, {Row: 4, Col: 4}, {Row: 6, Col: 6}, {Row: 6, Col: 4},
	}
	got := cellsOf(steps)
	if len(got) != len(want) {
		t.Fatalf("got %d neighbors, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor %d = %v; want %v", i, got[i], want[i])
		}
		wantCost := pathfind.StraightCost
		if i >= 4 {
			wantCost = pathfind.DiagonalCost
		}
		if steps[i].Cost != wantCost {
			t.Errorf("neighbor %d cost = %v; want %v", i, steps[i].Cost, wantCost)
		}
	}
}

// TestNeighbors_OrthogonalOnly verifies diagonal steps are not emitted
// in 4-directional mode.
func TestNeighbors_OrthogonalOnly(t *testing.T) {
	g := buildGrid(t)
	steps := pathfind.Neighbors(g, grid.Cell{Row: 5, Col: 5}, false)
	if len(steps) != 4 {
		t.Fatalf("got %d neighbors, want 4: %v", len(steps), cellsOf(steps))
	}
	for _, s := range steps {
		if s.Cost != pathfind.StraightCost {
			t.Errorf("orthogonal step %v cost = %v; want %v", s.Cell, s.Cost, pathfind.StraightCost)
		}
	}
}

// TestNeighbors_WallsAndBounds verifies wall cells and out-of-grid
// coordinates are never emitted.
func TestNeighbors_WallsAndBounds(t *testing.T) {
	g := buildGrid(t, grid.Cell{Row: 1, Col: 2})

	// (1,1) sits against the border corner; E is walled by the extra wall.
	steps := pathfind.Neighbors(g, grid.Cell{Row: 1, Col: 1}, false)
	got := cellsOf(steps)
	want := []grid.Cell{{Row: 2, Col: 1}} // only S survives
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("Neighbors(1,1) = %v; want %v", got, want)
	}
}

// TestNeighbors_NoCornerCutting verifies a diagonal step is dropped when
// either flanking orthogonal cell is a wall.
func TestNeighbors_NoCornerCutting(t *testing.T) {
	// Walls at N (4,5) and W (5,4) of the probe cell (5,5).
	g := buildGrid(t, grid.Cell{Row: 4, Col: 5}, grid.Cell{Row: 5, Col: 4})

	steps := pathfind.Neighbors(g, grid.Cell{Row: 5, Col: 5}, true)
	got := cellsOf(steps)
	// NE (4,6) and NW (4,4) are flanked by the N wall; NW and SW (6,4)
	// by the W wall. Only SE (6,6) survives of the diagonals.
	want := []grid.Cell{
		{Row: 6, Col: 5}, {Row: 5, Col: 6}, // S, E
		{Row: 6, Col: 6}, // SE
	}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(5,5) = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor %d = %v; want %v", i, got[i], want[i])
		}
	}
}
