package grid

import (
	"fmt"
)

// New constructs a Grid from a wall layout and two endpoints.
// It deep-copies the input to ensure immutability and validates every
// structural invariant:
//
//   - layout is square with MinSize ≤ N ≤ MaxSize (ErrBadSize),
//   - every border cell is a wall (ErrInvalidMaze),
//   - start and end are in-bounds, interior, open and distinct cells
//     (ErrInvalidMaze).
//
// Invalid layouts are rejected, never repaired.
// Complexity: O(N²) time and memory.
func New(walls [][]bool, start, end Cell) (*Grid, error) {
	n := len(walls)
	if n < MinSize || n > MaxSize {
		return nil, fmt.Errorf("%w: got %d rows", ErrBadSize, n)
	}
	for r, row := range walls {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidMaze, r, len(row), n)
		}
	}
	// Border cells must all be walls.
	for i := 0; i < n; i++ {
		if !walls[0][i] || !walls[n-1][i] || !walls[i][0] || !walls[i][n-1] {
			return nil, fmt.Errorf("%w: border cell is open", ErrInvalidMaze)
		}
	}
	// Endpoints must be interior and open.
	for _, c := range []Cell{start, end} {
		if c.Row <= 0 || c.Row >= n-1 || c.Col <= 0 || c.Col >= n-1 {
			return nil, fmt.Errorf("%w: endpoint (%d,%d) not interior", ErrInvalidMaze, c.Row, c.Col)
		}
		if walls[c.Row][c.Col] {
			return nil, fmt.Errorf("%w: endpoint (%d,%d) is a wall", ErrInvalidMaze, c.Row, c.Col)
		}
	}

	// Deep copy to prevent external mutation.
	cells := make([][]bool, n)
	for r := 0; r < n; r++ {
		cells[r] = make([]bool, n)
		copy(cells[r], walls[r])
	}

	return &Grid{size: n, walls: cells, start: start, end: end}, nil
}

// Size returns the grid dimension N.
func (g *Grid) Size() int { return g.size }

// Start returns the designated start cell.
func (g *Grid) Start() Cell { return g.start }

// End returns the designated end cell.
func (g *Grid) End() Cell { return g.end }

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// CellAt returns the state of the cell at (row, col), or ErrOutOfBounds
// when either index falls outside [0, N).
func (g *Grid) CellAt(row, col int) (CellState, error) {
	if !g.InBounds(row, col) {
		return Open, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, row, col, g.size, g.size)
	}
	if g.walls[row][col] {
		return Wall, nil
	}

	return Open, nil
}

// IsWall reports whether the in-bounds cell at (row, col) is a wall.
// Defined only for in-bounds coordinates; callers guard with InBounds.
func (g *Grid) IsWall(row, col int) bool {
	return g.walls[row][col]
}

// reachable runs a 4-connective flood fill from start and reports
// whether end was reached. Orthogonal connectivity keeps the answer
// independent of the movement mode a pathfinder later chooses.
// Complexity: O(N²) time and memory.
func (g *Grid) reachable() bool {
	seen := make([]bool, g.size*g.size)
	queue := []Cell{g.start}
	seen[g.start.Row*g.size+g.start.Col] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == g.end {
			return true
		}
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, 1}, {0, -1}} {
			r, c := u.Row+d[0], u.Col+d[1]
			if !g.InBounds(r, c) || g.walls[r][c] {
				continue
			}
			if i := r*g.size + c; !seen[i] {
				seen[i] = true
				queue = append(queue, Cell{Row: r, Col: c})
			}
		}
	}

	return false
}
