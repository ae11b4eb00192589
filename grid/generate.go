package grid

import (
	"fmt"
	"math/rand"
	"time"
)

// Generate produces a random maze per opts. Each interior cell becomes
// a wall independently with opts.WallProbability; every border cell is
// forced to a wall; the start (1,1) and end (N−2,N−2) cells are forced
// open regardless of the draw.
//
// Solvability is guaranteed: if a draw leaves the end unreachable, the
// draw is discarded and regenerated, up to opts.MaxAttempts times; the
// final draw is then made solvable by deterministically carving an
// L-shaped corridor (down the start column, then across the end row).
//
// A non-zero opts.Seed makes the result reproducible.
// Complexity: O(A·N²) time, A ≤ MaxAttempts; O(N²) memory.
func Generate(opts Options) (*Grid, error) {
	if opts.Size < MinSize || opts.Size > MaxSize {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, opts.Size)
	}
	if opts.WallProbability < 0 || opts.WallProbability >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadWallProbability, opts.WallProbability)
	}
	attempts := opts.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	n := opts.Size
	start := Cell{Row: 1, Col: 1}
	end := Cell{Row: n - 2, Col: n - 2}

	var g *Grid
	var err error
	for a := 0; a < attempts; a++ {
		g, err = New(draw(rng, n, opts.WallProbability, start, end), start, end)
		if err != nil {
			return nil, err
		}
		if g.reachable() {
			return g, nil
		}
	}

	// Budget exhausted: carve a corridor through the last draw.
	walls := carve(g, start, end)

	return New(walls, start, end)
}

// draw builds one random wall layout: border walls, random interior,
// open endpoints.
func draw(rng *rand.Rand, n int, p float64, start, end Cell) [][]bool {
	walls := make([][]bool, n)
	for r := 0; r < n; r++ {
		walls[r] = make([]bool, n)
		for c := 0; c < n; c++ {
			if r == 0 || r == n-1 || c == 0 || c == n-1 {
				walls[r][c] = true
				continue
			}
			walls[r][c] = rng.Float64() < p
		}
	}
	walls[start.Row][start.Col] = false
	walls[end.Row][end.Col] = false

	return walls
}

// carve copies g's layout and opens an L-shaped corridor: every cell of
// the start column from start down to end's row, then every cell of that
// row across to the end column.
func carve(g *Grid, start, end Cell) [][]bool {
	n := g.Size()
	walls := make([][]bool, n)
	for r := 0; r < n; r++ {
		walls[r] = make([]bool, n)
		for c := 0; c < n; c++ {
			walls[r][c] = g.IsWall(r, c)
		}
	}
	for r := start.Row; r <= end.Row; r++ {
		walls[r][start.Col] = false
	}
	for c := start.Col; c <= end.Col; c++ {
		walls[end.Row][c] = false
	}

	return walls
}
