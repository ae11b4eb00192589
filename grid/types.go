// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/mazekit.
package grid

import (
	"errors"
)

// Size limits for a maze grid. Mazes are always square.
const (
	// MinSize is the smallest accepted grid dimension.
	MinSize = 10
	// MaxSize is the largest accepted grid dimension.
	MaxSize = 30
	// DefaultSize is the dimension used when none is requested.
	DefaultSize = 15
)

// DefaultWallProbability is the chance each interior cell becomes a wall
// during random generation.
const DefaultWallProbability = 0.35

// DefaultMaxAttempts bounds regeneration before Generate falls back to
// carving a path deterministically.
const DefaultMaxAttempts = 16

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a coordinate outside [0, N) on either axis.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBadSize indicates a grid dimension outside [MinSize, MaxSize].
	ErrBadSize = errors.New("grid: size must be between 10 and 30")
	// ErrBadWallProbability indicates a wall probability outside [0, 1).
	ErrBadWallProbability = errors.New("grid: wall probability must be in [0, 1)")
	// ErrInvalidMaze indicates a layout violating a structural invariant.
	ErrInvalidMaze = errors.New("grid: invalid maze layout")
)

// Cell identifies one grid position. Cells are comparable and are used
// directly as map keys by the pathfinders.
type Cell struct {
	Row, Col int
}

// CellState reports whether a cell is open or a wall.
type CellState int

const (
	// Open marks a walkable cell.
	Open CellState = iota
	// Wall marks a blocked cell.
	Wall
)

// Options contains tunable parameters for maze generation.
type Options struct {
	// Size is the grid dimension N; the maze is N×N.
	Size int
	// WallProbability is the independent chance each interior cell
	// becomes a wall. Borders are always walls; start/end always open.
	WallProbability float64
	// Seed fixes the random source for reproducible mazes.
	// Zero selects a time-derived seed.
	Seed int64
	// MaxAttempts bounds regeneration when a draw is unsolvable.
	// Zero selects DefaultMaxAttempts.
	MaxAttempts int
}

// DefaultOptions returns an Options with default settings:
// Size=15, WallProbability=0.35, time-derived seed, 16 attempts.
func DefaultOptions() Options {
	return Options{
		Size:            DefaultSize,
		WallProbability: DefaultWallProbability,
		Seed:            0,
		MaxAttempts:     DefaultMaxAttempts,
	}
}

// Grid is an immutable square maze. walls[r][c] == true marks a wall.
// The start and end cells are fixed for the lifetime of the Grid and
// are always open. Grids are safe for concurrent read-only use.
type Grid struct {
	size       int
	walls      [][]bool
	start, end Cell
}
