// Package pathfind defines core types, options, and sentinel errors for
// the pathfinding solvers of github.com/katalvlaran/mazekit.
package pathfind

import (
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/mazekit/grid"
)

// Movement costs shared by every solver.
const (
	// StraightCost is the cost of one orthogonal step.
	StraightCost = 1.0
	// DiagonalCost is the cost of one diagonal step (√2).
	DiagonalCost = math.Sqrt2
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Solve.
	ErrNilGrid = errors.New("pathfind: grid is nil")
	// ErrUnknownAlgorithm indicates an Algorithm tag outside the known set.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")
	// ErrCellOutOfBounds indicates a start or end override outside the grid.
	ErrCellOutOfBounds = errors.New("pathfind: endpoint out of bounds")
	// ErrWallEndpoint indicates a start or end override on a wall cell.
	ErrWallEndpoint = errors.New("pathfind: endpoint is a wall")
)

// Algorithm selects one of the five solver variants.
type Algorithm int

const (
	// BFS explores in FIFO order and returns a fewest-edges path.
	BFS Algorithm = iota
	// DFS explores with an explicit stack; no shortest-path guarantee.
	DFS
	// Dijkstra orders the frontier by accumulated cost; minimal-cost path.
	Dijkstra
	// AStar orders by accumulated cost plus heuristic; minimal-cost path.
	AStar
	// Greedy orders by heuristic alone; no optimality guarantee.
	Greedy
)

// algorithmNames is indexed by Algorithm.
var algorithmNames = [...]string{"BFS", "DFS", "Dijkstra", "A*", "Greedy Best-First"}

// String returns the display name of the algorithm.
func (a Algorithm) String() string {
	if !a.valid() {
		return "unknown"
	}

	return algorithmNames[a]
}

// valid reports whether a is one of the five known variants.
func (a Algorithm) valid() bool {
	return a >= BFS && a <= Greedy
}

// Algorithms returns the canonical, stable ordering of all variants.
// Harnesses and rankings iterate in this order so ties break the same
// way on every run.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, Dijkstra, AStar, Greedy}
}

// Step is one movement edge out of a cell: the neighbor reached and the
// cost of moving there.
type Step struct {
	Cell grid.Cell
	Cost float64
}

// Stats summarizes one solver run.
type Stats struct {
	// NodesExplored counts cells finalized during the search.
	NodesExplored int
	// PathLength counts cells on the final path (0 when unreachable).
	PathLength int
	// PathCost is the weighted cost of the final path per the shared
	// movement model, regardless of how the variant ordered its frontier.
	PathCost float64
	// Elapsed is the wall-clock duration of the search loop.
	Elapsed time.Duration
}

// Result is the complete outcome of one solver run.
type Result struct {
	// Explored lists every finalized cell in visitation order.
	Explored []grid.Cell
	// Path is the start→end path inclusive, empty when unreachable.
	Path []grid.Cell
	// Stats holds the run's exploration and timing counters.
	Stats Stats
}

// Solved reports whether a path was found.
func (r Result) Solved() bool { return len(r.Path) > 0 }

// Options configures a single Solve call.
//
// Start, End  – endpoints of the search; default to the grid's own.
// Diagonal    – enable 8-directional movement (√2 diagonal steps).
type Options struct {
	Start    grid.Cell
	End      grid.Cell
	Diagonal bool
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithStart overrides the search start cell.
func WithStart(c grid.Cell) Option {
	return func(o *Options) { o.Start = c }
}

// WithEnd overrides the search end cell.
func WithEnd(c grid.Cell) Option {
	return func(o *Options) { o.End = c }
}

// WithDiagonal enables 8-directional movement.
// Default (if not set) is 4-directional movement.
func WithDiagonal() Option {
	return func(o *Options) { o.Diagonal = true }
}

// DefaultOptions returns an Options seeded with g's own endpoints and
// 4-directional movement. Use as a starting point for overrides.
func DefaultOptions(g *grid.Grid) Options {
	return Options{
		Start:    g.Start(),
		End:      g.End(),
		Diagonal: false,
	}
}
