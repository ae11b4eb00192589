package pathfind

import (
	"fmt"
	"time"

	"github.com/katalvlaran/mazekit/grid"
)

// Solve runs one pathfinding variant over g and returns its Result.
// It accepts functional options to override the endpoints or enable
// diagonal movement; defaults come from DefaultOptions(g).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. algo must be a known variant (ErrUnknownAlgorithm).
//  3. Start and End must be in-bounds (ErrCellOutOfBounds).
//  4. Start and End must be open cells (ErrWallEndpoint).
//
// Start == End short-circuits to the trivial one-cell path with no
// exploration. An unreachable End is a normal outcome: the Result has
// an empty Path and its Explored holds the entire reachable component.
//
// Solve is a pure function of its inputs; g is never mutated, and
// concurrent calls over the same Grid are safe.
func Solve(g *grid.Grid, algo Algorithm, opts ...Option) (Result, error) {
	// 1) Validate grid.
	if g == nil {
		return Result{}, ErrNilGrid
	}

	// 2) Validate algorithm tag.
	if !algo.valid() {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}

	// 3) Build options.
	o := DefaultOptions(g)
	for _, opt := range opts {
		opt(&o)
	}

	// 4) Validate endpoints.
	for _, c := range []grid.Cell{o.Start, o.End} {
		if !g.InBounds(c.Row, c.Col) {
			return Result{}, fmt.Errorf("%w: (%d,%d)", ErrCellOutOfBounds, c.Row, c.Col)
		}
		if g.IsWall(c.Row, c.Col) {
			return Result{}, fmt.Errorf("%w: (%d,%d)", ErrWallEndpoint, c.Row, c.Col)
		}
	}

	// 5) Trivial search: already there.
	if o.Start == o.End {
		return Result{
			Path:  []grid.Cell{o.Start},
			Stats: Stats{PathLength: 1},
		}, nil
	}

	// 6) Run the variant, timing the search loop only.
	r := newRunner(g, o)
	started := time.Now()
	switch algo {
	case BFS:
		r.runBFS()
	case DFS:
		r.runDFS()
	case Dijkstra:
		r.runDijkstra()
	case AStar:
		r.runAStar()
	case Greedy:
		r.runGreedy()
	}
	elapsed := time.Since(started)

	// 7) Reconstruct the path and assemble stats.
	path := r.reconstruct()
	res := Result{
		Explored: r.explored,
		Path:     path,
		Stats: Stats{
			NodesExplored: len(r.explored),
			PathLength:    len(path),
			PathCost:      pathCost(path),
			Elapsed:       elapsed,
		},
	}

	return res, nil
}

// runner holds the mutable state of a single solver run. A fresh runner
// is built per Solve call, so nothing leaks between runs.
type runner struct {
	g        *grid.Grid
	opts     Options
	came     map[grid.Cell]grid.Cell // predecessor links for reconstruction
	explored []grid.Cell             // finalized cells in visitation order
	solved   bool
	seq      int // insertion counter feeding frontier tie-breaks
}

// newRunner allocates the per-run state sized to the grid.
func newRunner(g *grid.Grid, o Options) *runner {
	n := g.Size() * g.Size()

	return &runner{
		g:    g,
		opts: o,
		came: make(map[grid.Cell]grid.Cell, n),
	}
}

// visit finalizes cell c: records it in the explored-sequence and
// reports whether it is the goal.
func (r *runner) visit(c grid.Cell) bool {
	r.explored = append(r.explored, c)
	if c == r.opts.End {
		r.solved = true
	}

	return r.solved
}

// nextSeq returns the next insertion sequence number.
func (r *runner) nextSeq() int {
	r.seq++

	return r.seq
}

// reconstruct walks predecessor links from End back to Start and
// reverses the result. Returns nil when End was never reached.
func (r *runner) reconstruct() []grid.Cell {
	if !r.solved {
		return nil
	}
	path := []grid.Cell{r.opts.End}
	for cur := r.opts.End; cur != r.opts.Start; {
		cur = r.came[cur]
		path = append(path, cur)
	}
	// Reverse in place: predecessors were collected end-first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// pathCost sums the weighted movement cost along path, whatever cost
// model ordered the variant's frontier.
func pathCost(path []grid.Cell) float64 {
	var cost float64
	for i := 1; i < len(path); i++ {
		cost += stepCost(path[i-1], path[i])
	}

	return cost
}
