// Package compare implements the five-way pathfinder harness and its
// ranked text report.
package compare

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazekit/grid"
	"github.com/katalvlaran/mazekit/pathfind"
)

// Report aggregates one Result per algorithm plus derived rankings.
// Order preserves the canonical run order for stable iteration.
type Report struct {
	// Order lists the algorithms in canonical run order.
	Order []pathfind.Algorithm
	// Results maps algorithm display name to its Result.
	Results map[string]pathfind.Result
	// Shortest names the solved run with the fewest path cells.
	// Empty when no variant found a path.
	Shortest string
	// MostEfficient names the run that explored the fewest nodes.
	MostEfficient string
	// Fastest names the run with the lowest elapsed time.
	Fastest string
}

// RunAll solves the same grid with every variant, sequentially and in
// canonical order, and returns the ranked Report. Options (endpoints,
// diagonal movement) apply identically to every run.
func RunAll(g *grid.Grid, opts ...pathfind.Option) (*Report, error) {
	rep := &Report{
		Order:   pathfind.Algorithms(),
		Results: make(map[string]pathfind.Result, len(pathfind.Algorithms())),
	}
	for _, algo := range rep.Order {
		res, err := pathfind.Solve(g, algo, opts...)
		if err != nil {
			return nil, fmt.Errorf("compare: %s run failed: %w", algo, err)
		}
		rep.Results[algo.String()] = res
	}
	rep.rank()

	return rep, nil
}

// rank derives the three winners. Iteration follows Order, and a later
// run must be strictly better to displace an earlier one, so ties break
// by canonical order on every invocation.
func (rep *Report) rank() {
	shortest, efficient, fastest := -1, -1, -1
	for i, algo := range rep.Order {
		res := rep.Results[algo.String()]
		if res.Solved() && (shortest < 0 || res.Stats.PathLength < rep.result(shortest).Stats.PathLength) {
			shortest = i
		}
		if efficient < 0 || res.Stats.NodesExplored < rep.result(efficient).Stats.NodesExplored {
			efficient = i
		}
		if fastest < 0 || res.Stats.Elapsed < rep.result(fastest).Stats.Elapsed {
			fastest = i
		}
	}
	if shortest >= 0 {
		rep.Shortest = rep.Order[shortest].String()
	}
	rep.MostEfficient = rep.Order[efficient].String()
	rep.Fastest = rep.Order[fastest].String()
}

// result returns the Result at position i of the canonical order.
func (rep *Report) result(i int) pathfind.Result {
	return rep.Results[rep.Order[i].String()]
}

// String renders the report as a plain-text table followed by the
// rankings, one line each.
func (rep *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-18s %8s %9s %10s %12s\n", "algorithm", "solved", "path", "explored", "elapsed")
	for _, algo := range rep.Order {
		res := rep.Results[algo.String()]
		fmt.Fprintf(&b, "%-18s %8t %9d %10d %12s\n",
			algo, res.Solved(), res.Stats.PathLength, res.Stats.NodesExplored, res.Stats.Elapsed)
	}
	fmt.Fprintf(&b, "shortest path : %s\n", orNone(rep.Shortest))
	fmt.Fprintf(&b, "most efficient: %s\n", orNone(rep.MostEfficient))
	fmt.Fprintf(&b, "fastest       : %s\n", orNone(rep.Fastest))

	return b.String()
}

// orNone substitutes a placeholder for an unset ranking.
func orNone(name string) string {
	if name == "" {
		return "(none)"
	}

	return name
}
