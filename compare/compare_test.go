package compare_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mazekit/compare"
	"github.com/katalvlaran/mazekit/grid"
	"github.com/katalvlaran/mazekit/pathfind"
	"github.com/stretchr/testify/assert"
)

// generate builds a reproducible maze for harness tests.
func generate(t *testing.T, size int, seed int64) *grid.Grid {
	t.Helper()
	opts := grid.DefaultOptions()
	opts.Size = size
	opts.Seed = seed
	g, err := grid.Generate(opts)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	return g
}

// TestRunAll_AllVariantsPresent verifies one Result per algorithm, keyed
// by display name and iterable in canonical order.
func TestRunAll_AllVariantsPresent(t *testing.T) {
	g := generate(t, 15, 11)

	rep, err := compare.RunAll(g)
	assert.NoError(t, err)
	assert.Equal(t, pathfind.Algorithms(), rep.Order)
	assert.Len(t, rep.Results, len(pathfind.Algorithms()))
	for _, algo := range rep.Order {
		res, ok := rep.Results[algo.String()]
		assert.True(t, ok, "missing result for %s", algo)
		assert.True(t, res.Solved(), "%s failed a solvable maze", algo)
	}
}

// TestRunAll_Rankings verifies the derived winners: the shortest path
// belongs to an optimal variant, and rankings are always populated on a
// solvable maze.
func TestRunAll_Rankings(t *testing.T) {
	g := generate(t, 21, 4)

	rep, err := compare.RunAll(g)
	assert.NoError(t, err)

	optimal := map[string]bool{
		pathfind.BFS.String():      true,
		pathfind.Dijkstra.String(): true,
		pathfind.AStar.String():    true,
	}
	assert.True(t, optimal[rep.Shortest], "shortest path won by non-optimal %q", rep.Shortest)
	assert.NotEmpty(t, rep.MostEfficient)
	assert.NotEmpty(t, rep.Fastest)

	// Under uniform costs BFS runs first and finds the optimum, so a
	// tie on length can never displace it.
	best := rep.Results[rep.Shortest].Stats.PathLength
	for name, res := range rep.Results {
		if res.Solved() {
			assert.GreaterOrEqual(t, res.Stats.PathLength, best, "%s beat the ranked shortest", name)
		}
	}
}

// TestRunAll_IsolatedRuns verifies results are reproducible across
// harness invocations: no state leaks between runs.
func TestRunAll_IsolatedRuns(t *testing.T) {
	g := generate(t, 15, 8)

	first, err := compare.RunAll(g, pathfind.WithDiagonal())
	assert.NoError(t, err)
	second, err := compare.RunAll(g, pathfind.WithDiagonal())
	assert.NoError(t, err)

	for _, algo := range first.Order {
		a, b := first.Results[algo.String()], second.Results[algo.String()]
		assert.Equal(t, a.Explored, b.Explored, "%s explored order drifted between harness runs", algo)
		assert.Equal(t, a.Path, b.Path, "%s path drifted between harness runs", algo)
	}
}

// TestRunAll_PropagatesErrors verifies solver validation surfaces.
func TestRunAll_PropagatesErrors(t *testing.T) {
	_, err := compare.RunAll(nil)
	assert.ErrorIs(t, err, pathfind.ErrNilGrid)

	g := generate(t, 15, 2)
	_, err = compare.RunAll(g, pathfind.WithStart(grid.Cell{Row: 50, Col: 50}))
	assert.ErrorIs(t, err, pathfind.ErrCellOutOfBounds)
}

// TestReport_String smoke-checks the text rendering.
func TestReport_String(t *testing.T) {
	g := generate(t, 15, 6)

	rep, err := compare.RunAll(g)
	assert.NoError(t, err)

	out := rep.String()
	for _, algo := range rep.Order {
		assert.Contains(t, out, algo.String())
	}
	assert.Contains(t, out, "shortest path")
	assert.Contains(t, out, "most efficient")
	assert.Contains(t, out, "fastest")
	assert.Equal(t, len(rep.Order)+4, strings.Count(out, "\n"), "unexpected report line count")
}
