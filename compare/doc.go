// Package compare runs every pathfinding variant against one maze and
// ranks the outcomes.
//
// What:
//
//   - RunAll executes BFS, DFS, Dijkstra, A*, and Greedy Best-First
//     sequentially over the identical grid and endpoints, each run fully
//     isolated (fresh per-run state, uncontended timing).
//   - Report maps algorithm name → Result and derives three rankings:
//     shortest path, most efficient (fewest nodes explored), and fastest.
//     Ties always break in the canonical pathfind.Algorithms() order.
//   - Report.String renders a plain-text table suitable for a report file.
//
// Why:
//
//   - Timing comparisons are only meaningful when runs do not contend,
//     so variants run one after another, never in parallel.
//
// Complexity: five solver runs, O((V + E) log V) each; O(V) per Result.
//
// Errors: RunAll surfaces the first solver validation error verbatim
// (pathfind.ErrNilGrid and friends). Unreachable mazes are not errors;
// every Result simply carries an empty path.
package compare
