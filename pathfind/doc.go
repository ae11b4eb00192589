// Package pathfind races five classic search algorithms across a maze
// grid: BFS, DFS, Dijkstra, A*, and Greedy Best-First.
//
// What:
//
//   - One contract for all variants: Solve(grid, algo, opts...) → Result.
//   - Result carries the full explored-sequence (visitation order, ready
//     for animation), the reconstructed start→end path, and Stats.
//   - Neighbors is the single shared movement model: 4- or 8-directional,
//     unit cost for orthogonal steps, √2 for diagonal steps, and no
//     corner-cutting between two adjacent walls.
//   - Every solver is a pure function of (grid, start, end, movement);
//     no state survives between calls.
//
// Why:
//
//   - Animated visualizers replay the explored-sequence at their own
//     cadence; the core never blocks on rendering.
//   - Deterministic tie-breaking (fixed neighbor order, insertion-order
//     heap ties) makes runs reproducible and comparable.
//
// Variants:
//
//   - BFS      — FIFO frontier; fewest-edges path; unit-cost ordering.
//   - DFS      — explicit LIFO stack; finds a path, not the shortest.
//   - Dijkstra — frontier keyed by accumulated cost; minimal-cost path.
//   - AStar    — cost + admissible heuristic (Manhattan, or octile when
//     diagonal movement is enabled); minimal-cost path.
//   - Greedy   — heuristic only; fast convergence, no optimality.
//
// Complexity (V = N², E ≤ 8V):
//
//   - BFS/DFS:              O(V + E) time, O(V) memory.
//   - Dijkstra/AStar/Greedy: O((V + E) log V) time, O(V + E) memory
//     under lazy decrease-key.
//
// Errors:
//
//   - ErrNilGrid: nil *grid.Grid.
//   - ErrUnknownAlgorithm: algorithm tag outside the known set.
//   - ErrCellOutOfBounds: a start/end override outside the grid.
//   - ErrWallEndpoint: a start/end override on a wall cell.
//
// An unreachable end is not an error: Solve returns a Result with an
// empty Path and the fully exhausted explored-sequence.
package pathfind
