// Package grid models a square maze as an immutable wall grid and
// generates random, guaranteed-solvable instances of it.
//
// What:
//
//   - Cell is one (row, col) position; Grid is an N×N wall layout with
//     fixed start and end cells, immutable once constructed.
//   - New validates every structural invariant (size range, border walls,
//     open endpoints) and never repairs a bad layout.
//   - Generate draws random interior walls with a seeded probability and
//     guarantees start→end reachability by bounded regeneration with a
//     deterministic carve fallback.
//   - Encode/Decode persist a maze as plain text ("SIZE:N" header plus
//     N rows of '0'/'1'); Decode revalidates through New.
//
// Why:
//
//   - Every pathfinder consumes the same read-only Grid, so correctness
//     of the maze is settled here, once, at the construction boundary.
//   - Seeded generation makes test mazes reproducible.
//
// Complexity:
//
//   - New:      O(N²) time and memory (deep copy + invariant scan).
//   - Generate: O(A·N²) time, A = attempts (≤ MaxAttempts), O(N²) memory.
//   - Decode:   O(N²) time and memory.
//
// Options:
//
//   - Options.Size: grid dimension N, MinSize ≤ N ≤ MaxSize.
//   - Options.WallProbability: chance each interior cell is a wall.
//   - Options.Seed: fixed seed for reproducible mazes (0 = time-derived).
//   - Options.MaxAttempts: regeneration budget before carving a path.
//
// Errors:
//
//   - ErrOutOfBounds: coordinate access outside [0,N).
//   - ErrBadSize: requested or declared size outside [MinSize, MaxSize].
//   - ErrBadWallProbability: probability outside [0,1).
//   - ErrInvalidMaze: layout violates a structural invariant.
package grid
