// Package mazekit is an in-memory toolkit for generating grid mazes and
// racing classic pathfinding algorithms across them.
//
// 🚀 What is mazekit?
//
//	A small, deterministic library that brings together:
//		• Grid model: immutable N×N wall grids with validated invariants
//		• Maze generation: seeded random walls with guaranteed solvability
//		• Pathfinders: BFS, DFS, Dijkstra, A*, Greedy Best-First
//		• Comparison: run all five on one maze, rank the results
//
// ✨ Why choose mazekit?
//
//   - Reproducible – seeded generation and stable tie-breaking everywhere
//   - Renderer-agnostic – solvers return complete explored-sequences,
//     ready for any animation cadence
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	grid/     — Cell, Grid, maze generation and the text maze codec
//	pathfind/ — the shared movement model and the five solvers
//	compare/  — the five-way harness and its ranked text report
//
// Quick ASCII example:
//
//	#######
//	#S  # #
//	# # # #
//	# #  E#
//	#######
//
//	a 7×5 maze: S is the start, E the end, # are walls.
//
// Dive into examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/mazekit
package mazekit
