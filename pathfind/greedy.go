package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/mazekit/grid"
)

// runGreedy orders the frontier by the heuristic alone, ignoring the
// accumulated cost. Each cell is pushed at most once, so convergence is
// fast, but the first route found to a cell is kept even when a cheaper
// one exists: no optimality guarantee.
func (r *runner) runGreedy() {
	n := r.g.Size() * r.g.Size()
	h := heuristicFor(r.opts.Diagonal)
	seen := make(map[grid.Cell]bool, n)

	pq := make(frontier, 0, n)
	heap.Init(&pq)
	seen[r.opts.Start] = true
	heap.Push(&pq, &frontierItem{
		cell:     r.opts.Start,
		priority: h(r.opts.Start, r.opts.End),
		seq:      r.nextSeq(),
	})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*frontierItem).cell
		if r.visit(cur) {
			return
		}
		for _, st := range Neighbors(r.g, cur, r.opts.Diagonal) {
			if seen[st.Cell] {
				continue
			}
			seen[st.Cell] = true
			r.came[st.Cell] = cur
			heap.Push(&pq, &frontierItem{
				cell:     st.Cell,
				priority: h(st.Cell, r.opts.End),
				seq:      r.nextSeq(),
			})
		}
	}
}
