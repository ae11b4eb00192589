package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/mazekit/grid"
)

// runAStar orders the frontier by accumulated cost plus the remaining
// estimate: octile distance when diagonal movement is enabled,
// Manhattan otherwise. Both are admissible and consistent for their
// movement mode, so the first finalization of the end cell is optimal.
// Ties break on the lower estimate, then insertion order.
func (r *runner) runAStar() {
	n := r.g.Size() * r.g.Size()
	h := heuristicFor(r.opts.Diagonal)
	gScore := make(map[grid.Cell]float64, n)
	done := make(map[grid.Cell]bool, n)

	pq := make(frontier, 0, n)
	heap.Init(&pq)
	gScore[r.opts.Start] = 0
	heap.Push(&pq, &frontierItem{
		cell:     r.opts.Start,
		priority: h(r.opts.Start, r.opts.End),
		tie:      h(r.opts.Start, r.opts.End),
		seq:      r.nextSeq(),
	})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*frontierItem).cell
		if done[cur] {
			continue
		}
		done[cur] = true
		if r.visit(cur) {
			return
		}
		for _, st := range Neighbors(r.g, cur, r.opts.Diagonal) {
			newCost := gScore[cur] + st.Cost
			if old, ok := gScore[st.Cell]; ok && newCost >= old {
				continue
			}
			gScore[st.Cell] = newCost
			r.came[st.Cell] = cur
			remain := h(st.Cell, r.opts.End)
			heap.Push(&pq, &frontierItem{
				cell:     st.Cell,
				priority: newCost + remain,
				tie:      remain,
				seq:      r.nextSeq(),
			})
		}
	}
}
