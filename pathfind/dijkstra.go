package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/mazekit/grid"
)

// runDijkstra orders the frontier by accumulated movement cost and
// relaxes neighbor edges. Decrease-key is lazy: a cheaper route pushes
// a fresh heap entry and the stale one is skipped on pop via the done
// set. Equal costs pop in insertion order, so runs are reproducible.
func (r *runner) runDijkstra() {
	n := r.g.Size() * r.g.Size()
	dist := make(map[grid.Cell]float64, n)
	done := make(map[grid.Cell]bool, n)

	pq := make(frontier, 0, n)
	heap.Init(&pq)
	dist[r.opts.Start] = 0
	heap.Push(&pq, &frontierItem{cell: r.opts.Start, seq: r.nextSeq()})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*frontierItem).cell
		// Skip stale entries already finalized under a cheaper cost.
		if done[cur] {
			continue
		}
		done[cur] = true
		if r.visit(cur) {
			return
		}
		for _, st := range Neighbors(r.g, cur, r.opts.Diagonal) {
			newDist := dist[cur] + st.Cost
			if old, ok := dist[st.Cell]; ok && newDist >= old {
				continue
			}
			dist[st.Cell] = newDist
			r.came[st.Cell] = cur
			heap.Push(&pq, &frontierItem{
				cell:     st.Cell,
				priority: newDist,
				seq:      r.nextSeq(),
			})
		}
	}
}
