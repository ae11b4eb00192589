package pathfind

import (
	"github.com/katalvlaran/mazekit/grid"
)

// runBFS explores in FIFO order, marking cells discovered at enqueue
// time so nothing is enqueued twice. Traversal order treats every edge
// as one step, which yields the fewest-edges path; the weighted cost is
// still reported in Stats via the shared movement model.
func (r *runner) runBFS() {
	queue := make([]grid.Cell, 0, r.g.Size()*r.g.Size())
	seen := make(map[grid.Cell]bool, r.g.Size()*r.g.Size())

	queue = append(queue, r.opts.Start)
	seen[r.opts.Start] = true

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if r.visit(cur) {
			return
		}
		for _, st := range Neighbors(r.g, cur, r.opts.Diagonal) {
			if seen[st.Cell] {
				continue
			}
			seen[st.Cell] = true
			r.came[st.Cell] = cur
			queue = append(queue, st.Cell)
		}
	}
}
