package pathfind

import (
	"github.com/katalvlaran/mazekit/grid"
)

// runDFS explores with an explicit LIFO stack rather than recursion,
// bounding memory and keeping the visitation order deterministic.
// Cells are marked discovered at push time, which prevents cycles;
// there is no shortest-path guarantee.
func (r *runner) runDFS() {
	stack := make([]grid.Cell, 0, r.g.Size()*r.g.Size())
	seen := make(map[grid.Cell]bool, r.g.Size()*r.g.Size())

	stack = append(stack, r.opts.Start)
	seen[r.opts.Start] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r.visit(cur) {
			return
		}
		// Fixed neighbor order pushed onto a LIFO stack: the last
		// emitted direction is explored first, identically every run.
		for _, st := range Neighbors(r.g, cur, r.opts.Diagonal) {
			if seen[st.Cell] {
				continue
			}
			seen[st.Cell] = true
			r.came[st.Cell] = cur
			stack = append(stack, st.Cell)
		}
	}
}
