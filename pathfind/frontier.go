package pathfind

import (
	"github.com/katalvlaran/mazekit/grid"
)

// frontierItem is one priority-queue entry. Ordering is by priority,
// then tie (the heuristic for A*, zero elsewhere), then seq — the
// monotonically increasing insertion number that makes equal-priority
// pops follow insertion order on every run.
type frontierItem struct {
	cell     grid.Cell
	priority float64
	tie      float64
	seq      int
}

// frontier is a min-heap of *frontierItem under the “lazy decrease-key”
// pattern: a cheaper route discovered later is pushed as a fresh entry,
// and the stale one is skipped on pop via the solver's done-set.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority, then tie, then insertion sequence.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	if f[i].tie != f[j].tie {
		return f[i].tie < f[j].tie
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

// Pop removes and returns the smallest element. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
