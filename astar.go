package aoc

// Heuristic estimates the remaining cost from p to goal. It must never
// overestimate for FindPath to return a cheapest path.
type Heuristic func(p, goal Pt) int

// StepCost returns the accumulated cost after one more step, given the cost
// accumulated so far.
type StepCost func(cost int) int

type searchOptions struct {
	heuristic Heuristic
	stepCost  StepCost
	diagonals bool
}

// SearchOption configures FindPath and FindPathDistance.
type SearchOption func(*searchOptions)

// WithHeuristic replaces the default manhattan distance heuristic.
func WithHeuristic(h Heuristic) SearchOption {
	return func(o *searchOptions) { o.heuristic = h }
}

// WithStepCost replaces the default cost of 1 per step.
func WithStepCost(c StepCost) SearchOption {
	return func(o *searchOptions) { o.stepCost = c }
}

// WithDiagonals makes the search move in 8 directions instead of 4.
func WithDiagonals(diagonals bool) SearchOption {
	return func(o *searchOptions) { o.diagonals = diagonals }
}

// field is a search node. parent always points to an earlier expansion.
type field struct {
	pos    Pt
	cost   int
	dist   int
	parent *field
}

func (f *field) priority() int {
	return f.cost + f.dist
}

// FindPath returns a cheapest path from start to end on the grid
// [0,maxWidth)x[0,maxHeight), moving only where ok allows. The path excludes
// start and ends with end; it is empty if start == end. ok is false if end is
// unreachable.
//
// Once a position has an open entry, a later candidate for it is only queued
// if its priority is strictly lower, and expanded positions are never
// reopened. With a consistent heuristic and the default step cost the result
// is optimal.
func FindPath(start, end Pt, ok Traversable, maxHeight, maxWidth int, opts ...SearchOption) (path []Pt, found bool) {
	f := search(start, end, ok, maxHeight, maxWidth, opts)
	if f == nil {
		return nil, false
	}
	for ; f.parent != nil; f = f.parent {
		path = append(path, f.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	if path == nil {
		path = []Pt{}
	}
	return path, true
}

// FindPathDistance is like FindPath but only returns the cost of the path.
func FindPathDistance(start, end Pt, ok Traversable, maxHeight, maxWidth int, opts ...SearchOption) (cost int, found bool) {
	f := search(start, end, ok, maxHeight, maxWidth, opts)
	if f == nil {
		return 0, false
	}
	return f.cost, true
}

// search runs A* and returns the node reached at end, or nil. The open set is
// a min-heap on cost+heuristic; equal priorities pop in insertion order.
func search(start, end Pt, ok Traversable, maxHeight, maxWidth int, opts []SearchOption) *field {
	o := searchOptions{
		heuristic: Pt.MDist,
		stepCost:  func(cost int) int { return cost + 1 },
	}
	for _, opt := range opts {
		opt(&o)
	}

	open := MinQueue[*field]()
	queued := map[Pt]int{} // lowest queued priority per open position
	closed := map[Pt]bool{}

	first := &field{pos: start, dist: o.heuristic(start, end)}
	open.PushValue(first, first.priority())
	queued[start] = first.priority()

	for open.Len() > 0 {
		cur := open.Pop().V
		if closed[cur.pos] {
			// Superseded by a cheaper entry that was already expanded.
			continue
		}
		if cur.pos == end {
			return cur
		}
		delete(queued, cur.pos)
		closed[cur.pos] = true

		for _, n := range cur.pos.NeighborsFiltered(ok, maxHeight, maxWidth, o.diagonals) {
			if closed[n] {
				continue
			}
			nf := &field{
				pos:    n,
				cost:   o.stepCost(cur.cost),
				dist:   o.heuristic(n, end),
				parent: cur,
			}
			if p, seen := queued[n]; seen && p <= nf.priority() {
				continue
			}
			queued[n] = nf.priority()
			open.PushValue(nf, nf.priority())
		}
	}
	return nil
}
