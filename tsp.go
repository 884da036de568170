package aoc

import (
	"fmt"
	"strings"
)

// TSPEdge is the cost of travelling from Start to End.
type TSPEdge struct {
	Start, End string
	Cost       int
}

// TSPResult is the best route found by SolveTSP or SolveSeatingArrangement.
type TSPResult struct {
	Success  bool
	Path     []string
	Distance int
}

func (r TSPResult) String() string {
	return fmt.Sprintf("{ Success = %v, Path = [%s], Distance = %d }", r.Success, strings.Join(r.Path, "->"), r.Distance)
}

// tspGraph collects the edges into a graph and returns the node names in the
// order they first appear.
func tspGraph(edges []TSPEdge, symmetric bool) (*Graph[string], []string) {
	var g Graph[string]
	var names []string
	for _, e := range edges {
		for _, n := range []string{e.Start, e.End} {
			if !g.Nodes[n] {
				names = append(names, n)
				g.AddNode(n)
			}
		}
		if symmetric {
			g.AddEdge(e.Start, e.End, e.Cost)
		} else {
			g.AddArc(e.Start, e.End, e.Cost)
		}
	}
	return &g, names
}

// heldKarp finds the best Hamiltonian path over n nodes using w(i, j) as the
// step weight, or the best cycle if cycle is set. w reports false for steps
// that are not possible. It maximises if longest is set.
func heldKarp(n int, w func(i, j int) (int, bool), longest, cycle bool) (order []int, total int, ok bool) {
	if n == 0 {
		return nil, 0, false
	}
	better := func(a, b int) bool {
		if longest {
			return a > b
		}
		return a < b
	}
	full := 1<<n - 1
	cost := make([][]int, full+1)
	from := make([][]int, full+1)
	for m := range cost {
		cost[m] = make([]int, n)
		from[m] = make([]int, n)
		for j := range cost[m] {
			from[m][j] = -2 // unreachable
		}
	}
	starts := n
	if cycle {
		starts = 1 // rotations of a cycle are equivalent
	}
	for j := 0; j < starts; j++ {
		from[1<<j][j] = -1
	}
	for m := 1; m <= full; m++ {
		for j := 0; j < n; j++ {
			if from[m][j] == -2 {
				continue
			}
			for k := 0; k < n; k++ {
				if m&(1<<k) != 0 {
					continue
				}
				d, ok := w(j, k)
				if !ok {
					continue
				}
				nm, c := m|1<<k, cost[m][j]+d
				if from[nm][k] == -2 || better(c, cost[nm][k]) {
					cost[nm][k] = c
					from[nm][k] = j
				}
			}
		}
	}

	last := -1
	for j := 0; j < n; j++ {
		if from[full][j] == -2 {
			continue
		}
		c := cost[full][j]
		if cycle && n > 1 {
			d, ok := w(j, 0)
			if !ok {
				continue
			}
			c += d
		}
		if last == -1 || better(c, total) {
			last, total = j, c
		}
	}
	if last == -1 {
		return nil, 0, false
	}
	for m, j := full, last; j >= 0; {
		order = append(order, j)
		m, j = m&^(1<<j), from[m][j]
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, total, true
}

// SolveTSP returns the cheapest route that visits every node named in edges
// exactly once, without returning to the start. If longest is set, it
// returns the most expensive route instead. Unless symmetric is set, edges
// only go from Start to End.
func SolveTSP(edges []TSPEdge, longest, symmetric bool) TSPResult {
	g, names := tspGraph(edges, symmetric)
	if len(names) > 20 {
		panic(fmt.Sprintf("SolveTSP: %d nodes is too many", len(names)))
	}
	order, total, ok := heldKarp(len(names), func(i, j int) (int, bool) {
		return g.Dist(names[i], names[j])
	}, longest, false)
	if !ok {
		return TSPResult{}
	}
	return TSPResult{Success: true, Path: pick(names, order), Distance: total}
}

// SolveSeatingArrangement seats every node named in edges around a round
// table so that the total happiness is maximised. Each edge is how much Start
// gains sitting next to End; a missing direction counts as zero, and pairs
// without any edge cannot sit together.
func SolveSeatingArrangement(edges []TSPEdge) TSPResult {
	g, names := tspGraph(edges, false)
	if len(names) > 20 {
		panic(fmt.Sprintf("SolveSeatingArrangement: %d nodes is too many", len(names)))
	}
	order, total, ok := heldKarp(len(names), func(i, j int) (int, bool) {
		ab, ok1 := g.Dist(names[i], names[j])
		ba, ok2 := g.Dist(names[j], names[i])
		return ab + ba, ok1 || ok2
	}, true, true)
	if !ok {
		return TSPResult{}
	}
	return TSPResult{Success: true, Path: pick(names, order), Distance: total}
}

func pick(names []string, order []int) []string {
	out := make([]string, len(order))
	for i, j := range order {
		out[i] = names[j]
	}
	return out
}
