package aoc

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// Graph is a weighted graph. Edges added with AddEdge go both ways, edges
// added with AddArc only from a to b.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

type Edge[T comparable] struct {
	A, B T
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) RemoveNode(a K) {
	for e := range g.Edges[a] {
		delete(g.Edges[e], a)
	}
	for _, e := range g.Edges {
		delete(e, a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

// AddArc adds a directed edge from a to b.
func (g *Graph[K]) AddArc(a, b K, dist int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.AddNode(a)
	g.AddNode(b)
}

// AddEdge adds an undirected edge between a and b.
func (g *Graph[K]) AddEdge(a, b K, dist int) {
	g.AddArc(a, b, dist)
	g.AddArc(b, a, dist)
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

// Dist returns the weight of the edge from a to b.
func (g *Graph[K]) Dist(a, b K) (int, bool) {
	d, ok := g.Edges[a][b]
	return d, ok
}

func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// AllShortestPaths returns the shortest distance between every pair of
// connected nodes (Floyd–Warshall). Unconnected pairs are absent.
func (g *Graph[K]) AllShortestPaths() map[Edge[K]]int {
	type key = Edge[K]
	dist := map[key]int{}
	for k1 := range g.Nodes {
		dist[key{k1, k1}] = 0
		for k2, v := range g.Edges[k1] {
			if d, ok := dist[key{k1, k2}]; !ok || v < d {
				dist[key{k1, k2}] = v
			}
		}
	}
	for k2 := range g.Nodes {
		for k1 := range g.Nodes {
			e12, ok := dist[key{k1, k2}]
			if !ok {
				continue
			}
			for k3 := range g.Nodes {
				e23, ok := dist[key{k2, k3}]
				if !ok {
					continue
				}
				if e13, ok := dist[key{k1, k3}]; !ok || e12+e23 < e13 {
					dist[key{k1, k3}] = e12 + e23
				}
			}
		}
	}
	return dist
}

// LongestPath returns the length of the longest simple path from start to end.
func (g Graph[K]) LongestPath(start, end K) (rp int, ok bool) {
	return g.longestPathHelper(start, end, make(map[K]bool))
}

func (g Graph[K]) longestPathHelper(start, end K, visited map[K]bool) (rp int, ok bool) {
	if start == end {
		return 0, true
	}

	visited[start] = true
	defer func() {
		visited[start] = false
	}()
	best := math.MinInt
	for k, v := range g.Edges[start] {
		if visited[k] {
			continue
		}
		if got, ok := g.longestPathHelper(k, end, visited); ok && got+v > best {
			best = got + v
		}
	}
	if best == math.MinInt {
		return 0, false
	}
	return best, true
}

// Collapse removes every node that has exactly two neighbors, joining them
// with a single edge whose weight is the sum of both. Nodes in keep are left
// alone. If the neighbors are already joined, the shorter edge wins.
func (g *Graph[K]) Collapse(keep ...K) {
	for {
		trimmed := false
		for k1, e := range g.Edges {
			if len(e) != 2 || slices.Contains(keep, k1) {
				continue
			}
			ks := maps.Keys(e)
			k2, k3 := ks[0], ks[1]
			if k2 == k1 || k3 == k1 {
				continue
			}
			back2, ok2 := g.Edges[k2][k1]
			back3, ok3 := g.Edges[k3][k1]
			if !ok2 || !ok3 || back2 != e[k2] || back3 != e[k3] {
				continue // one-way edges
			}
			d := e[k2] + e[k3]
			g.RemoveNode(k1)
			if old, ok := g.Edges[k2][k3]; !ok || d < old {
				g.AddEdge(k2, k3, d)
			}
			trimmed = true
		}
		if !trimmed {
			return
		}
	}
}

// NumPaths returns the number of simple paths from start to end.
func (g *Graph[K]) NumPaths(start, end K) int {
	return g.NumPathsWithRestriction(start, end, func(x K, visited map[K]int) bool {
		return visited[x] == 0
	})
}

// NumPathsWithRestriction counts the paths from start to end where every
// step onto x is allowed by canVisit. visited holds how often each node is
// on the current path; it must not be modified.
func (g *Graph[K]) NumPathsWithRestriction(start, end K, canVisit func(x K, visited map[K]int) bool) int {
	return g.numPathsHelper(start, end, canVisit, make(map[K]int))
}

func (g *Graph[K]) numPathsHelper(start, end K, canVisit func(K, map[K]int) bool, visited map[K]int) int {
	if start == end {
		return 1
	}
	visited[start]++
	defer func() {
		visited[start]--
	}()
	count := 0
	for k := range g.Edges[start] {
		if canVisit(k, visited) {
			count += g.numPathsHelper(k, end, canVisit, visited)
		}
	}
	return count
}

// AnyKey returns any key from the map.
// It panics if the map is empty.
func AnyKey[K comparable, V any](m map[K]V) K {
	for k := range m {
		return k
	}
	panic("empty map")
}

// MinCut returns the edges of a minimum cut of the undirected graph g and
// their total weight, using the Stoer–Wagner algorithm. Each edge is
// reported once, from the side of the cut that holds its A node.
func (g *Graph[K]) MinCut() ([]Edge[K], int) {
	if len(g.Nodes) < 2 {
		return nil, 0
	}
	var (
		g2    = g.Clone()
		start = AnyKey(g2.Nodes)

		// merged nodes, keyed by the node that absorbed them
		groups = map[K][]K{}

		best = math.MaxInt
		side []K
	)
	group := func(k K) []K {
		if m, ok := groups[k]; ok {
			return m
		}
		return []K{k}
	}
	for len(g2.Nodes) > 1 {
		s, t, w := g2.minCutPhase(start)
		if w < best {
			best = w
			side = slices.Clone(group(t))
		}
		groups[s] = append(group(s), group(t)...)
		delete(groups, t)
		g2.merge(s, t)
	}

	in := make(map[K]bool, len(side))
	for _, k := range side {
		in[k] = true
	}
	var cuts []Edge[K]
	for _, a := range side {
		for b := range g.Edges[a] {
			if !in[b] {
				cuts = append(cuts, Edge[K]{a, b})
			}
		}
	}
	return cuts, best
}

// minCutPhase adds nodes in order of how tightly they are connected to the
// ones already added. It returns the last two nodes and the weight of the
// edges between the last one and the rest.
func (g *Graph[K]) minCutPhase(start K) (s, t K, wOut int) {
	pq := MaxQueue[K]()
	pris := make(map[K]*PQI[K], len(g.Nodes))
	for k := range g.Nodes {
		p := 0
		if k == start {
			p = 1
		}
		pris[k] = pq.PushValue(k, p)
	}

	for pq.Len() > 0 {
		next := pq.Pop()
		for k, v := range g.Edges[next.V] {
			p := pris[k]
			if p.Index() == -1 {
				continue
			}
			p.P += v
			pq.Update(p)
		}
		s, t = t, next.V
		wOut = next.P
	}
	return
}

// merge folds t into s, summing the weights of edges they share.
func (g *Graph[K]) merge(s, t K) {
	for k, tvk := range g.Edges[t] {
		svk := g.Edges[s][k]
		g.RemoveEdge(t, k)
		g.AddEdge(s, k, svk+tvk)
	}
	g.RemoveEdge(s, s)
	delete(g.Nodes, t)
	delete(g.Edges, t)
}
