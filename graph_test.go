package aoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diamond() *Graph[string] {
	var g Graph[string]
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "d", 5)
	g.AddEdge("a", "c", 2)
	g.AddEdge("c", "d", 1)
	return &g
}

func TestGraphEdges(t *testing.T) {
	g := diamond()
	assert.Equal(t, []string{"a", "b", "c", "d"}, SortedKeys(g.Nodes))

	d, ok := g.Dist("d", "c")
	assert.True(t, ok)
	assert.Equal(t, 1, d)
	_, ok = g.Dist("a", "d")
	assert.False(t, ok)

	g.AddArc("d", "e", 9)
	_, ok = g.Dist("e", "d")
	assert.False(t, ok)
	assert.True(t, g.Nodes["e"])

	c := g.Clone()
	c.RemoveEdge("a", "b")
	_, ok = g.Dist("a", "b")
	assert.True(t, ok)

	g.RemoveNode("d")
	assert.False(t, g.Nodes["d"])
	_, ok = g.Dist("c", "d")
	assert.False(t, ok)
	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, g.ReachableNodes("a"))
}

func TestAllShortestPaths(t *testing.T) {
	g := diamond()
	g.AddNode("lonely")
	dist := g.AllShortestPaths()
	assert.Equal(t, 3, dist[Edge[string]{"a", "d"}])
	assert.Equal(t, 4, dist[Edge[string]{"b", "d"}])
	assert.Equal(t, 0, dist[Edge[string]{"c", "c"}])
	_, ok := dist[Edge[string]{"a", "lonely"}]
	assert.False(t, ok)
}

func TestLongestPath(t *testing.T) {
	g := diamond()
	got, ok := g.LongestPath("a", "d")
	require.True(t, ok)
	assert.Equal(t, 6, got)

	g.AddNode("x")
	_, ok = g.LongestPath("a", "x")
	assert.False(t, ok)
}

func TestCollapse(t *testing.T) {
	var g Graph[int]
	// Junctions 1 and 4 joined by the corridor 2 - 3 and a longer shortcut.
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 4, 1)
	g.AddEdge(1, 4, 10)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 6, 1)
	g.AddEdge(4, 5, 1)
	g.AddEdge(4, 7, 1)
	g.Collapse()

	assert.Equal(t, []int{0, 1, 4, 5, 6, 7}, SortedKeys(g.Nodes))
	d, ok := g.Dist(1, 4)
	require.True(t, ok)
	assert.Equal(t, 3, d)

	var kept Graph[int]
	kept.AddEdge(1, 2, 1)
	kept.AddEdge(2, 3, 1)
	kept.AddEdge(0, 1, 1)
	kept.AddEdge(3, 4, 1)
	kept.Collapse(2)
	assert.Equal(t, []int{0, 2, 4}, SortedKeys(kept.Nodes))
	d, ok = kept.Dist(0, 2)
	require.True(t, ok)
	assert.Equal(t, 2, d)
}

func TestNumPaths(t *testing.T) {
	g := diamond()
	assert.Equal(t, 2, g.NumPaths("a", "d"))
	g.AddEdge("b", "c", 1)
	assert.Equal(t, 4, g.NumPaths("a", "d"))
	assert.Equal(t, 1, g.NumPaths("a", "a"))

	g.AddNode("lonely")
	assert.Zero(t, g.NumPaths("a", "lonely"))

	// Uppercase caves may be revisited.
	var caves Graph[string]
	for _, e := range [][2]string{
		{"start", "A"}, {"start", "b"}, {"A", "c"}, {"A", "b"},
		{"b", "d"}, {"A", "end"}, {"b", "end"},
	} {
		caves.AddEdge(e[0], e[1], 1)
	}
	got := caves.NumPathsWithRestriction("start", "end", func(x string, visited map[string]int) bool {
		return strings.ToUpper(x) == x || visited[x] == 0
	})
	assert.Equal(t, 10, got)
}

func TestMinCut(t *testing.T) {
	tests := []struct {
		name   string
		edges  [][3]string
		weight int
		cut    []Edge[string]
	}{
		{
			name: "bridge",
			edges: [][3]string{
				{"a", "b", "2"}, {"b", "c", "2"}, {"c", "a", "2"},
				{"c", "d", "1"},
				{"d", "e", "2"}, {"e", "f", "2"}, {"f", "d", "2"},
			},
			weight: 1,
			cut:    []Edge[string]{{"c", "d"}},
		},
		{
			name: "two-cliques",
			edges: [][3]string{
				{"a", "b", "1"}, {"a", "c", "1"}, {"a", "d", "1"}, {"b", "c", "1"}, {"b", "d", "1"}, {"c", "d", "1"},
				{"w", "x", "1"}, {"w", "y", "1"}, {"w", "z", "1"}, {"x", "y", "1"}, {"x", "z", "1"}, {"y", "z", "1"},
				{"a", "w", "1"}, {"d", "z", "1"},
			},
			weight: 2,
			cut:    []Edge[string]{{"a", "w"}, {"d", "z"}},
		},
		{
			name:   "disconnected",
			edges:  [][3]string{{"a", "b", "3"}, {"c", "d", "3"}},
			weight: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Graph[string]
			for _, e := range tt.edges {
				g.AddEdge(e[0], e[1], Int(e[2]))
			}
			before := g.Clone()
			cut, w := g.MinCut()
			assert.Equal(t, tt.weight, w)
			assert.Equal(t, before, &g, "graph modified")

			var got []Edge[string]
			for _, e := range cut {
				if e.B < e.A {
					e.A, e.B = e.B, e.A
				}
				got = append(got, e)
			}
			assert.ElementsMatch(t, tt.cut, got)
		})
	}

	var single Graph[int]
	single.AddNode(1)
	cut, w := single.MinCut()
	assert.Empty(t, cut)
	assert.Zero(t, w)
}
