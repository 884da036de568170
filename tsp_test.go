package aoc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cities = []TSPEdge{
	{"London", "Dublin", 464},
	{"London", "Belfast", 518},
	{"Dublin", "Belfast", 141},
}

func routeCost(t *testing.T, edges []TSPEdge, path []string) int {
	t.Helper()
	var g Graph[string]
	for _, e := range edges {
		g.AddEdge(e.Start, e.End, e.Cost)
	}
	total := 0
	for _, p := range PairWithNext(path) {
		d, ok := g.Dist(p.From, p.To)
		require.True(t, ok, "%s -> %s", p.From, p.To)
		total += d
	}
	return total
}

func TestSolveTSP(t *testing.T) {
	tests := []struct {
		name    string
		longest bool
		want    int
	}{
		{"shortest", false, 605},
		{"longest", true, 982},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := SolveTSP(cities, tt.longest, true)
			require.True(t, res.Success)
			assert.Equal(t, tt.want, res.Distance)
			assert.ElementsMatch(t, []string{"London", "Dublin", "Belfast"}, res.Path)
			assert.Equal(t, tt.want, routeCost(t, cities, res.Path))
		})
	}
}

func TestSolveTSPDirected(t *testing.T) {
	edges := []TSPEdge{
		{"a", "b", 1},
		{"b", "c", 10},
		{"c", "a", 2},
		{"b", "a", 100},
	}
	res := SolveTSP(edges, false, false)
	require.True(t, res.Success)
	assert.Equal(t, []string{"c", "a", "b"}, res.Path)
	assert.Equal(t, 3, res.Distance)

	res = SolveTSP(edges, true, false)
	require.True(t, res.Success)
	assert.Equal(t, 12, res.Distance)
	assert.Equal(t, []string{"b", "c", "a"}, res.Path)
}

func TestSolveTSPDisconnected(t *testing.T) {
	res := SolveTSP([]TSPEdge{{"a", "b", 1}, {"c", "d", 1}}, false, true)
	assert.False(t, res.Success)
	assert.Nil(t, res.Path)

	assert.False(t, SolveTSP(nil, false, true).Success)
}

func TestSolveTSPTooLarge(t *testing.T) {
	var edges []TSPEdge
	for i := 0; i < 21; i++ {
		edges = append(edges, TSPEdge{fmt.Sprint(i), fmt.Sprint(i + 1), 1})
	}
	assert.Panics(t, func() { SolveTSP(edges, false, true) })
}

func TestSolveSeatingArrangement(t *testing.T) {
	edges := []TSPEdge{
		{"Alice", "Bob", 54},
		{"Alice", "Carol", -79},
		{"Alice", "David", -2},
		{"Bob", "Alice", 83},
		{"Bob", "Carol", -7},
		{"Bob", "David", -63},
		{"Carol", "Alice", -62},
		{"Carol", "Bob", 60},
		{"Carol", "David", 55},
		{"David", "Alice", 46},
		{"David", "Bob", -7},
		{"David", "Carol", 41},
	}
	res := SolveSeatingArrangement(edges)
	require.True(t, res.Success)
	assert.Equal(t, 330, res.Distance)
	assert.Len(t, res.Path, 4)
	assert.Equal(t, "Alice", res.Path[0])
}

func TestSolveSeatingArrangementMissingPairs(t *testing.T) {
	// a and c have no opinion of each other, so they never sit together.
	edges := []TSPEdge{
		{"a", "b", 1},
		{"b", "c", 1},
		{"c", "d", 1},
		{"d", "a", 1},
		{"b", "d", 50},
	}
	res := SolveSeatingArrangement(edges)
	require.True(t, res.Success)
	assert.Equal(t, 4, res.Distance)
	for _, p := range PairWithNext(append(res.Path, res.Path[0])) {
		assert.NotEqual(t, []string{"a", "c"}, []string{min(p.From, p.To), max(p.From, p.To)})
	}

	res = SolveSeatingArrangement([]TSPEdge{{"a", "b", 1}, {"b", "c", 1}})
	assert.False(t, res.Success)
}

func TestTSPResultString(t *testing.T) {
	r := TSPResult{Success: true, Path: []string{"a", "b"}, Distance: 3}
	assert.Equal(t, "{ Success = true, Path = [a->b], Distance = 3 }", r.String())
}
