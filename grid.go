package aoc

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"tailscale.com/util/deephash"
)

// Grid is a row-major 2D grid indexed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// InBounds reports whether p lies inside g.
func (g Grid[T]) InBounds(p Pt) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid returns the runes of lines as a grid. Empty lines are skipped.
func ParseGrid(lines []string) Grid[rune] {
	var g Grid[rune]
	for _, l := range lines {
		if l == "" {
			continue
		}
		g = append(g, []rune(l))
	}
	return g
}

// GridFromMap lays out the points of m on the smallest grid covering all of
// them; the top-left cell is the minimum X and Y found in m. fn maps each
// cell, with ok false for cells that are not in m.
func GridFromMap[T, V any](m map[Pt]V, fn func(v V, ok bool) T) Grid[T] {
	if len(m) == 0 {
		return nil
	}
	var lo, hi Pt
	first := true
	for p := range m {
		if first {
			lo, hi = p, p
			first = false
			continue
		}
		lo = Pt{min(lo.X, p.X), min(lo.Y, p.Y)}
		hi = Pt{max(hi.X, p.X), max(hi.Y, p.Y)}
	}
	out := MakeGrid[T](hi.X-lo.X+1, hi.Y-lo.Y+1)
	for y := range out {
		for x := range out[y] {
			v, ok := m[Pt{lo.X + x, lo.Y + y}]
			out[y][x] = fn(v, ok)
		}
	}
	return out
}

var hashers sync.Map // reflect.Type => func(*Grid[T]) deephash.Sum

// Hash returns a digest of the full contents of g.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[Grid[T]]())
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

// Transpose swaps rows and columns. Rows shorter than the longest one are
// padded with the zero value.
func (g Grid[T]) Transpose() Grid[T] {
	width := 0
	for _, row := range g {
		width = max(width, len(row))
	}
	out := MakeGrid[T](len(g), width)
	for y, row := range g {
		for x, v := range row {
			out[x][y] = v
		}
	}
	return out
}

func (g Grid[T]) RotateCounterClockwiseInto(out [][]T) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[size.X-1-x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) RotateCounterClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.RotateCounterClockwiseInto(out)
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// DiagonalsDown returns every top-left to bottom-right diagonal, starting
// with the ones that begin in the first column (top to bottom) followed by
// the ones that begin in the first row.
func (g Grid[T]) DiagonalsDown() [][]T {
	size := g.Size()
	if size.X == 0 || size.Y == 0 {
		return nil
	}
	var out [][]T
	line := func(r, c int) []T {
		var d []T
		for ; r < size.Y && c < size.X; r, c = r+1, c+1 {
			d = append(d, g[r][c])
		}
		return d
	}
	for r := 0; r < size.Y; r++ {
		out = append(out, line(r, 0))
	}
	for c := 1; c < size.X; c++ {
		out = append(out, line(0, c))
	}
	return out
}

// DiagonalsUp returns every top-right to bottom-left diagonal, starting with
// the ones that begin in the last column (top to bottom) followed by the ones
// that begin in the first row (right to left).
func (g Grid[T]) DiagonalsUp() [][]T {
	size := g.Size()
	if size.X == 0 || size.Y == 0 {
		return nil
	}
	var out [][]T
	line := func(r, c int) []T {
		var d []T
		for ; r < size.Y && c >= 0; r, c = r+1, c-1 {
			d = append(d, g[r][c])
		}
		return d
	}
	for r := 0; r < size.Y; r++ {
		out = append(out, line(r, size.X-1))
	}
	for c := size.X - 2; c >= 0; c-- {
		out = append(out, line(0, c))
	}
	return out
}

// SetArea applies fn to every cell in the rectangle spanned by from and to
// (inclusive), clipped to the grid.
func (g Grid[T]) SetArea(from, to Pt, fn func(T) T) {
	size := g.Size()
	x0, x1 := max(min(from.X, to.X), 0), min(max(from.X, to.X), size.X-1)
	y0, y1 := max(min(from.Y, to.Y), 0), min(max(from.Y, to.Y), size.Y-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g[y][x] = fn(g[y][x])
		}
	}
}

// Format renders g one row per line, mapping cells with fn and joining them
// with sep.
func (g Grid[T]) Format(fn func(T) string, sep string) string {
	var sb strings.Builder
	for _, row := range g {
		for x, v := range row {
			if x > 0 {
				sb.WriteString(sep)
			}
			sb.WriteString(fn(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g Grid[T]) String() string {
	return g.Format(func(v T) string {
		if r, ok := any(v).(rune); ok {
			return string(r)
		}
		return fmt.Sprint(v)
	}, "")
}

// Passable turns a per-cell predicate into a Traversable that allows moving
// onto any in-bounds cell for which walkable holds.
func (g Grid[T]) Passable(walkable func(T) bool) Traversable {
	return func(_, to Pt) bool {
		v, ok := g.AtOk(to)
		return ok && walkable(v)
	}
}

// FindPath runs FindPath over the bounds of g, stepping only on walkable
// cells.
func (g Grid[T]) FindPath(start, end Pt, walkable func(T) bool, opts ...SearchOption) ([]Pt, bool) {
	size := g.Size()
	return FindPath(start, end, g.Passable(walkable), size.Y, size.X, opts...)
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move advances p one step in its direction. It reports false if the step
// leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	next, err := p.Pt.Step(p.Dir)
	if err != nil || !g.InBounds(next) {
		return Path{}, false
	}
	p.Pt = next
	return p, true
}

// ToGraph converts the grid into a graph. If allowDiagonals is true, then
// diagonal neighbors are included. If disallowed is not nil, it is additionally
// called on each cell, and if it returns true, that cell is not included in the
// graph.
func (grid Grid[T]) ToGraph(start Pt, allowDiagonals bool, disallowed func(T) bool) Graph[Pt] {
	var g Graph[Pt]
	g.AddNode(start)

	fn := Pt.ForImmediateNeighbors
	if allowDiagonals {
		fn = Pt.ForNeighbors
	}

	seen := map[Pt]bool{}
	q := NewQueue[Pt](start)
	q.While(func(p1 Pt) bool {
		if seen[p1] {
			return true
		}
		seen[p1] = true
		fn(p1, func(p2 Pt) (keepGoing bool) {
			if v, ok := grid.AtOk(p2); !ok || (disallowed != nil && disallowed(v)) {
				return true
			}
			if !seen[p2] {
				q.Push(p2)
			}
			g.AddEdge(p1, p2, 1)
			return true
		})
		return true
	})
	g.Collapse(start)
	return g
}

// FloodFill replaces every cell equal to empty that is 4-connected to start
// with fill and returns the number of cells filled.
func FloodFill[T comparable](grid Grid[T], start Pt, empty, fill T) int {
	if v, ok := grid.AtOk(start); !ok || v != empty {
		return 0
	}
	var s Stack[Pt]
	s.Push(start)
	grid.Set(start, fill)
	n := 1
	s.While(func(p Pt) bool {
		p.ForImmediateNeighbors(func(p Pt) (keepGoing bool) {
			if v, ok := grid.AtOk(p); ok && v == empty {
				grid.Set(p, fill)
				n++
				s.Push(p)
			}
			return true
		})
		return true
	})
	return n
}

// FindCycle applies next to start until a state repeats, comparing states by
// hash. It returns the step at which the cycle begins and its length.
func FindCycle[S any](start S, next func(S) S, hash func(S) deephash.Sum) (begin, length int) {
	seen := map[deephash.Sum]int{}
	s := start
	for i := 0; ; i++ {
		h := hash(s)
		if j, ok := seen[h]; ok {
			return j, i - j
		}
		seen[h] = i
		s = next(s)
	}
}

// NthState returns the state after n applications of next, skipping whole
// cycles once one is detected.
func NthState[S any](start S, next func(S) S, hash func(S) deephash.Sum, n int) S {
	begin, length := FindCycle(start, next, hash)
	if n > begin {
		n = begin + (n-begin)%length
	}
	s := start
	for i := 0; i < n; i++ {
		s = next(s)
	}
	return s
}
