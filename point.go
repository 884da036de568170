package aoc

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrUnknownDirection is returned for direction values or codes outside the
// eight known directions.
var ErrUnknownDirection = errors.New("unknown direction")

type Pt = Pt2[int]

// Pt2 is an immutable point on a 2D grid. Y grows downwards.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Add returns p offset by d.
func (p Pt2[T]) Add(d Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + d.X, p.Y + d.Y}
}

// Direction is one of the four cardinal or four diagonal grid directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

var (
	CardinalDirections = []Direction{Up, Down, Left, Right}
	DiagonalDirections = []Direction{UpLeft, UpRight, DownLeft, DownRight}
)

var dirDeltas = [...]Pt{
	Up:        {0, -1},
	Down:      {0, 1},
	Left:      {-1, 0},
	Right:     {1, 0},
	UpLeft:    {-1, -1},
	UpRight:   {1, -1},
	DownLeft:  {-1, 1},
	DownRight: {1, 1},
}

var dirCodes = [...]string{
	Up:        "U",
	Down:      "D",
	Left:      "L",
	Right:     "R",
	UpLeft:    "UL",
	UpRight:   "UR",
	DownLeft:  "DL",
	DownRight: "DR",
}

var dirGlyphs = [...]rune{
	Up:        '^',
	Down:      'v',
	Left:      '<',
	Right:     '>',
	UpLeft:    '↖',
	UpRight:   '↗',
	DownLeft:  '↙',
	DownRight: '↘',
}

// Valid reports whether d is one of the eight known directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= DownRight
}

// Delta returns the unit vector of d.
func (d Direction) Delta() (Pt, error) {
	if !d.Valid() {
		return Pt{}, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}
	return dirDeltas[d], nil
}

// Code returns the letter code of d ("U", "DR", ...).
func (d Direction) Code() string {
	if !d.Valid() {
		return ""
	}
	return dirCodes[d]
}

// Glyph returns the arrow used to draw d.
func (d Direction) Glyph() rune {
	if !d.Valid() {
		return '?'
	}
	return dirGlyphs[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return string(dirGlyphs[d])
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case UpLeft:
		return DownRight
	case UpRight:
		return DownLeft
	case DownLeft:
		return UpRight
	case DownRight:
		return UpLeft
	}
	panic(fmt.Sprintf("opposite of %v", d))
}

// Turn rotates d by 90 degrees.
func (d Direction) Turn(right bool) Direction {
	switch d {
	case Up:
		if right {
			return Right
		}
		return Left
	case Right:
		if right {
			return Down
		}
		return Up
	case Down:
		if right {
			return Left
		}
		return Right
	case Left:
		if right {
			return Up
		}
		return Down
	case UpLeft:
		if right {
			return UpRight
		}
		return DownLeft
	case UpRight:
		if right {
			return DownRight
		}
		return UpLeft
	case DownRight:
		if right {
			return DownLeft
		}
		return UpRight
	case DownLeft:
		if right {
			return UpLeft
		}
		return DownRight
	}
	panic(fmt.Sprintf("turn of %v", d))
}

// ParseDirection parses a letter code ("U", "UL", ...) or an arrow glyph
// ("^", "↖", ...). Matching is case-sensitive.
func ParseDirection(code string) (Direction, error) {
	switch code {
	case "U", "^":
		return Up, nil
	case "D", "v":
		return Down, nil
	case "L", "<":
		return Left, nil
	case "R", ">":
		return Right, nil
	case "UL", "↖":
		return UpLeft, nil
	case "UR", "↗":
		return UpRight, nil
	case "DL", "↙":
		return DownLeft, nil
	case "DR", "↘":
		return DownRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, code)
}

// Step returns the point one unit away from p in direction d.
func (p Pt2[T]) Step(d Direction) (Pt2[T], error) {
	dv, err := d.Delta()
	if err != nil {
		return p, err
	}
	return Pt2[T]{p.X + T(dv.X), p.Y + T(dv.Y)}, nil
}

// Move is like Step but panics on an unknown direction.
func (p Pt2[T]) Move(d Direction) Pt2[T] {
	return MustGet(p.Step(d))
}

// ForNeighbors calls f for the eight neighbors of p in the order Up, Down,
// Left, Right, UpLeft, UpRight, DownLeft, DownRight.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for d := Up; d <= DownRight; d++ {
		dv := dirDeltas[d]
		if !f(Pt2[T]{p.X + T(dv.X), p.Y + T(dv.Y)}) {
			return
		}
	}
}

// ForImmediateNeighbors calls f for the four cardinal neighbors of p.
func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for _, d := range CardinalDirections {
		dv := dirDeltas[d]
		if !f(Pt2[T]{p.X + T(dv.X), p.Y + T(dv.Y)}) {
			return
		}
	}
}

// Neighbors returns the cardinal neighbors of p followed by the diagonal ones
// if diagonals is set.
func (p Pt2[T]) Neighbors(diagonals bool) []Pt2[T] {
	out := make([]Pt2[T], 0, 8)
	fn := p.ForImmediateNeighbors
	if diagonals {
		fn = p.ForNeighbors
	}
	fn(func(n Pt2[T]) bool {
		out = append(out, n)
		return true
	})
	return out
}

// Traversable reports whether a move from one cell to an adjacent one is
// allowed.
type Traversable func(from, to Pt) bool

// NeighborsFiltered returns the neighbors of p that lie inside
// [0,maxWidth)x[0,maxHeight) and for which ok(p, n) holds. The order is the
// one of Neighbors.
func (p Pt2[T]) NeighborsFiltered(ok func(from, to Pt2[T]) bool, maxHeight, maxWidth T, diagonals bool) []Pt2[T] {
	var out []Pt2[T]
	for _, n := range p.Neighbors(diagonals) {
		if n.X < 0 || n.X >= maxWidth || n.Y < 0 || n.Y >= maxHeight {
			continue
		}
		if ok(p, n) {
			out = append(out, n)
		}
	}
	return out
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

// CDist returns the chebyshev distance between a and b.
func (a Pt2[T]) CDist(b Pt2[T]) T {
	return max(AbsDiff(a.X, b.X), AbsDiff(a.Y, b.Y))
}

// EDist returns the euclidean distance between a and b, truncated.
func (a Pt2[T]) EDist(b Pt2[T]) T {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
	return T(math.Sqrt(dx*dx + dy*dy))
}

// WithinReach reports whether b is p itself or one of its eight neighbors.
func (p Pt2[T]) WithinReach(b Pt2[T]) bool {
	return p.CDist(b) <= 1
}

// unitToward returns the per-axis step from p towards b, each axis clamped to
// [-1, 1].
func (p Pt2[T]) unitToward(b Pt2[T]) Pt2[T] {
	return Pt2[T]{Sign(b.X - p.X), Sign(b.Y - p.Y)}
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	return p.Add(p.unitToward(b))
}

// DirectionTowards returns the direction of the step from p that reduces the
// chebyshev distance to b the most, preferring diagonals. If p == b it returns
// Up.
func (p Pt2[T]) DirectionTowards(b Pt2[T]) (Direction, error) {
	if p == b {
		return Up, nil
	}
	u := p.unitToward(b)
	for d, dv := range dirDeltas {
		if T(dv.X) == u.X && T(dv.Y) == u.Y {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%w: towards %v from %v", ErrUnknownDirection, b, p)
}

// StepRule controls how StepTowards picks its step. The zero value allows and
// prefers diagonal steps and otherwise moves horizontally first.
type StepRule struct {
	NoDiagonal     bool // only horizontal or vertical steps
	AvoidDiagonal  bool // step diagonally only on an exact diagonal
	PreferVertical bool // resolve straight steps vertically first
}

// StepTowards returns the point one step closer to target according to r.
// If p == target, it returns p.
func (p Pt2[T]) StepTowards(target Pt2[T], r StepRule) Pt2[T] {
	if p == target {
		return p
	}
	u := p.unitToward(target)
	dx, dy := AbsDiff(p.X, target.X), AbsDiff(p.Y, target.Y)
	switch {
	case !r.NoDiagonal && !r.AvoidDiagonal:
		return p.Add(u)
	case !r.NoDiagonal && dx == dy:
		return p.Add(u)
	case !r.PreferVertical && dx != 0:
		return Pt2[T]{p.X + u.X, p.Y}
	case r.PreferVertical && dy == 0:
		return Pt2[T]{p.X + u.X, p.Y}
	}
	return Pt2[T]{p.X, p.Y + u.Y}
}

// WalkTowards returns every point visited while stepping from p to target,
// ending with target. p itself is not included.
func (p Pt2[T]) WalkTowards(target Pt2[T], r StepRule) []Pt2[T] {
	var out []Pt2[T]
	for cur := p; cur != target; {
		cur = cur.StepTowards(target, r)
		out = append(out, cur)
	}
	return out
}

// StandardizePt wraps p into the rectangle [0,size.X)x[0,size.Y).
func StandardizePt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}
