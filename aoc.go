// Package aoc are quick & dirty utilities for solving Advent of Code
// problems: a grid toolkit with A* pathfinding, small graph and TSP solvers,
// parsing helpers, and a runner that executes registered puzzle days
// against their input files.
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"tailscale.com/types/logger"
)

// Puzzle is handed to every puzzle part. It gives access to the day's input.
type Puzzle struct {
	Day  int
	Demo bool

	input []byte
	debug bool
	logf  logger.Logf
}

// NewPuzzle returns a Puzzle for day reading from input. It is mostly useful
// in tests; the Runner builds its own.
func NewPuzzle(day int, input []byte) *Puzzle {
	return &Puzzle{Day: day, input: input, logf: logger.Discard}
}

// Input returns the raw input. The Runner gives every solution its own copy.
func (p *Puzzle) Input() []byte {
	return p.input
}

// Scanner returns a line scanner over the input. Its buffer may grow to the
// size of the input, so no line is too long to scan.
func (p *Puzzle) Scanner() *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(p.input))
	s.Buffer(nil, max(len(p.input)+1, bufio.MaxScanTokenSize))
	return s
}

// Lines returns the input split into lines, without the trailing newline.
func (p *Puzzle) Lines() []string {
	s := strings.TrimRight(strings.ReplaceAll(string(p.input), "\r\n", "\n"), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Grid returns the input as a grid of runes.
func (p *Puzzle) Grid() Grid[rune] {
	return ParseGrid(p.Lines())
}

// Debugf logs only when the runner is in debug mode.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.debug {
		p.logf(format, args...)
	}
}

// Part is one half of a day's puzzle. Fn returns the answer, or nil if
// there is none.
type Part struct {
	Fn          func(p *Puzzle) any
	LongRunning bool
}

// Solution is one implementation of a day.
type Solution struct {
	Day    int
	Name   string
	First  Part
	Second Part
}

// Registry holds the implemented days. A day may have several solutions;
// they run in registration order.
type Registry struct {
	mu    sync.Mutex
	byDay map[int][]Solution
}

// Register adds a solution for day. A Part with a nil Fn is reported as not
// implemented.
func (r *Registry) Register(day int, name string, first, second Part) {
	r.mu.Lock()
	defer r.mu.Unlock()
	InitMap(&r.byDay)
	r.byDay[day] = append(r.byDay[day], Solution{
		Day:    day,
		Name:   name,
		First:  first,
		Second: second,
	})
}

// Day returns the solutions registered for day.
func (r *Registry) Day(day int) []Solution {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Solution(nil), r.byDay[day]...)
}

// Days returns the implemented days in ascending order.
func (r *Registry) Days() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return SortedKeys(r.byDay)
}

// Last returns the highest implemented day.
func (r *Registry) Last() (int, bool) {
	days := r.Days()
	if len(days) == 0 {
		return 0, false
	}
	return days[len(days)-1], true
}

// Len returns the number of registered solutions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.byDay {
		n += len(s)
	}
	return n
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// TrimPrefix is strings.CutPrefix that panics if s lacks prefix.
func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		panic(fmt.Sprintf("bad prefix: %q", s))
	}
	return s1
}

// Or returns the first non-zero value of list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(&v).Elem().IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Parallel runs f on every element of in concurrently.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}
