// Command example runs a single maze day against the demo input in this
// directory:
//
//	go run ./example example/aoc.yaml
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gridwalk/aoc"
)

func main() {
	cfg := aoc.DefaultConfig()
	if len(os.Args) > 1 {
		cfg = aoc.MustGet(aoc.LoadConfig(os.Args[1]))
	}

	var reg aoc.Registry
	reg.Register(1, "maze", aoc.Part{Fn: shortest}, aoc.Part{Fn: shortestDiagonal})

	results, err := aoc.NewRunner(cfg, &reg, log.Printf).RunAll()
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range results {
		fmt.Printf("Day %02d %-8s %12v %12v\n", r.Day, r.Name, r.First, r.Second)
	}
}

func find(g aoc.Grid[rune], c rune) aoc.Pt {
	for y, row := range g {
		for x, v := range row {
			if v == c {
				return aoc.Pt{X: x, Y: y}
			}
		}
	}
	panic(fmt.Sprintf("no %q in grid", c))
}

func solve(p *aoc.Puzzle, diagonals bool) any {
	g := p.Grid()
	start, end := find(g, 'S'), find(g, 'E')
	size := g.Size()
	open := g.Passable(func(r rune) bool { return r != '#' })
	d, ok := aoc.FindPathDistance(start, end, open, size.Y, size.X, aoc.WithDiagonals(diagonals))
	if !ok {
		return nil
	}
	p.Debugf("%v -> %v: %d", start, end, d)
	return d
}

func shortest(p *aoc.Puzzle) any         { return solve(p, false) }
func shortestDiagonal(p *aoc.Puzzle) any { return solve(p, true) }
