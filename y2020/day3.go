package y2020

import "github.com/aocstars/aoc"

// trees counts the trees hit going right dx and down dy per step. The map
// repeats to the right.
func trees(g aoc.Grid[byte], dx, dy int) int {
	n := 0
	width := g.Size().X
	for p := (aoc.Pt{}); p.Y < len(g); p.X, p.Y = p.X+dx, p.Y+dy {
		if g[p.Y][p.X%width] == '#' {
			n++
		}
	}
	return n
}

func d3p1(in string) any {
	return trees(aoc.ParseByteGrid(in), 3, 1)
}

func d3p2(in string) any {
	g := aoc.ParseByteGrid(in)
	prod := 1
	for _, s := range []aoc.Pt{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 5, Y: 1}, {X: 7, Y: 1}, {X: 1, Y: 2}} {
		prod *= trees(g, s.X, s.Y)
	}
	return prod
}
