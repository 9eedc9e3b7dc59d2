package y2022

import "github.com/aocstars/aoc"

var directions = []aoc.Direction{aoc.Up, aoc.Right, aoc.Down, aoc.Left}

// look walks from p in direction d. It returns how many trees can be seen
// and whether the view reaches the edge of the grid unblocked.
func look(g aoc.Grid[int], p aoc.Pt, d aoc.Direction) (seen int, edge bool) {
	h := g.At(p)
	path := aoc.Path{Pt: p, Dir: d}
	for {
		next, ok := g.Move(path)
		if !ok {
			return seen, true
		}
		seen++
		if g.At(next.Pt) >= h {
			return seen, false
		}
		path = next
	}
}

func d8p1(in string) any {
	g := aoc.ParseDigitGrid(in)
	visible := 0
	g.All(func(p aoc.Pt, _ int) {
		for _, d := range directions {
			if _, edge := look(g, p, d); edge {
				visible++
				return
			}
		}
	})
	return visible
}

// d8p2 returns the highest scenic score: the product of the viewing
// distances in all four directions.
func d8p2(in string) any {
	g := aoc.ParseDigitGrid(in)
	best := 0
	g.All(func(p aoc.Pt, _ int) {
		score := 1
		for _, d := range directions {
			n, _ := look(g, p, d)
			score *= n
		}
		best = max(best, score)
	})
	return best
}
