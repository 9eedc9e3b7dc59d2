package y2021

import "github.com/aocstars/aoc"

// step advances the octopuses once and returns how many flashed.
func step(g aoc.Grid[int]) int {
	var q aoc.Queue[aoc.Pt]
	g.All(func(p aoc.Pt, v int) {
		g.Set(p, v+1)
		if v+1 > 9 {
			q.Push(p)
		}
	})
	flashed := map[aoc.Pt]bool{}
	q.While(func(p aoc.Pt) bool {
		if flashed[p] {
			return true
		}
		flashed[p] = true
		p.ForNeighbors(func(n aoc.Pt) bool {
			if v, ok := g.AtOk(n); ok {
				g.Set(n, v+1)
				if v+1 > 9 && !flashed[n] {
					q.Push(n)
				}
			}
			return true
		})
		return true
	})
	for p := range flashed {
		g.Set(p, 0)
	}
	return len(flashed)
}

func d11p1(in string) any {
	g := aoc.ParseDigitGrid(in)
	total := 0
	for i := 0; i < 100; i++ {
		total += step(g)
	}
	return total
}

// d11p2 returns the first step on which every octopus flashes.
func d11p2(in string) any {
	g := aoc.ParseDigitGrid(in)
	size := g.Size()
	for i := 1; ; i++ {
		if step(g) == size.X*size.Y {
			return i
		}
	}
}
