package y2022

import (
	"strings"

	"github.com/aocstars/aoc"
)

// rope pulls a rope of n knots through the motions and returns the number
// of positions the tail visited.
func rope(in string, n int) int {
	knots := make([]aoc.Pt, n)
	visited := map[aoc.Pt]bool{{}: true}
	for _, l := range aoc.Lines(in) {
		dir, steps, ok := strings.Cut(l, " ")
		if !ok || len(dir) != 1 {
			panic("bad motion: " + l)
		}
		d, ok := aoc.ParseDirection(rune(dir[0]))
		if !ok {
			panic("bad direction: " + dir)
		}
		for s := aoc.Int(steps); s > 0; s-- {
			knots[0] = knots[0].Step(d)
			for i := 1; i < n; i++ {
				prev, k := knots[i-1], knots[i]
				if aoc.AbsDiff(prev.X, k.X) > 1 || aoc.AbsDiff(prev.Y, k.Y) > 1 {
					knots[i] = k.Toward(prev)
				}
			}
			visited[knots[n-1]] = true
		}
	}
	return len(visited)
}

func d9p1(in string) any { return rope(in, 2) }

func d9p2(in string) any { return rope(in, 10) }
