package y2021

import (
	"slices"

	"github.com/aocstars/aoc"
)

func lowPoints(g aoc.Grid[int]) []aoc.Pt {
	var out []aoc.Pt
	g.All(func(p aoc.Pt, h int) {
		low := true
		p.ForImmediateNeighbors(func(q aoc.Pt) bool {
			if v, ok := g.AtOk(q); ok && v <= h {
				low = false
				return false
			}
			return true
		})
		if low {
			out = append(out, p)
		}
	})
	return out
}

func d9p1(in string) any {
	g := aoc.ParseDigitGrid(in)
	risk := 0
	for _, p := range lowPoints(g) {
		risk += g.At(p) + 1
	}
	return risk
}

// d9p2 multiplies the sizes of the three largest basins. Basins are bounded
// by height 9, so filled cells are marked with 9.
func d9p2(in string) any {
	g := aoc.ParseDigitGrid(in)
	var sizes []int
	for _, p := range lowPoints(g) {
		sizes = append(sizes, aoc.FloodFill(g, p, func(h int) bool { return h < 9 }, 9))
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return sizes[0] * sizes[1] * sizes[2]
}
