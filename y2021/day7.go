package y2021

import (
	"slices"

	"github.com/aocstars/aoc"
)

// align returns the cheapest total fuel to line up every crab, where cost
// maps a distance to the fuel it takes.
func align(in string, cost func(dist int) int) int {
	crabs := aoc.Fields(in, ',')
	best := -1
	for to := slices.Min(crabs); to <= slices.Max(crabs); to++ {
		fuel := 0
		for _, c := range crabs {
			fuel += cost(aoc.AbsDiff(c, to))
		}
		if best == -1 || fuel < best {
			best = fuel
		}
	}
	return best
}

func d7p1(in string) any {
	return align(in, func(d int) int { return d })
}

func d7p2(in string) any {
	return align(in, func(d int) int { return d * (d + 1) / 2 })
}
