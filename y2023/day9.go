package y2023

import "github.com/aocstars/aoc"

func extrapolateAll(in string, forward bool) int {
	sum := 0
	for _, l := range aoc.Lines(in) {
		sum += aoc.Extrapolate(aoc.Fields(l), forward)
	}
	return sum
}

func d9p1(in string) any { return extrapolateAll(in, true) }

func d9p2(in string) any { return extrapolateAll(in, false) }
