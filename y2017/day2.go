package y2017

import (
	"slices"

	"github.com/aocstars/aoc"
)

func d2p1(in string) any {
	sum := 0
	for _, l := range aoc.Lines(in) {
		row := aoc.Fields(l)
		sum += slices.Max(row) - slices.Min(row)
	}
	return sum
}

// d2p2 sums, per row, the quotient of the only two values that divide evenly.
func d2p2(in string) any {
	sum := 0
	for _, l := range aoc.Lines(in) {
		sum += evenQuotient(aoc.Fields(l))
	}
	return sum
}

func evenQuotient(row []int) int {
	for i, a := range row {
		for j, b := range row {
			if i != j && b != 0 && a%b == 0 {
				return a / b
			}
		}
	}
	panic("no evenly divisible pair")
}
