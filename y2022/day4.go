package y2022

import (
	"fmt"

	"github.com/aocstars/aoc"
)

// countPairs counts the section assignment pairs for which match holds.
func countPairs(in string, match func(a1, a2, b1, b2 int) bool) int {
	n := 0
	for _, l := range aoc.Lines(in) {
		var a1, a2, b1, b2 int
		aoc.MustGet(fmt.Sscanf(l, "%d-%d,%d-%d", &a1, &a2, &b1, &b2))
		if match(a1, a2, b1, b2) {
			n++
		}
	}
	return n
}

func d4p1(in string) any {
	return countPairs(in, func(a1, a2, b1, b2 int) bool {
		return (a1 <= b1 && b2 <= a2) || (b1 <= a1 && a2 <= b2)
	})
}

func d4p2(in string) any {
	return countPairs(in, func(a1, a2, b1, b2 int) bool {
		return a1 <= b2 && b1 <= a2
	})
}
