package y2018

import (
	"strings"

	"github.com/aocstars/aoc"
)

func d2p1(in string) any {
	var twos, threes int
	for _, id := range aoc.Lines(in) {
		counts := map[rune]int{}
		for _, c := range id {
			counts[c]++
		}
		var two, three bool
		for _, n := range counts {
			two = two || n == 2
			three = three || n == 3
		}
		if two {
			twos++
		}
		if three {
			threes++
		}
	}
	return twos * threes
}

// d2p2 returns the letters shared by the two ids that differ in exactly one
// position.
func d2p2(in string) any {
	ids := aoc.Lines(in)
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			if len(a) != len(b) {
				continue
			}
			diff := -1
			for k := 0; k < len(a); k++ {
				if a[k] == b[k] {
					continue
				}
				if diff != -1 {
					diff = -2
					break
				}
				diff = k
			}
			if diff >= 0 {
				return a[:diff] + a[diff+1:]
			}
		}
	}
	panic("no ids differ by one letter: " + strings.Join(ids, ","))
}
