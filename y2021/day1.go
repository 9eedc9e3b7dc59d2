package y2021

import "github.com/aocstars/aoc"

// increases counts depths deeper than the one window places before. With a
// window of 3 this compares sliding sums, whose shared terms cancel.
func increases(in string, window int) int {
	depths := aoc.Ints(aoc.Lines(in)...)
	n := 0
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			n++
		}
	}
	return n
}

func d1p1(in string) any { return increases(in, 1) }

func d1p2(in string) any { return increases(in, 3) }
