// Package y2017 solves Advent of Code 2017.
package y2017

import "github.com/aocstars/aoc"

// Register adds the 2017 stars to b.
func Register(b *aoc.Builder) {
	b.Day(2017, 1, d1p1, d1p2).
		Day(2017, 2, d2p1, d2p2).
		Day(2017, 6, d6p1, d6p2).
		Day(2017, 12, d12p1, d12p2)
}
