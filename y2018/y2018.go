// Package y2018 solves Advent of Code 2018.
package y2018

import "github.com/aocstars/aoc"

// Register adds the 2018 stars to b.
func Register(b *aoc.Builder) {
	b.Day(2018, 1, d1p1, d1p2).
		Day(2018, 2, d2p1, d2p2).
		Day(2018, 3, d3p1, d3p2)
}
