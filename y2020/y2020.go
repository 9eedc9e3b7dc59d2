// Package y2020 solves Advent of Code 2020.
package y2020

import "github.com/aocstars/aoc"

// Register adds the 2020 stars to b.
func Register(b *aoc.Builder) {
	b.Day(2020, 1, d1p1, d1p2).
		Day(2020, 2, d2p1, d2p2).
		Day(2020, 3, d3p1, d3p2).
		Day(2020, 11, d11p1, d11p2).
		Day(2020, 13, d13p1, d13p2)
}
