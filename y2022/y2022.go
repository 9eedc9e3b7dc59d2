// Package y2022 solves Advent of Code 2022.
package y2022

import "github.com/aocstars/aoc"

// Register adds the 2022 stars to b.
func Register(b *aoc.Builder) {
	b.Day(2022, 1, d1p1, d1p2).
		Day(2022, 2, d2p1, d2p2).
		Day(2022, 3, d3p1, d3p2).
		Day(2022, 4, d4p1, d4p2).
		Day(2022, 5, d5p1, d5p2).
		Day(2022, 6, d6p1, d6p2).
		Day(2022, 8, d8p1, d8p2).
		Day(2022, 9, d9p1, d9p2).
		Day(2022, 12, d12p1, d12p2)
}
