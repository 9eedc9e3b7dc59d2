// Package y2023 solves Advent of Code 2023.
package y2023

import "github.com/aocstars/aoc"

// Register adds the 2023 stars to b.
func Register(b *aoc.Builder) {
	b.Day(2023, 1, d1p1, d1p2).
		Day(2023, 6, d6p1, d6p2).
		Day(2023, 9, d9p1, d9p2).
		Day(2023, 10, d10p1, d10p2)
}
