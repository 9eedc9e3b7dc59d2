// Package y2016 solves Advent of Code 2016.
package y2016

import "github.com/aocstars/aoc"

// Register adds the 2016 stars to b.
func Register(b *aoc.Builder) {
	b.Day(2016, 1, d1p1, d1p2)
}
