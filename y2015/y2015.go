// Package y2015 solves Advent of Code 2015.
package y2015

import "github.com/aocstars/aoc"

// Register adds the 2015 stars to b.
func Register(b *aoc.Builder) {
	b.Day(2015, 1, d1p1, d1p2)
}
