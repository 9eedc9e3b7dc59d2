// Package y2025 solves Advent of Code 2025.
package y2025

import "github.com/aocstars/aoc"

// Register adds the 2025 stars to b.
func Register(b *aoc.Builder) {
	b.Day(2025, 1, d1p1, d1p2)
}
