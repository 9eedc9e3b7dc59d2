// Package y2021 solves Advent of Code 2021.
package y2021

import "github.com/aocstars/aoc"

// Register adds the 2021 stars to b.
func Register(b *aoc.Builder) {
	b.Day(2021, 1, d1p1, d1p2).
		Day(2021, 3, d3p1, d3p2).
		Day(2021, 7, d7p1, d7p2).
		Day(2021, 9, d9p1, d9p2).
		Day(2021, 10, d10p1, d10p2).
		Day(2021, 11, d11p1, d11p2).
		Day(2021, 12, d12p1, d12p2).
		Day(2021, 15, d15p1, d15p2)
}
