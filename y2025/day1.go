package y2025

import (
	"fmt"

	"github.com/aocstars/aoc"
)

const dialSize = 100

// rotations parses lines like "L68" into signed click counts, right
// positive.
func rotations(in string) []int {
	var out []int
	for _, l := range aoc.Lines(in) {
		if len(l) < 2 {
			panic(fmt.Sprintf("bad rotation %q", l))
		}
		n := aoc.Int(l[1:])
		switch l[0] {
		case 'R':
			out = append(out, n)
		case 'L':
			out = append(out, -n)
		default:
			panic(fmt.Sprintf("bad direction %q", l))
		}
	}
	return out
}

func mod(a, m int) int {
	return (a%m + m) % m
}

// d1p1 counts the rotations that leave the dial at 0.
func d1p1(in string) any {
	pos, zeros := 50, 0
	for _, r := range rotations(in) {
		pos = mod(pos+r, dialSize)
		if pos == 0 {
			zeros++
		}
	}
	return zeros
}

// d1p2 counts every click that lands on 0, including those mid-rotation.
func d1p2(in string) any {
	pos, zeros := 50, 0
	for _, r := range rotations(in) {
		switch {
		case r >= 0:
			zeros += (pos + r) / dialSize
		case pos == 0:
			zeros += -r / dialSize
		case -r >= pos:
			zeros += 1 + (-r-pos)/dialSize
		}
		pos = mod(pos+r, dialSize)
	}
	return zeros
}
