package y2023

import (
	"math"
	"strings"

	"github.com/aocstars/aoc"
)

// waysToWin counts the hold times h in [0, t] with h*(t-h) > record. The
// bounds come from the roots of h^2 - t*h + record and are then nudged to
// absorb float error.
func waysToWin(t, record int) int {
	if t*t < 4*record {
		return 0
	}
	beats := func(h int) bool { return h*(t-h) > record }
	hi, lo := aoc.SolveQuad(1, -t, record)
	low, high := int(math.Floor(lo))+1, int(math.Ceil(hi))-1
	for low > 0 && beats(low-1) {
		low--
	}
	for low <= high && !beats(low) {
		low++
	}
	for high < t && beats(high+1) {
		high++
	}
	for high >= low && !beats(high) {
		high--
	}
	return max(0, high-low+1)
}

func races(in string) (times, records []string) {
	lines := aoc.Lines(in)
	if len(lines) != 2 {
		panic("want Time and Distance lines")
	}
	return strings.Fields(aoc.TrimPrefix(lines[0], "Time:")),
		strings.Fields(aoc.TrimPrefix(lines[1], "Distance:"))
}

func d6p1(in string) any {
	times, records := races(in)
	prod := 1
	for i := range times {
		prod *= waysToWin(aoc.Int(times[i]), aoc.Int(records[i]))
	}
	return prod
}

// d6p2 reads each line as one number, ignoring the spaces.
func d6p2(in string) any {
	times, records := races(in)
	return waysToWin(aoc.Int(strings.Join(times, "")), aoc.Int(strings.Join(records, "")))
}
