package y2023

import (
	"strings"

	"github.com/aocstars/aoc"
)

var digitWords = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i], if any. Spelled out digits
// count only when words is set.
func digitAt(s string, i int, words bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if words {
		for n, w := range digitWords {
			if strings.HasPrefix(s[i:], w) {
				return n + 1, true
			}
		}
	}
	return 0, false
}

// calibrate sums the two-digit numbers made of the first and last digit of
// every line. Words may overlap, as in "eightwo".
func calibrate(in string, words bool) int {
	sum := 0
	for _, l := range aoc.Lines(in) {
		first, last := -1, -1
		for i := range l {
			if d, ok := digitAt(l, i, words); ok {
				if first == -1 {
					first = d
				}
				last = d
			}
		}
		if first == -1 {
			panic("no digit in " + l)
		}
		sum += 10*first + last
	}
	return sum
}

func d1p1(in string) any { return calibrate(in, false) }

func d1p2(in string) any { return calibrate(in, true) }
