package y2017

import (
	"strings"

	"github.com/aocstars/aoc"
)

// captcha sums the digits that match the digit off places ahead, wrapping
// around.
func captcha(in string, off func(n int) int) int {
	d := aoc.Digits(strings.TrimSpace(in))
	n := len(d)
	sum := 0
	for i, v := range d {
		if v == d[(i+off(n))%n] {
			sum += v
		}
	}
	return sum
}

func d1p1(in string) any {
	return captcha(in, func(int) int { return 1 })
}

func d1p2(in string) any {
	return captcha(in, func(n int) int { return n / 2 })
}
