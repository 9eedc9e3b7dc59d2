package y2021

import (
	"slices"

	"github.com/aocstars/aoc"
)

var closer = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}

// check returns the first illegal closing character of line, or the closers
// needed to complete it, innermost first.
func check(line string) (illegal rune, missing []rune) {
	var open aoc.Stack[rune]
	for _, c := range line {
		if _, ok := closer[c]; ok {
			open.Push(c)
			continue
		}
		o, ok := open.Pop()
		if !ok || closer[o] != c {
			return c, nil
		}
	}
	for o, ok := open.Pop(); ok; o, ok = open.Pop() {
		missing = append(missing, closer[o])
	}
	return 0, missing
}

func d10p1(in string) any {
	points := map[rune]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	score := 0
	for _, l := range aoc.Lines(in) {
		if c, _ := check(l); c != 0 {
			score += points[c]
		}
	}
	return score
}

func d10p2(in string) any {
	points := map[rune]int{')': 1, ']': 2, '}': 3, '>': 4}
	var scores []int
	for _, l := range aoc.Lines(in) {
		c, missing := check(l)
		if c != 0 || len(missing) == 0 {
			continue
		}
		s := 0
		for _, m := range missing {
			s = s*5 + points[m]
		}
		scores = append(scores, s)
	}
	slices.Sort(scores)
	return scores[len(scores)/2]
}
