package y2022

import (
	"strings"

	"github.com/aocstars/aoc"
)

func priority(c byte) int {
	if c >= 'a' && c <= 'z' {
		return int(c-'a') + 1
	}
	return int(c-'A') + 27
}

// common returns the item present in every one of the sacks.
func common(sacks ...string) byte {
	for i := 0; i < len(sacks[0]); i++ {
		c := sacks[0][i]
		all := true
		for _, s := range sacks[1:] {
			if !strings.ContainsRune(s, rune(c)) {
				all = false
				break
			}
		}
		if all {
			return c
		}
	}
	panic("no common item in " + strings.Join(sacks, " "))
}

func d3p1(in string) any {
	sum := 0
	for _, l := range aoc.Lines(in) {
		half := len(l) / 2
		sum += priority(common(l[:half], l[half:]))
	}
	return sum
}

func d3p2(in string) any {
	lines := aoc.Lines(in)
	sum := 0
	for i := 0; i+3 <= len(lines); i += 3 {
		sum += priority(common(lines[i : i+3]...))
	}
	return sum
}
