package y2020

import (
	"fmt"
	"strings"

	"github.com/aocstars/aoc"
)

type policy struct {
	lo, hi   int
	letter   byte
	password string
}

func parsePolicies(in string) []policy {
	var out []policy
	for _, l := range aoc.Lines(in) {
		var p policy
		var letter rune
		aoc.MustGet(fmt.Sscanf(l, "%d-%d %c: %s", &p.lo, &p.hi, &letter, &p.password))
		p.letter = byte(letter)
		out = append(out, p)
	}
	return out
}

func d2p1(in string) any {
	valid := 0
	for _, p := range parsePolicies(in) {
		if n := strings.Count(p.password, string(p.letter)); n >= p.lo && n <= p.hi {
			valid++
		}
	}
	return valid
}

// d2p2 treats lo and hi as 1-based positions of which exactly one must hold
// the letter.
func d2p2(in string) any {
	valid := 0
	for _, p := range parsePolicies(in) {
		at := func(i int) bool {
			return i >= 1 && i <= len(p.password) && p.password[i-1] == p.letter
		}
		if at(p.lo) != at(p.hi) {
			valid++
		}
	}
	return valid
}
