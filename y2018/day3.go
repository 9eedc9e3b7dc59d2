package y2018

import (
	"fmt"

	"github.com/aocstars/aoc"
)

type claim struct {
	id   int
	pos  aoc.Pt
	w, h int
}

func parseClaims(in string) []claim {
	var out []claim
	for _, l := range aoc.Lines(in) {
		var c claim
		aoc.MustGet(fmt.Sscanf(l, "#%d @ %d,%d: %dx%d", &c.id, &c.pos.X, &c.pos.Y, &c.w, &c.h))
		out = append(out, c)
	}
	return out
}

func (c claim) forEach(f func(aoc.Pt)) {
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			f(aoc.Pt{X: c.pos.X + x, Y: c.pos.Y + y})
		}
	}
}

// fabric returns how many claims cover each square inch.
func fabric(claims []claim) map[aoc.Pt]int {
	m := make(map[aoc.Pt]int)
	for _, c := range claims {
		c.forEach(func(p aoc.Pt) { m[p]++ })
	}
	return m
}

func d3p1(in string) any {
	n := 0
	for _, v := range fabric(parseClaims(in)) {
		if v > 1 {
			n++
		}
	}
	return n
}

// d3p2 returns the id of the one claim that overlaps no other.
func d3p2(in string) any {
	claims := parseClaims(in)
	m := fabric(claims)
	for _, c := range claims {
		alone := true
		c.forEach(func(p aoc.Pt) { alone = alone && m[p] == 1 })
		if alone {
			return c.id
		}
	}
	panic("every claim overlaps")
}
