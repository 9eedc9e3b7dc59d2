package y2016

import (
	"strings"

	"github.com/aocstars/aoc"
)

// walk follows the instructions from the origin facing north, calling visit
// for every block passed. It stops early if visit returns false.
func walk(in string, visit func(aoc.Pt) bool) aoc.Pt {
	var p aoc.Pt
	d := aoc.Up
	for _, ins := range strings.Split(strings.TrimSpace(in), ",") {
		ins = strings.TrimSpace(ins)
		switch ins[0] {
		case 'R':
			d = d.Turn(true)
		case 'L':
			d = d.Turn(false)
		default:
			panic("bad instruction: " + ins)
		}
		for n := aoc.Int(ins[1:]); n > 0; n-- {
			p = p.Step(d)
			if !visit(p) {
				return p
			}
		}
	}
	return p
}

func d1p1(in string) any {
	return walk(in, func(aoc.Pt) bool { return true }).MDist(aoc.Pt{})
}

// d1p2 returns the distance to the first block visited twice.
func d1p2(in string) any {
	seen := map[aoc.Pt]bool{{}: true}
	var twice bool
	p := walk(in, func(p aoc.Pt) bool {
		if seen[p] {
			twice = true
			return false
		}
		seen[p] = true
		return true
	})
	if !twice {
		panic("no block visited twice")
	}
	return p.MDist(aoc.Pt{})
}
