package y2023

import (
	"slices"

	"github.com/aocstars/aoc"
)

// pipes maps each pipe to the two directions it connects.
var pipes = map[byte][2]aoc.Direction{
	'|': {aoc.Up, aoc.Down},
	'-': {aoc.Left, aoc.Right},
	'L': {aoc.Up, aoc.Right},
	'J': {aoc.Up, aoc.Left},
	'7': {aoc.Down, aoc.Left},
	'F': {aoc.Right, aoc.Down},
}

func connects(c byte, d aoc.Direction) bool {
	p, ok := pipes[c]
	return ok && (p[0] == d || p[1] == d)
}

// loop returns the points of the loop through S in walking order, closed by
// repeating S at the end.
func loop(in string) []aoc.Pt {
	g := aoc.ParseByteGrid(in)
	var start aoc.Pt
	found := false
	g.All(func(p aoc.Pt, v byte) {
		if v == 'S' {
			start, found = p, true
		}
	})
	if !found {
		panic("no start tile")
	}

	var dirs []aoc.Direction
	for d := aoc.Up; d <= aoc.Left; d++ {
		if v, ok := g.AtOk(start.Step(d)); ok && connects(v, d.Opposite()) {
			dirs = append(dirs, d)
		}
	}
	if len(dirs) != 2 {
		panic("start tile does not join exactly two pipes")
	}

	pts := []aoc.Pt{start}
	p, d := start, dirs[0]
	for {
		p = p.Step(d)
		pts = append(pts, p)
		if p == start {
			return pts
		}
		pipe, ok := pipes[g.At(p)]
		if !ok || !slices.Contains(pipe[:], d.Opposite()) {
			panic("loop is broken")
		}
		if pipe[0] == d.Opposite() {
			d = pipe[1]
		} else {
			d = pipe[0]
		}
	}
}

// d10p1 returns the distance to the point of the loop farthest from S.
func d10p1(in string) any {
	return (len(loop(in)) - 1) / 2
}

// d10p2 returns the number of tiles enclosed by the loop.
func d10p2(in string) any {
	return aoc.PolygonInteriorPoints(loop(in))
}
