package y2020

import (
	"strings"

	"github.com/aocstars/aoc"
)

type bus struct {
	id, offset int
}

func parseBuses(line string) []bus {
	var out []bus
	for i, f := range strings.Split(line, ",") {
		if f == "x" {
			continue
		}
		out = append(out, bus{id: aoc.Int(f), offset: i})
	}
	return out
}

// d13p1 returns the earliest bus id multiplied by the wait for it.
func d13p1(in string) any {
	lines := aoc.Lines(in)
	depart := aoc.Int(lines[0])
	best, wait := 0, -1
	for _, b := range parseBuses(lines[1]) {
		w := (b.id - depart%b.id) % b.id
		if wait == -1 || w < wait {
			best, wait = b.id, w
		}
	}
	return best * wait
}

// d13p2 returns the earliest time at which every bus departs at its offset.
func d13p2(in string) any {
	t, step := 0, 1
	for _, b := range parseBuses(aoc.Lines(in)[1]) {
		for (t+b.offset)%b.id != 0 {
			t += step
		}
		step = aoc.LCM(step, b.id)
	}
	return t
}
