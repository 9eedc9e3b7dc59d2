package y2022

import "github.com/aocstars/aoc"

type heightmap struct {
	g          aoc.Grid[byte]
	start, end aoc.Pt
}

func parseHeightmap(in string) heightmap {
	h := heightmap{g: aoc.ParseByteGrid(in)}
	h.g.All(func(p aoc.Pt, v byte) {
		switch v {
		case 'S':
			h.start = p
			h.g.Set(p, 'a')
		case 'E':
			h.end = p
			h.g.Set(p, 'z')
		}
	})
	return h
}

// climb returns the fewest steps from start to a point where done holds,
// moving only where canStep allows.
func (h heightmap) climb(start aoc.Pt, canStep func(from, to byte) bool, done func(aoc.Pt) bool) int {
	dist := map[aoc.Pt]int{start: 0}
	q := aoc.NewQueue(start)
	for p, ok := q.Pop(); ok; p, ok = q.Pop() {
		if done(p) {
			return dist[p]
		}
		p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if _, seen := dist[n]; seen {
				return true
			}
			if v, ok := h.g.AtOk(n); ok && canStep(h.g.At(p), v) {
				dist[n] = dist[p] + 1
				q.Push(n)
			}
			return true
		})
	}
	panic("no path")
}

func d12p1(in string) any {
	h := parseHeightmap(in)
	return h.climb(h.start,
		func(from, to byte) bool { return to <= from+1 },
		func(p aoc.Pt) bool { return p == h.end })
}

// d12p2 searches backwards from the end for the closest lowest square.
func d12p2(in string) any {
	h := parseHeightmap(in)
	return h.climb(h.end,
		func(from, to byte) bool { return from <= to+1 },
		func(p aoc.Pt) bool { return h.g.At(p) == 'a' })
}
