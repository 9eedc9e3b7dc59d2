package y2020

import "github.com/aocstars/aoc"

const (
	floor    = '.'
	empty    = 'L'
	occupied = '#'
)

// settle applies the seating rules until nothing changes and returns the
// number of occupied seats. occupiedNear counts the occupied seats that
// influence p; a seat is vacated at tolerance or more.
func settle(in string, tolerance int, occupiedNear func(g aoc.Grid[byte], p aoc.Pt) int) int {
	g := aoc.ParseByteGrid(in)
	for {
		next := g.Clone()
		g.All(func(p aoc.Pt, v byte) {
			switch n := occupiedNear(g, p); {
			case v == empty && n == 0:
				next.Set(p, occupied)
			case v == occupied && n >= tolerance:
				next.Set(p, empty)
			}
		})
		if next.Hash() == g.Hash() {
			break
		}
		g = next
	}
	seated := 0
	g.All(func(_ aoc.Pt, v byte) {
		if v == occupied {
			seated++
		}
	})
	return seated
}

func adjacent(g aoc.Grid[byte], p aoc.Pt) int {
	n := 0
	p.ForNeighbors(func(q aoc.Pt) bool {
		if v, ok := g.AtOk(q); ok && v == occupied {
			n++
		}
		return true
	})
	return n
}

// visible counts the directions in which the first seat seen is occupied.
func visible(g aoc.Grid[byte], p aoc.Pt) int {
	n := 0
	(aoc.Pt{}).ForNeighbors(func(d aoc.Pt) bool {
		for q := (aoc.Pt{X: p.X + d.X, Y: p.Y + d.Y}); ; q.X, q.Y = q.X+d.X, q.Y+d.Y {
			v, ok := g.AtOk(q)
			if !ok || v == empty {
				break
			}
			if v == occupied {
				n++
				break
			}
		}
		return true
	})
	return n
}

func d11p1(in string) any {
	return settle(in, 4, adjacent)
}

func d11p2(in string) any {
	return settle(in, 5, visible)
}
