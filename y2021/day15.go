package y2021

import "github.com/aocstars/aoc"

// lowestRisk returns the lowest total risk from the top left to the bottom
// right of g, not counting the starting cell.
func lowestRisk(g aoc.Grid[int]) int {
	size := g.Size()
	end := aoc.Pt{X: size.X - 1, Y: size.Y - 1}
	pq := aoc.MinQueue[aoc.Pt]()
	queued := map[aoc.Pt]*aoc.PQI[aoc.Pt]{{}: {}}
	pq.Push(queued[aoc.Pt{}])
	done := make(map[aoc.Pt]bool)
	for pq.Len() > 0 {
		it := pq.Pop()
		if it.V == end {
			return it.P
		}
		done[it.V] = true
		it.V.ForImmediateNeighbors(func(n aoc.Pt) bool {
			r, ok := g.AtOk(n)
			if !ok || done[n] {
				return true
			}
			d := it.P + r
			switch q, ok := queued[n]; {
			case !ok:
				queued[n] = &aoc.PQI[aoc.Pt]{V: n, P: d}
				pq.Push(queued[n])
			case d < q.P:
				q.P = d
				pq.Update(q)
			}
			return true
		})
	}
	panic("no path")
}

func d15p1(in string) any {
	return lowestRisk(aoc.ParseDigitGrid(in))
}

// d15p2 tiles the map 5x5, adding one to every risk per tile step and
// wrapping 9 back to 1.
func d15p2(in string) any {
	tile := aoc.ParseDigitGrid(in)
	ts := tile.Size()
	g := aoc.MakeGrid[int](ts.X*5, ts.Y*5)
	g.All(func(p aoc.Pt, _ int) {
		r := tile[p.Y%ts.Y][p.X%ts.X] + p.X/ts.X + p.Y/ts.Y
		g.Set(p, (r-1)%9+1)
	})
	return lowestRisk(g)
}
