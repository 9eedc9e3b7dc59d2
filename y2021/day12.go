package y2021

import (
	"strings"

	"github.com/aocstars/aoc"
)

func caves(in string) *aoc.Graph[string] {
	g := new(aoc.Graph[string])
	for _, l := range aoc.Lines(in) {
		a, b, ok := strings.Cut(l, "-")
		if !ok {
			panic("bad line: " + l)
		}
		g.AddEdge(a, b, 1)
	}
	return g
}

func small(cave string) bool {
	return strings.ToLower(cave) == cave
}

func d12p1(in string) any {
	return caves(in).NumPathsWithRestriction("start", "end", func(x string, visited map[string]int) bool {
		return !small(x) || visited[x] == 0
	})
}

// d12p2 allows a single small cave, other than start, to be visited twice.
func d12p2(in string) any {
	return caves(in).NumPathsWithRestriction("start", "end", func(x string, visited map[string]int) bool {
		if !small(x) || visited[x] == 0 {
			return true
		}
		if x == "start" {
			return false
		}
		for k, n := range visited {
			if n > 1 && small(k) {
				return false
			}
		}
		return true
	})
}
