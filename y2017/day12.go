package y2017

import (
	"strings"

	"github.com/aocstars/aoc"
)

func pipes(in string) *aoc.Graph[int] {
	g := new(aoc.Graph[int])
	for _, l := range aoc.Lines(in) {
		from, to, ok := strings.Cut(l, "<->")
		if !ok {
			panic("bad line: " + l)
		}
		a := aoc.Int(from)
		g.AddNode(a)
		for _, b := range aoc.Fields(to, ',') {
			g.AddEdge(a, b, 1)
		}
	}
	return g
}

// d12p1 returns the size of the group containing program 0.
func d12p1(in string) any {
	return len(pipes(in).ReachableNodes(0))
}

// d12p2 returns the number of groups.
func d12p2(in string) any {
	g := pipes(in)
	groups := 0
	done := map[int]bool{}
	for n := range g.Nodes {
		if done[n] {
			continue
		}
		groups++
		for m := range g.ReachableNodes(n) {
			done[m] = true
		}
	}
	return groups
}
