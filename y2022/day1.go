package y2022

import (
	"github.com/aocstars/aoc"
)

// calories returns a queue of the totals carried by each elf, largest on top.
func calories(in string) *aoc.PQ[int] {
	q := aoc.MaxQueue[int]()
	for i, p := range aoc.Paragraphs(in) {
		q.Push(&aoc.PQI[int]{V: i, P: aoc.Sum(aoc.Ints(p...)...)})
	}
	return q
}

func d1p1(in string) any {
	return calories(in).Peek().P
}

func d1p2(in string) any {
	q := calories(in)
	total := 0
	for i := 0; i < 3 && q.Len() > 0; i++ {
		total += q.Pop().P
	}
	return total
}
