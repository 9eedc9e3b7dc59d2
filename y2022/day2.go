package y2022

import "github.com/aocstars/aoc"

// Shapes are 0 rock, 1 paper, 2 scissors; shape s beats shape (s+2)%3.

func score(me, outcome int) int {
	return me + 1 + 3*outcome
}

func rounds(in string) [][2]int {
	var out [][2]int
	for _, l := range aoc.Lines(in) {
		if len(l) < 3 {
			panic("bad round: " + l)
		}
		out = append(out, [2]int{int(l[0] - 'A'), int(l[2] - 'X')})
	}
	return out
}

// d2p1 reads the second column as the shape to play.
func d2p1(in string) any {
	total := 0
	for _, r := range rounds(in) {
		opp, me := r[0], r[1]
		// 0 draw, 1 win, 2 loss
		outcome := [3]int{1, 2, 0}[(me-opp+3)%3]
		total += score(me, outcome)
	}
	return total
}

// d2p2 reads the second column as the outcome: 0 lose, 1 draw, 2 win.
func d2p2(in string) any {
	total := 0
	for _, r := range rounds(in) {
		opp, outcome := r[0], r[1]
		me := (opp + outcome + 2) % 3
		total += score(me, outcome)
	}
	return total
}
