package y2022

import (
	"fmt"
	"strings"

	"github.com/aocstars/aoc"
)

type move struct {
	n, from, to int
}

// parseCrates reads the drawing of stacks and the rearrangement procedure.
// Stacks are 0-indexed; moves keep the 1-based numbers of the input.
func parseCrates(in string) ([]aoc.Stack[byte], []move) {
	parts := aoc.Paragraphs(in)
	if len(parts) != 2 {
		panic("want a drawing and a procedure")
	}
	drawing := parts[0]
	stacks := make([]aoc.Stack[byte], len(strings.Fields(drawing[len(drawing)-1])))
	for y := len(drawing) - 2; y >= 0; y-- {
		line := drawing[y]
		for i := range stacks {
			if pos := 1 + 4*i; pos < len(line) && line[pos] != ' ' {
				stacks[i].Push(line[pos])
			}
		}
	}
	var moves []move
	for _, l := range parts[1] {
		var m move
		aoc.MustGet(fmt.Sscanf(l, "move %d from %d to %d", &m.n, &m.from, &m.to))
		moves = append(moves, m)
	}
	return stacks, moves
}

func tops(stacks []aoc.Stack[byte]) string {
	var sb strings.Builder
	for _, s := range stacks {
		if c, ok := s.Peek(); ok {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// d5p1 moves crates one at a time.
func d5p1(in string) any {
	stacks, moves := parseCrates(in)
	for _, m := range moves {
		for i := 0; i < m.n; i++ {
			c, ok := stacks[m.from-1].Pop()
			if !ok {
				panic(fmt.Sprintf("stack %d is empty", m.from))
			}
			stacks[m.to-1].Push(c)
		}
	}
	return tops(stacks)
}

// d5p2 moves several crates at once, keeping their order.
func d5p2(in string) any {
	stacks, moves := parseCrates(in)
	for _, m := range moves {
		var lifted aoc.Stack[byte]
		for i := 0; i < m.n; i++ {
			c, ok := stacks[m.from-1].Pop()
			if !ok {
				panic(fmt.Sprintf("stack %d is empty", m.from))
			}
			lifted.Push(c)
		}
		for c, ok := lifted.Pop(); ok; c, ok = lifted.Pop() {
			stacks[m.to-1].Push(c)
		}
	}
	return tops(stacks)
}
