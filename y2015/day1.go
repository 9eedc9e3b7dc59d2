package y2015

import "strings"

// d1p1 returns the floor Santa ends up on.
func d1p1(in string) any {
	return strings.Count(in, "(") - strings.Count(in, ")")
}

// d1p2 returns the 1-based position of the first step into the basement.
func d1p2(in string) any {
	floor := 0
	for i, c := range in {
		switch c {
		case '(':
			floor++
		case ')':
			floor--
		}
		if floor < 0 {
			return i + 1
		}
	}
	panic("never enters the basement")
}
