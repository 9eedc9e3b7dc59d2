package y2022

import "strings"

// marker returns the number of characters read when the last n were all
// different.
func marker(in string, n int) int {
	in = strings.TrimSpace(in)
	var seen [256]int // last index+1 of each byte
	start := 0        // start of the current run of distinct bytes
	for i := 0; i < len(in); i++ {
		c := in[i]
		if seen[c] > start {
			start = seen[c]
		}
		seen[c] = i + 1
		if i+1-start == n {
			return i + 1
		}
	}
	panic("no marker found")
}

func d6p1(in string) any { return marker(in, 4) }

func d6p2(in string) any { return marker(in, 14) }
