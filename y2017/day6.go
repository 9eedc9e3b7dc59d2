package y2017

import (
	"slices"

	"github.com/aocstars/aoc"
	"tailscale.com/util/deephash"
)

// reallocate redistributes memory banks until a configuration repeats. It
// returns the number of cycles run and the length of the loop.
func reallocate(in string) (cycles, loop int) {
	banks := aoc.Fields(in)
	seen := map[deephash.Sum]int{}
	for {
		h := deephash.Hash(&banks)
		if at, ok := seen[h]; ok {
			return cycles, cycles - at
		}
		seen[h] = cycles

		i := slices.Index(banks, slices.Max(banks))
		blocks := banks[i]
		banks[i] = 0
		for ; blocks > 0; blocks-- {
			i = (i + 1) % len(banks)
			banks[i]++
		}
		cycles++
	}
}

func d6p1(in string) any {
	cycles, _ := reallocate(in)
	return cycles
}

func d6p2(in string) any {
	_, loop := reallocate(in)
	return loop
}
