package y2018

import "github.com/aocstars/aoc"

// Changes are separated by newlines or commas.
func d1p1(in string) any {
	return aoc.Sum(aoc.Fields(in, ',')...)
}

// d1p2 returns the first frequency reached twice, repeating the changes as
// often as needed.
func d1p2(in string) any {
	changes := aoc.Fields(in, ',')
	if len(changes) == 0 {
		panic("no changes")
	}
	seen := map[int]bool{0: true}
	freq := 0
	for i := 0; ; i = (i + 1) % len(changes) {
		freq += changes[i]
		if seen[freq] {
			return freq
		}
		seen[freq] = true
	}
}
