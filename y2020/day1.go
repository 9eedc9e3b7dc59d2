package y2020

import "github.com/aocstars/aoc"

const target = 2020

// d1p1 returns the product of the two entries that sum to 2020.
func d1p1(in string) any {
	nums := aoc.Ints(aoc.Lines(in)...)
	for i, a := range nums {
		for _, b := range nums[i+1:] {
			if a+b == target {
				return a * b
			}
		}
	}
	panic("no pair sums to 2020")
}

// d1p2 returns the product of the three entries that sum to 2020.
func d1p2(in string) any {
	nums := aoc.Ints(aoc.Lines(in)...)
	for i, a := range nums {
		for j := i + 1; j < len(nums); j++ {
			b := nums[j]
			if a+b >= target {
				continue
			}
			for _, c := range nums[j+1:] {
				if a+b+c == target {
					return a * b * c
				}
			}
		}
	}
	panic("no triple sums to 2020")
}
