package y2021

import (
	"slices"

	"github.com/aocstars/aoc"
)

// ones counts the numbers with a 1 at bit position i (from the left).
func ones(nums []string, i int) int {
	n := 0
	for _, s := range nums {
		if s[i] == '1' {
			n++
		}
	}
	return n
}

func d3p1(in string) any {
	nums := aoc.Lines(in)
	width := len(nums[0])
	var gamma, epsilon int64
	for i := 0; i < width; i++ {
		gamma <<= 1
		epsilon <<= 1
		if 2*ones(nums, i) > len(nums) {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}
	return gamma * epsilon
}

// rating filters nums bit by bit, keeping those with the most common bit
// (ties keep 1) or, if !most, the least common one (ties keep 0).
func rating(nums []string, most bool) int64 {
	nums = slices.Clone(nums)
	for i := 0; len(nums) > 1; i++ {
		one := 2*ones(nums, i) >= len(nums)
		keep := byte('0')
		if one == most {
			keep = '1'
		}
		nums = slices.DeleteFunc(nums, func(s string) bool { return s[i] != keep })
	}
	return aoc.ParseBinary(nums[0])
}

func d3p2(in string) any {
	nums := aoc.Lines(in)
	return rating(nums, true) * rating(nums, false)
}
