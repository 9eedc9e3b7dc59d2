package y2022

import (
	"testing"

	"github.com/aocstars/aoc/internal/aoctest"
)

const calorieSample = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

const rucksackSample = `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
`

const sectionSample = `2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
`

const crateSample = `    [D]    
[N] [C]    
[Z] [M] [P]
 1   2   3 

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
`

const treeSample = `30373
25512
65332
33549
35390
`

const motionSample = `R 4
U 4
L 3
D 1
R 4
D 1
L 5
R 2
`

const largerMotionSample = `R 5
U 8
L 8
D 3
R 17
D 10
L 25
U 20
`

const heightSample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

func TestSamples(t *testing.T) {
	aoctest.Run(t, 2022, Register, []aoctest.Sample{
		{Day: 1, Part: 1, Input: calorieSample, Want: "24000"},
		{Day: 1, Part: 2, Input: calorieSample, Want: "45000"},
		{Day: 2, Part: 1, Input: "A Y\nB X\nC Z\n", Want: "15"},
		{Day: 2, Part: 2, Input: "A Y\nB X\nC Z\n", Want: "12"},
		{Day: 3, Part: 1, Input: rucksackSample, Want: "157"},
		{Day: 3, Part: 2, Input: rucksackSample, Want: "70"},
		{Day: 4, Part: 1, Input: sectionSample, Want: "2"},
		{Day: 4, Part: 2, Input: sectionSample, Want: "4"},
		{Day: 5, Part: 1, Input: crateSample, Want: "CMZ"},
		{Day: 5, Part: 2, Input: crateSample, Want: "MCD"},
		{Day: 6, Part: 1, Input: "mjqjpqmgbljsphdztnvjfqwrcgsmlb", Want: "7"},
		{Day: 6, Part: 1, Input: "bvwbjplbgvbhsrlpgdmjqwftvncz\n", Want: "5"},
		{Day: 6, Part: 1, Input: "nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", Want: "10"},
		{Day: 6, Part: 2, Input: "mjqjpqmgbljsphdztnvjfqwrcgsmlb", Want: "19"},
		{Day: 6, Part: 2, Input: "zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", Want: "26"},
		{Day: 8, Part: 1, Input: treeSample, Want: "21"},
		{Day: 8, Part: 2, Input: treeSample, Want: "8"},
		{Day: 9, Part: 1, Input: motionSample, Want: "13"},
		{Day: 9, Part: 2, Input: motionSample, Want: "1"},
		{Day: 9, Part: 2, Input: largerMotionSample, Want: "36"},
		{Day: 12, Part: 1, Input: heightSample, Want: "31"},
		{Day: 12, Part: 2, Input: heightSample, Want: "29"},
	})
}
