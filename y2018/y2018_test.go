package y2018

import (
	"testing"

	"github.com/aocstars/aoc/internal/aoctest"
)

const claims = `#1 @ 1,3: 4x4
#2 @ 3,1: 4x4
#3 @ 5,5: 2x2
`

func TestSamples(t *testing.T) {
	aoctest.Run(t, 2018, Register, []aoctest.Sample{
		{Day: 1, Part: 1, Input: "+1\n-2\n+3\n+1\n", Want: "3"},
		{Day: 1, Part: 1, Input: "+1, +1, -2", Want: "0"},
		{Day: 1, Part: 1, Input: "-1\n-2\n-3", Want: "-6"},
		{Day: 1, Part: 2, Input: "+1\n-2\n+3\n+1\n", Want: "2"},
		{Day: 1, Part: 2, Input: "+1, -1", Want: "0"},
		{Day: 1, Part: 2, Input: "+3, +3, +4, -2, -4", Want: "10"},
		{Day: 1, Part: 2, Input: "-6, +3, +8, +5, -6", Want: "5"},
		{Day: 1, Part: 2, Input: "+7, +7, -2, -7, -4", Want: "14"},
		{Day: 2, Part: 1, Input: "abcdef\nbababc\nabbcde\nabcccd\naabcdd\nabcdee\nababab\n", Want: "12"},
		{Day: 2, Part: 2, Input: "abcde\nfghij\nklmno\npqrst\nfguij\naxcye\nwvxyz\n", Want: "fgij"},
		{Day: 3, Part: 1, Input: claims, Want: "4"},
		{Day: 3, Part: 2, Input: claims, Want: "3"},
	})
}
