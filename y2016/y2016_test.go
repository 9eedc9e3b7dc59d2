package y2016

import (
	"testing"

	"github.com/aocstars/aoc/internal/aoctest"
)

func TestSamples(t *testing.T) {
	aoctest.Run(t, 2016, Register, []aoctest.Sample{
		{Day: 1, Part: 1, Input: "R2, L3", Want: "5"},
		{Day: 1, Part: 1, Input: "R2, R2, R2", Want: "2"},
		{Day: 1, Part: 1, Input: "R5, L5, R5, R3\n", Want: "12"},
		{Day: 1, Part: 2, Input: "R8, R4, R4, R8", Want: "4"},
	})
}
