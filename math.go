package aoc

import (
	"log"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Digit returns the value of the decimal digit r. It panics if r is not a
// digit.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		log.Panicf("not a digit: %q", r)
	}
	return int(r - '0')
}

// Digits returns the value of each digit in line.
func Digits(line string) []int {
	out := make([]int, 0, len(line))
	for _, r := range line {
		out = append(out, Digit(r))
	}
	return out
}

// ParseBinary parses a binary string, with or without a 0b prefix.
func ParseBinary(in string) int64 {
	return MustGet(strconv.ParseInt(strings.TrimPrefix(in, "0b"), 2, 64))
}

// Sum returns the sum of nums.
func Sum[T Number](nums ...T) (sum T) {
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns |x - y|.
func AbsDiff[T Number](x, y T) T {
	if x < y {
		return y - x
	}
	return x - y
}

// GCD returns the greatest common divisor of a and b, never negative.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of nums. It panics if nums is empty.
func LCM(nums ...int) int {
	if len(nums) == 0 {
		panic("LCM of nothing")
	}
	l := nums[0]
	for _, n := range nums[1:] {
		l = l / GCD(l, n) * n
	}
	return l
}

// SolveQuad returns the two real roots of ax^2 + bx + c = 0, larger first
// when a is positive. It panics if there are none.
func SolveQuad[T Number](a, b, c T) (float64, float64) {
	disc := float64(b)*float64(b) - 4*float64(a)*float64(c)
	if disc < 0 {
		log.Panicf("no real roots for %vx^2%+vx%+v", a, b, c)
	}
	sq := math.Sqrt(disc)
	den := 2 * float64(a)
	return (-float64(b) + sq) / den, (-float64(b) - sq) / den
}

// Extrapolate returns the next value of the polynomial sequence x, or the
// one before it if forward is false.
func Extrapolate[T Number](x []T, forward bool) T {
	// Build successive difference rows until one is constant, then fold
	// the edge values back up.
	var edges []T
	row := x
	for {
		if forward {
			edges = append(edges, row[len(row)-1])
		} else {
			edges = append(edges, row[0])
		}
		next := make([]T, len(row)-1)
		constant := true
		for i := range next {
			next[i] = row[i+1] - row[i]
			if next[i] != next[0] {
				constant = false
			}
		}
		if len(next) == 0 || constant && next[0] == 0 {
			break
		}
		row = next
	}
	var y T
	for i := len(edges) - 1; i >= 0; i-- {
		if forward {
			y = edges[i] + y
		} else {
			y = edges[i] - y
		}
	}
	return y
}

// PolygonArea returns the area of the closed polygon pts, whose last point
// must equal its first. It uses the shoelace formula.
func PolygonArea(pts []Pt) int {
	twice := 0
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		twice += a.X*b.Y - a.Y*b.X
	}
	return AbsDiff(twice, 0) / 2
}

// PolygonPerimeter returns the perimeter of the closed polygon pts.
func PolygonPerimeter(pts []Pt) int {
	p := 0
	for i := 1; i < len(pts); i++ {
		p += pts[i-1].MDist(pts[i])
	}
	return p
}

// PolygonInteriorPoints returns the number of integer points strictly inside
// the closed polygon pts.
func PolygonInteriorPoints(pts []Pt) int {
	// Pick's theorem: A = i + b/2 - 1.
	return PolygonArea(pts) - PolygonPerimeter(pts)/2 + 1
}
