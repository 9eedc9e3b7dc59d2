package aoc

import (
	"reflect"
	"strings"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Pt is a point on an integer grid.
type Pt = Pt2[int]

// Pt2 is a point with X growing right and Y growing down.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// neighbors are the eight offsets around a point in row order.
var neighbors = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// ForNeighbors calls f on the eight neighbors of p, diagonals included,
// until f returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for _, o := range neighbors {
		if !f(Pt2[T]{X: p.X + T(o[0]), Y: p.Y + T(o[1])}) {
			return
		}
	}
}

// ForImmediateNeighbors is like ForNeighbors but skips the diagonals.
func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for d := Up; d <= Left; d++ {
		if !f(p.Step(d)) {
			return
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

// Toward returns p moved at most one unit along each axis toward b.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	return Pt2[T]{X: p.X + sign(b.X-p.X), Y: p.Y + sign(b.Y-p.Y)}
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Step returns p moved one unit in direction d.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	switch d {
	case Up:
		p.Y--
	case Right:
		p.X++
	case Down:
		p.Y++
	case Left:
		p.X--
	}
	return p
}

// Direction is one of the four compass directions, clockwise from Up.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// ParseDirection maps U/R/D/L, N/E/S/W or ^/>/v/< to a Direction.
func ParseDirection(r rune) (Direction, bool) {
	for d, names := range [...]string{Up: "UN^", Right: "RE>", Down: "DSv", Left: "LW<"} {
		if strings.ContainsRune(names, r) {
			return Direction(d), true
		}
	}
	return 0, false
}

// Turn returns the direction after a quarter turn right, or left if right
// is false.
func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

// Opposite returns the direction after a half turn.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	if d < Up || d > Left {
		return ""
	}
	return [...]string{"^", ">", "v", "<"}[d]
}

// Grid is a rectangular grid indexed as g[y][x].
type Grid[T any] [][]T

// At returns the value at p. It panics if p is outside g.
func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// AtOk is like At but reports false for points outside the grid.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// In reports whether p lies inside the grid.
func (g Grid[T]) In(p Pt) bool {
	return len(g) > 0 && p.X >= 0 && p.Y >= 0 && p.X < len(g[0]) && p.Y < len(g)
}

// MakeGrid returns a w by h grid of zero values.
func MakeGrid[T any](w, h int) Grid[T] {
	g := make(Grid[T], h)
	for y := range g {
		g[y] = make([]T, w)
	}
	return g
}

// ParseGrid builds a grid from the lines of in, mapping each byte with f.
func ParseGrid[T any](in string, f func(b byte) T) Grid[T] {
	var g Grid[T]
	for _, l := range Lines(in) {
		row := make([]T, len(l))
		for x := range row {
			row[x] = f(l[x])
		}
		g = append(g, row)
	}
	return g
}

// ParseDigitGrid builds a grid of single digits.
func ParseDigitGrid(in string) Grid[int] {
	return ParseGrid(in, func(b byte) int { return Digit(rune(b)) })
}

// ParseByteGrid builds a grid of the raw bytes of in.
func ParseByteGrid(in string) Grid[byte] {
	return ParseGrid(in, func(b byte) byte { return b })
}

// Size returns the width and height of g as a Pt.
func (g Grid[T]) Size() (size Pt) {
	if len(g) > 0 {
		size = Pt{X: len(g[0]), Y: len(g)}
	}
	return size
}

// All calls f on every point of the grid in row order.
func (g Grid[T]) All(f func(p Pt, v T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{X: x, Y: y}, v)
		}
	}
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

var hashers sync.Map // reflect.Type => func(*Grid[T]) deephash.Sum

// Hash returns a hash of the grid contents.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[Grid[T]]())
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move advances p one step in its direction, reporting false if that
// leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Step(p.Dir)
	if !g.In(p.Pt) {
		return Path{}, false
	}
	return p, true
}

// FloodFill sets every cell orthogonally reachable from start for which
// canFill returns true to fill, and returns how many cells it set.
func FloodFill[T any](grid Grid[T], start Pt, canFill func(T) bool, fill T) int {
	v, ok := grid.AtOk(start)
	if !ok || !canFill(v) {
		return 0
	}
	n := 1
	grid.Set(start, fill)
	q := NewQueue(start)
	q.While(func(p Pt) bool {
		p.ForImmediateNeighbors(func(p2 Pt) bool {
			if v, ok := grid.AtOk(p2); ok && canFill(v) {
				grid.Set(p2, fill)
				n++
				q.Push(p2)
			}
			return true
		})
		return true
	})
	return n
}
