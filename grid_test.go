package aoc

import "testing"

func TestGridHash(t *testing.T) {
	g := ParseByteGrid("ab\ncd\n")
	h := g.Clone()
	if g.Hash() != h.Hash() {
		t.Fatal("equal grids hash differently")
	}
	h.Set(Pt{1, 1}, 'x')
	if g.Hash() == h.Hash() {
		t.Fatal("different grids hash the same")
	}
	if got := g.At(Pt{1, 1}); got != 'd' {
		t.Errorf("Clone shares storage: At = %q", got)
	}
}

func TestGridMove(t *testing.T) {
	g := MakeGrid[int](3, 2)
	if got, want := g.Size(), (Pt{3, 2}); got != want {
		t.Errorf("Size = %v, want %v", got, want)
	}
	p, ok := g.Move(Path{Pt: Pt{0, 0}, Dir: Right})
	if !ok || p.Pt != (Pt{1, 0}) {
		t.Errorf("Move right = %v, %v", p, ok)
	}
	if _, ok := g.Move(Path{Pt: Pt{0, 0}, Dir: Up}); ok {
		t.Error("Move off the grid reported ok")
	}
	if _, ok := g.AtOk(Pt{3, 0}); ok {
		t.Error("AtOk outside the grid reported ok")
	}
}

func TestDirection(t *testing.T) {
	if got := Up.Turn(true); got != Right {
		t.Errorf("Up.Turn(right) = %v", got)
	}
	if got := Up.Turn(false); got != Left {
		t.Errorf("Up.Turn(left) = %v", got)
	}
	if got := Left.Opposite(); got != Right {
		t.Errorf("Left.Opposite() = %v", got)
	}
	p := Pt{0, 0}
	for _, r := range "URDL" {
		d, ok := ParseDirection(r)
		if !ok {
			t.Fatalf("ParseDirection(%q) failed", r)
		}
		p = p.Step(d)
	}
	if p != (Pt{0, 0}) {
		t.Errorf("round trip ended at %v", p)
	}
}

func TestFloodFill(t *testing.T) {
	g := ParseDigitGrid("119\n191\n911\n")
	n := FloodFill(g, Pt{0, 0}, func(v int) bool { return v == 1 }, 0)
	if n != 3 {
		t.Errorf("FloodFill = %v, want 3", n)
	}
	if g.At(Pt{2, 2}) != 1 {
		t.Error("FloodFill crossed a diagonal")
	}
}

func TestToward(t *testing.T) {
	if got := (Pt{0, 0}).Toward(Pt{2, -3}); got != (Pt{1, -1}) {
		t.Errorf("Toward = %v", got)
	}
	if got := (Pt{1, 2}).MDist(Pt{-2, 0}); got != 5 {
		t.Errorf("MDist = %v, want 5", got)
	}
}
