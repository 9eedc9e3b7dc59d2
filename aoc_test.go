package aoc

import (
	"reflect"
	"testing"
)

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		pts      []Pt
		want     int
		interior int
	}{
		{
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 5, Y: 0},
				{X: 5, Y: 5},
				{X: 0, Y: 5},
				{X: 0, Y: 0},
			},
			want:     25,
			interior: 16,
		},
		{
			pts: []Pt{
				{X: 1, Y: 1},
				{X: 3, Y: 1},
				{X: 3, Y: 3},
				{X: 1, Y: 3},
				{X: 1, Y: 1},
			},
			want:     4,
			interior: 1,
		},
	}

	for _, tt := range tests {
		if got := PolygonArea(tt.pts); got != tt.want {
			t.Errorf("PolygonArea(%v) = %v, want %v", tt.pts, got, tt.want)
		}
		if got := PolygonInteriorPoints(tt.pts); got != tt.interior {
			t.Errorf("PolygonInteriorPoints(%v) = %v, want %v", tt.pts, got, tt.interior)
		}
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", nil},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"  x\n\ny", []string{"  x", "", "y"}},
	}
	for _, tt := range tests {
		if got := Lines(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParagraphs(t *testing.T) {
	got := Paragraphs("1\n2\n\n3\n\n\n4\n")
	want := [][]string{{"1", "2"}, {"3"}, {"4"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Paragraphs = %q, want %q", got, want)
	}
}

func TestFields(t *testing.T) {
	if got, want := Fields("16,1, 2\t0", ','), []int{16, 1, 2, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("Fields = %v, want %v", got, want)
	}
}

func TestMath(t *testing.T) {
	if got := LCM(4, 6, 10); got != 60 {
		t.Errorf("LCM(4, 6, 10) = %v, want 60", got)
	}
	if got := GCD(-12, 18); got != 6 {
		t.Errorf("GCD(-12, 18) = %v, want 6", got)
	}
	if got := ParseBinary("0b10110"); got != 22 {
		t.Errorf("ParseBinary = %v, want 22", got)
	}
	if got := Extrapolate([]int{1, 3, 6, 10, 15, 21}, true); got != 28 {
		t.Errorf("Extrapolate forward = %v, want 28", got)
	}
	if got := Extrapolate([]int{10, 13, 16, 21, 30, 45}, false); got != 5 {
		t.Errorf("Extrapolate backward = %v, want 5", got)
	}
	a, b := SolveQuad(1, -7, 10)
	if a != 5 || b != 2 {
		t.Errorf("SolveQuad(1, -7, 10) = %v, %v, want 5, 2", a, b)
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "b", "c"); got != "b" {
		t.Errorf("Or = %q, want b", got)
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or = %v, want 0", got)
	}
}

func TestParallel(t *testing.T) {
	got := Parallel([]int{1, 2, 3, 4}, func(i int) int { return i * i })
	if want := []int{1, 4, 9, 16}; !reflect.DeepEqual(got, want) {
		t.Errorf("Parallel = %v, want %v", got, want)
	}
}

func TestMustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Int(\"x\") did not panic")
		}
	}()
	Int("x")
}
