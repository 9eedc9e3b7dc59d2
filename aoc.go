// Package aoc holds the star registry and dispatcher for Advent of Code
// solutions, along with the quick & dirty helpers the solutions share.
//
// Solutions live in per-year packages (y2015, y2020, ...) which register
// themselves into a Builder. The resulting Registry is read-only and is
// handed to a Dispatcher, which runs a single star or a batch of them.
package aoc

import (
	"log"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Int returns the int value of the string, ignoring surrounding whitespace.
// It panics if s is not an integer.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = Int(v)
	}
	return out
}

// Fields returns the ints in s separated by whitespace or any of seps.
func Fields(s string, seps ...rune) []int {
	return Ints(strings.FieldsFunc(s, func(r rune) bool {
		if unicode.IsSpace(r) {
			return true
		}
		for _, sep := range seps {
			if r == sep {
				return true
			}
		}
		return false
	})...)
}

// Lines splits the input into lines. Trailing newlines are dropped but
// leading whitespace on each line is kept.
func Lines(in string) []string {
	in = strings.TrimRight(in, "\r\n")
	if in == "" {
		return nil
	}
	lines := strings.Split(in, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Paragraphs splits the input into blocks separated by blank lines.
func Paragraphs(in string) [][]string {
	var out [][]string
	var cur []string
	for _, l := range Lines(in) {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// TrimPrefix is like strings.TrimPrefix but panics if s does not start with
// prefix.
func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		log.Panicf("bad prefix: %q", s)
	}
	return s1
}

// Or returns the first non-zero value in list.
func Or[T comparable](list ...T) (v T) {
	var zero T
	for _, v = range list {
		if v != zero {
			return v
		}
	}
	return zero
}

// Parallel calls f on every element of in concurrently and returns the
// results in the same order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	out := make([]O, len(in))
	var wg sync.WaitGroup
	for i, v := range in {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out[i] = f(v)
		}()
	}
	wg.Wait()
	return out
}
