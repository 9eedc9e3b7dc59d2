package aoc

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// FirstYear is the first year Advent of Code ran.
const FirstYear = 2015

// ID identifies a single star: one part of one day of one year.
type ID struct {
	Year int
	Day  int
	Part int
}

// String returns the canonical form, e.g. "2020-01-1".
func (id ID) String() string {
	return fmt.Sprintf("%04d-%02d-%d", id.Year, id.Day, id.Part)
}

// Valid reports whether id names a star that can exist.
func (id ID) Valid() bool {
	return id.Year >= FirstYear && id.Day >= 1 && id.Day <= 25 && (id.Part == 1 || id.Part == 2)
}

// Compare orders ids by year, then day, then part.
func (id ID) Compare(o ID) int {
	if c := cmp.Compare(id.Year, o.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(id.Day, o.Day); c != 0 {
		return c
	}
	return cmp.Compare(id.Part, o.Part)
}

// ParseID parses "year-day-part". Day may or may not be zero padded.
func ParseID(s string) (ID, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return ID{}, fmt.Errorf("%w: %q: want year-day-part", ErrInvalidID, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return ID{}, fmt.Errorf("%w: %q: %v", ErrInvalidID, s, err)
		}
		nums[i] = n
	}
	id := ID{Year: nums[0], Day: nums[1], Part: nums[2]}
	if !id.Valid() {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}
