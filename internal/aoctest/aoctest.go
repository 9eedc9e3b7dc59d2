// Package aoctest runs golden samples against the stars a year package
// registers.
package aoctest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aocstars/aoc"
)

// Sample is a known input and answer for one star.
type Sample struct {
	Day   int
	Part  int
	Input string
	Want  string
}

// Run registers a year with register and checks every sample. It fails if a
// registered star of that year has no sample.
func Run(t *testing.T, year int, register func(*aoc.Builder), samples []Sample) {
	t.Helper()
	b := aoc.NewBuilder()
	register(b)
	r, err := b.Build()
	require.NoError(t, err)
	d := aoc.NewDispatcher(r, nil)

	covered := make(map[aoc.ID]bool)
	for _, s := range samples {
		id := aoc.ID{Year: year, Day: s.Day, Part: s.Part}
		covered[id] = true
		t.Run(id.String(), func(t *testing.T) {
			got, err := d.Run(context.Background(), id, s.Input)
			require.NoError(t, err)
			assert.Equal(t, s.Want, got)
		})
	}
	for _, id := range r.List() {
		assert.Equal(t, year, id.Year, "star %v registered by the %d package", id, year)
		assert.True(t, covered[id], "star %v has no sample", id)
	}
}
