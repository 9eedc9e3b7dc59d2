package aoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBadInput = errors.New("bad input")

func testDispatcher(t *testing.T, logger *slog.Logger) *Dispatcher {
	t.Helper()
	b := NewBuilder()
	b.Day(2020, 1, func(in string) any {
		return Sum(Ints(Lines(in)...)...)
	})
	require.NoError(t, b.Register(ID{2020, 2, 1}, SolverFunc(func(string) (string, error) {
		return "", errBadInput
	})))
	b.Day(2020, 3, func(in string) any { return Int(in) })
	b.Day(2020, 4, func(string) any {
		time.Sleep(time.Second)
		return "slow"
	})
	r, err := b.Build()
	require.NoError(t, err)
	return NewDispatcher(r, logger)
}

func TestRun(t *testing.T) {
	d := testDispatcher(t, nil)
	got, err := d.Run(context.Background(), ID{2020, 1, 1}, "1\n2\n3\n")
	require.NoError(t, err)
	assert.Equal(t, "6", got)
}

func TestRunNotFound(t *testing.T) {
	d := testDispatcher(t, nil)
	got, err := d.Run(context.Background(), ID{1999, 1, 1}, "x")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, got)
}

func TestRunSolverErrorUnchanged(t *testing.T) {
	d := testDispatcher(t, nil)
	_, err := d.Run(context.Background(), ID{2020, 2, 1}, "")
	assert.Same(t, errBadInput, err)
}

func TestRunSolverPanic(t *testing.T) {
	d := testDispatcher(t, nil)
	_, err := d.Run(context.Background(), ID{2020, 3, 1}, "not a number")
	require.ErrorIs(t, err, ErrSolver)
	var se *SolverError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, ID{2020, 3, 1}, se.ID)

	// A failed run leaves the registry usable.
	got, err := d.Run(context.Background(), ID{2020, 3, 1}, "12")
	require.NoError(t, err)
	assert.Equal(t, "12", got)
}

func TestRunTimeout(t *testing.T) {
	d := testDispatcher(t, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := d.Run(ctx, ID{2020, 4, 1}, "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunDispatcherTimeout(t *testing.T) {
	d := testDispatcher(t, nil)
	d.Timeout = 10 * time.Millisecond
	_, err := d.Run(context.Background(), ID{2020, 4, 1}, "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	got, err := d.Run(context.Background(), ID{2020, 3, 1}, "5")
	require.NoError(t, err)
	assert.Equal(t, "5", got)
}

func TestRunLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := testDispatcher(t, logger)
	_, err := d.Run(context.Background(), ID{2020, 1, 1}, "1")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "star=2020-01-1")
}

func TestRunAll(t *testing.T) {
	d := testDispatcher(t, nil)
	ids := []ID{{2020, 1, 1}, {2020, 2, 1}, {2020, 3, 1}, {1999, 1, 1}, {2020, 5, 1}}
	inputs := map[int]string{1: "4\n5", 2: "", 3: "7", 1999: ""}
	results := d.RunAll(context.Background(), ids, func(_ context.Context, id ID) (string, error) {
		if id.Year == 1999 {
			return "", nil
		}
		in, ok := inputs[id.Day]
		if !ok {
			return "", fmt.Errorf("%w: day %d", ErrNoInput, id.Day)
		}
		return in, nil
	})
	require.Len(t, results, len(ids))
	for i, res := range results {
		assert.Equal(t, ids[i], res.ID)
	}
	assert.Equal(t, "9", results[0].Answer)
	assert.ErrorIs(t, results[1].Err, errBadInput)
	assert.Equal(t, "7", results[2].Answer)
	assert.ErrorIs(t, results[3].Err, ErrNotFound)
	assert.ErrorIs(t, results[4].Err, ErrNoInput)
	assert.True(t, strings.HasPrefix(results[4].Err.Error(), "no input"))
}
