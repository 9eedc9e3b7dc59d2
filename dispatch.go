package aoc

import (
	"context"
	"log/slog"
	"time"
)

// Dispatcher runs stars from a Registry.
type Dispatcher struct {
	// Timeout, if positive, bounds each Run.
	Timeout time.Duration

	reg    *Registry
	logger *slog.Logger
}

// NewDispatcher returns a Dispatcher over r. A nil logger discards logs.
func NewDispatcher(r *Registry, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(discardHandler{})
	}
	return &Dispatcher{reg: r, logger: logger}
}

// Registry returns the registry d dispatches to.
func (d *Dispatcher) Registry() *Registry {
	return d.reg
}

// Run solves star id with input. Errors returned by the solver are returned
// unchanged; a panic in the solver is returned as a *SolverError.
//
// If ctx is done or d.Timeout passes before the solver returns, Run returns
// ctx.Err() and the solver is left to finish in the background.
func (d *Dispatcher) Run(ctx context.Context, id ID, input string) (string, error) {
	s, err := d.reg.Lookup(id)
	if err != nil {
		return "", err
	}
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}
	t0 := time.Now()
	var ans string
	if ctx.Done() == nil {
		ans, err = solve(id, s, input)
	} else {
		type result struct {
			ans string
			err error
		}
		done := make(chan result, 1)
		go func() {
			a, err := solve(id, s, input)
			done <- result{a, err}
		}()
		select {
		case r := <-done:
			ans, err = r.ans, r.err
		case <-ctx.Done():
			err = ctx.Err()
		}
	}
	took := time.Since(t0).Round(time.Microsecond)
	if err != nil {
		d.logger.Debug("star failed", "star", id, "took", took, "err", err)
		return "", err
	}
	d.logger.Debug("star solved", "star", id, "took", took)
	return ans, nil
}

func solve(id ID, s Solver, input string) (ans string, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &SolverError{ID: id, Value: v}
		}
	}()
	return s.Solve(input)
}

// Result is the outcome of one star in a batch.
type Result struct {
	ID     ID
	Answer string
	Err    error
	Took   time.Duration
}

// RunAll solves every star in ids concurrently, fetching each input with
// input. Results are returned in the order of ids.
func (d *Dispatcher) RunAll(ctx context.Context, ids []ID, input func(context.Context, ID) (string, error)) []Result {
	return Parallel(ids, func(id ID) Result {
		t0 := time.Now()
		in, err := input(ctx, id)
		if err != nil {
			return Result{ID: id, Err: err}
		}
		ans, err := d.Run(ctx, id, in)
		return Result{
			ID:     id,
			Answer: ans,
			Err:    err,
			Took:   time.Since(t0).Round(time.Microsecond),
		}
	})
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
