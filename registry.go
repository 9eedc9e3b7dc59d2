package aoc

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Solver computes the answer of one star from its input.
type Solver interface {
	Solve(input string) (string, error)
}

// SolverFunc adapts a function to a Solver.
type SolverFunc func(input string) (string, error)

func (f SolverFunc) Solve(input string) (string, error) { return f(input) }

// Answer adapts a helper-style solution, which returns any printable value
// and panics on bad input, into a Solver. A nil answer is an error matching
// ErrSolver.
func Answer(f func(input string) any) Solver {
	return SolverFunc(func(input string) (string, error) {
		v := f(input)
		if v == nil {
			return "", fmt.Errorf("%w: no answer", ErrSolver)
		}
		return fmt.Sprint(v), nil
	})
}

// Builder collects registrations and produces a Registry. A Builder is not
// safe for concurrent use.
type Builder struct {
	stars map[ID]Solver
	errs  []error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{stars: make(map[ID]Solver)}
}

// Register adds s under id. A second registration of the same id is
// rejected with a *DuplicateError and the first one is kept.
func (b *Builder) Register(id ID, s Solver) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidID, id)
	}
	if s == nil {
		return fmt.Errorf("star %v: nil solver", id)
	}
	if _, ok := b.stars[id]; ok {
		return &DuplicateError{ID: id}
	}
	b.stars[id] = s
	return nil
}

// Day registers parts[i] as part i+1 of the given day. Errors are reported
// by Build.
func (b *Builder) Day(year, day int, parts ...func(string) any) *Builder {
	for i, f := range parts {
		if err := b.Register(ID{Year: year, Day: day, Part: i + 1}, Answer(f)); err != nil {
			b.errs = append(b.errs, err)
		}
	}
	return b
}

// Build returns the registry of everything registered so far, or the
// joined errors recorded by Day.
func (b *Builder) Build() (*Registry, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	return &Registry{stars: maps.Clone(b.stars)}, nil
}

// Registry is an immutable set of stars. It is safe for concurrent use.
type Registry struct {
	stars map[ID]Solver
}

// Lookup returns the solver for id.
func (r *Registry) Lookup(id ID) (Solver, error) {
	s, ok := r.stars[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return s, nil
}

// Len returns the number of registered stars.
func (r *Registry) Len() int {
	return len(r.stars)
}

// List returns every registered id, sorted.
func (r *Registry) List() []ID {
	ids := maps.Keys(r.stars)
	slices.SortFunc(ids, ID.Compare)
	return ids
}

// Day returns the registered parts of one day, sorted.
func (r *Registry) Day(year, day int) []ID {
	var out []ID
	for _, id := range r.List() {
		if id.Year == year && id.Day == day {
			out = append(out, id)
		}
	}
	return out
}

// Year returns the registered stars of one year, sorted. Year 0 means all.
func (r *Registry) Year(year int) []ID {
	if year == 0 {
		return r.List()
	}
	return slices.DeleteFunc(r.List(), func(id ID) bool {
		return id.Year != year
	})
}
