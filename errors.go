package aoc

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no solver is registered for an ID.
	ErrNotFound = errors.New("star not found")

	// ErrDuplicate is returned when an ID is registered twice.
	ErrDuplicate = errors.New("star already registered")

	// ErrInvalidID is returned for ids outside year >= 2015, day 1-25, part 1-2.
	ErrInvalidID = errors.New("invalid star id")

	// ErrSolver is matched by errors raised while a solver was running.
	ErrSolver = errors.New("solver failed")

	// ErrNoInput is returned when an input is neither cached nor fetchable.
	ErrNoInput = errors.New("no input available")
)

// NotFoundError reports a lookup for an unregistered star.
type NotFoundError struct {
	ID ID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("star %v not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateError reports a second registration of the same star. The first
// registration is kept.
type DuplicateError struct {
	ID ID
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("star %v already registered", e.ID)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// SolverError wraps a panic raised by a solver.
type SolverError struct {
	ID    ID
	Value any // value passed to panic
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("star %v: %v", e.ID, e.Value)
}

func (e *SolverError) Is(target error) bool {
	return target == ErrSolver
}

// Unwrap returns the panic value if it was an error.
func (e *SolverError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
