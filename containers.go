package aoc

import (
	"container/heap"
	"fmt"
)

// Stack is a LIFO stack. The zero value is empty.
type Stack[T any] struct {
	items []T
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Push puts v on top.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the top item, reporting false if s is empty.
func (s *Stack[T]) Pop() (T, bool) {
	v, ok := s.Peek()
	if ok {
		s.items = s.items[:len(s.items)-1]
	}
	return v, ok
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if n := len(s.items); n > 0 {
		return s.items[n-1], true
	}
	return v, false
}

// PQI is an item in a PQ. P is its priority.
type PQI[T any] struct {
	V  T
	P  int
	ix int
}

func (i *PQI[T]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// Index returns the position of i in its queue, or -1 once popped.
func (i *PQI[T]) Index() int {
	return i.ix
}

// PQ is a priority queue of PQI items. Use MinQueue or MaxQueue to make one.
type PQ[T any] struct {
	h pqHeap[T]
}

// MinQueue returns a PQ that pops the lowest priority first.
func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{h: pqHeap[T]{before: func(a, b int) bool { return a < b }}}
}

// MaxQueue returns a PQ that pops the highest priority first.
func MaxQueue[T any]() *PQ[T] {
	return &PQ[T]{h: pqHeap[T]{before: func(a, b int) bool { return a > b }}}
}

func (q *PQ[T]) Len() int { return len(q.h.items) }

func (q *PQ[T]) Push(it *PQI[T]) { heap.Push(&q.h, it) }

// Pop removes and returns the first item. It panics if q is empty.
func (q *PQ[T]) Pop() *PQI[T] { return heap.Pop(&q.h).(*PQI[T]) }

// Peek returns the first item without removing it. It panics if q is empty.
func (q *PQ[T]) Peek() *PQI[T] { return q.h.items[0] }

// Update restores the queue order after it.P changed. it must still be
// queued.
func (q *PQ[T]) Update(it *PQI[T]) { heap.Fix(&q.h, it.ix) }

// pqHeap implements heap.Interface, keeping each item's index current.
type pqHeap[T any] struct {
	items  []*PQI[T]
	before func(a, b int) bool
}

func (h pqHeap[T]) Len() int           { return len(h.items) }
func (h pqHeap[T]) Less(i, j int) bool { return h.before(h.items[i].P, h.items[j].P) }

func (h pqHeap[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].ix, h.items[j].ix = i, j
}

func (h *pqHeap[T]) Push(x any) {
	it := x.(*PQI[T])
	it.ix = len(h.items)
	h.items = append(h.items, it)
}

func (h *pqHeap[T]) Pop() any {
	last := len(h.items) - 1
	it := h.items[last]
	h.items[last] = nil
	h.items = h.items[:last]
	it.ix = -1
	return it
}

// Queue is a FIFO queue. The zero value is empty.
type Queue[T any] struct {
	items []T
}

// NewQueue returns a queue holding in, first element at the front.
func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{items: in}
}

func (q *Queue[T]) Len() int { return len(q.items) }

// Push adds v at the back.
func (q *Queue[T]) Push(v T) { q.items = append(q.items, v) }

// Pop removes and returns the front item, reporting false if q is empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	if len(q.items) == 0 {
		return v, false
	}
	v, q.items = q.items[0], q.items[1:]
	return v, true
}

// While pops values and calls f on them until the queue is empty or f
// returns false. f may push more values.
func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok || !f(v) {
			return
		}
	}
}
