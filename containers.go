package aoc

import (
	"container/heap"
	"fmt"
)

// drain pops values until pop reports empty or f returns false.
func drain[T any](pop func() (T, bool), f func(T) bool) {
	for {
		v, ok := pop()
		if !ok || !f(v) {
			return
		}
	}
}

// Stack is a LIFO stack. The zero value is an empty stack.
type Stack[T any] []T

func (s *Stack[T]) Len() int {
	return len(*s)
}

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(*s) == 0 {
		var zero T
		return zero, false
	}
	return (*s)[len(*s)-1], true
}

func (s *Stack[T]) Pop() (T, bool) {
	v, ok := s.Peek()
	if ok {
		*s = (*s)[:len(*s)-1]
	}
	return v, ok
}

// While pops until the stack is empty or f returns false. f may push.
func (s *Stack[T]) While(f func(T) bool) {
	drain(s.Pop, f)
}

// Queue is a FIFO queue. The zero value is an empty queue.
type Queue[T any] struct {
	items []T
	head  int
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{items: append([]T(nil), in...)}
}

func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}

func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.Len() == 0 {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}
	return v, true
}

// While pops until the queue is empty or f returns false. f may push.
func (q *Queue[T]) While(f func(T) bool) {
	drain(q.Pop, f)
}

// PQI is an item of a PQ. V is the payload and P its priority.
type PQI[T any] struct {
	V T
	P int

	ix  int
	seq uint64
}

func (i *PQI[T]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// Index returns the position of i in its queue, or -1 once popped.
func (i *PQI[T]) Index() int {
	return i.ix
}

// PQ is a priority queue. Items with equal priority pop in the order they
// were pushed.
type PQ[T any] struct {
	h    pqHeap[T]
	next uint64
}

// MinQueue returns a queue that pops the lowest priority first.
func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{h: pqHeap[T]{first: func(a, b int) bool { return a < b }}}
}

// MaxQueue returns a queue that pops the highest priority first.
func MaxQueue[T any]() *PQ[T] {
	return &PQ[T]{h: pqHeap[T]{first: func(a, b int) bool { return a > b }}}
}

func (q *PQ[T]) Push(it *PQI[T]) {
	it.seq = q.next
	q.next++
	heap.Push(&q.h, it)
}

// PushValue queues v with priority p and returns its item.
func (q *PQ[T]) PushValue(v T, p int) *PQI[T] {
	it := &PQI[T]{V: v, P: p}
	q.Push(it)
	return it
}

// Pop removes and returns the next item. It panics if q is empty.
func (q *PQ[T]) Pop() *PQI[T] {
	return heap.Pop(&q.h).(*PQI[T])
}

// Update restores the heap order after the priority of it changed.
func (q *PQ[T]) Update(it *PQI[T]) {
	heap.Fix(&q.h, it.ix)
}

// Peek returns the next item without removing it, or nil.
func (q *PQ[T]) Peek() *PQI[T] {
	if len(q.h.items) == 0 {
		return nil
	}
	return q.h.items[0]
}

func (q *PQ[T]) Len() int {
	return len(q.h.items)
}

// pqHeap implements heap.Interface. first orders two distinct priorities.
type pqHeap[T any] struct {
	items []*PQI[T]
	first func(a, b int) bool
}

func (h pqHeap[T]) Len() int { return len(h.items) }

func (h pqHeap[T]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.P != b.P {
		return h.first(a.P, b.P)
	}
	return a.seq < b.seq
}

func (h pqHeap[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].ix = i
	h.items[j].ix = j
}

func (h *pqHeap[T]) Push(x any) {
	it := x.(*PQI[T])
	it.ix = len(h.items)
	h.items = append(h.items, it)
}

func (h *pqHeap[T]) Pop() any {
	n := len(h.items) - 1
	it := h.items[n]
	h.items[n] = nil
	h.items = h.items[:n]
	it.ix = -1
	return it
}
