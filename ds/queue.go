package ds

import (
	"fmt"
	"iter"
	"strings"
)

// DefaultQueueCapacity is the backing array size of a new Queue.
const DefaultQueueCapacity = 50

// Queue is a FIFO queue over a circular array. When the array is full the
// next Add doubles it, copying the elements to the front in queue order.
type Queue[T comparable] struct {
	items []T
	front int // index of the first element
	rear  int // index of the next free slot
	size  int
}

func NewQueue[T comparable]() *Queue[T] {
	return NewQueueWithCapacity[T](DefaultQueueCapacity)
}

// NewQueueWithCapacity creates a queue whose backing array holds capacity
// elements before growing. A non-positive capacity means the default.
func NewQueueWithCapacity[T comparable](capacity int) *Queue[T] {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue[T]{items: make([]T, capacity)}
}

func (q *Queue[T]) increment(i int) int {
	i++
	if i == len(q.items) {
		i = 0
	}
	return i
}

// grow doubles the backing array and moves the elements to [0, size).
func (q *Queue[T]) grow() {
	items := make([]T, 2*len(q.items))
	for i, j := 0, q.front; i < q.size; i, j = i+1, q.increment(j) {
		items[i] = q.items[j]
	}
	q.items = items
	q.front = 0
	q.rear = q.size
}

// Add appends v at the rear.
func (q *Queue[T]) Add(v T) {
	if q.size == len(q.items) {
		q.grow()
	}
	q.items[q.rear] = v
	q.rear = q.increment(q.rear)
	q.size++
}

// Remove takes the element at the front.
func (q *Queue[T]) Remove() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmptyQueue
	}
	v := q.items[q.front]
	q.items[q.front] = zero
	q.front = q.increment(q.front)
	q.size--
	return v, nil
}

// First returns the element at the front without removing it.
func (q *Queue[T]) First() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.items[q.front], nil
}

// Contains reports whether any queued element equals v.
func (q *Queue[T]) Contains(v T) bool {
	for e := range q.All() {
		if e == v {
			return true
		}
	}
	return false
}

func (q *Queue[T]) Len() int {
	return q.size
}

func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Cap returns the current size of the backing array.
func (q *Queue[T]) Cap() int {
	return len(q.items)
}

// All yields the elements front to rear.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, j := 0, q.front; i < q.size; i, j = i+1, q.increment(j) {
			if !yield(q.items[j]) {
				return
			}
		}
	}
}

func (q *Queue[T]) ForEach(fn func(T)) {
	for v := range q.All() {
		fn(v)
	}
}

func (q *Queue[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	n := 0
	for v := range q.All() {
		if n > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
		n++
	}
	b.WriteByte(']')
	return b.String()
}
