package ds

import "iter"

// CursorList is a singly linked list traversed through a single point of
// interest (PI). The PI sits before an element, or at the end after the last
// one, and only moves forward. Insertion and removal happen at the PI in O(1).
//
// The list keeps a sentinel head node. prev always points at the node just
// before the PI, so the element at the PI is prev.next. The PI is at the end
// exactly when prev is the last node.
type CursorList[T any] struct {
	first *node[T]
	last  *node[T]
	prev  *node[T]
	size  int
}

func NewCursorList[T any]() *CursorList[T] {
	sentinel := &node[T]{}
	return &CursorList[T]{first: sentinel, last: sentinel, prev: sentinel}
}

// NewCursorListFrom builds a list holding the elements of seq in order, with
// the PI at the start.
func NewCursorListFrom[T any](seq iter.Seq[T]) *CursorList[T] {
	l := NewCursorList[T]()
	for v := range seq {
		l.Insert(v)
	}
	l.Start()
	return l
}

// Start moves the PI to the first element.
func (l *CursorList[T]) Start() {
	l.prev = l.first
}

// Next advances the PI by one element.
func (l *CursorList[T]) Next() error {
	if l.IsEnd() {
		return ErrCursorAtEnd
	}
	l.prev = l.prev.next
	return nil
}

// End moves the PI past the last element.
func (l *CursorList[T]) End() {
	l.prev = l.last
}

func (l *CursorList[T]) IsEnd() bool {
	return l.prev == l.last
}

// Get returns the element at the PI.
func (l *CursorList[T]) Get() (T, error) {
	if l.IsEnd() {
		var zero T
		return zero, ErrCursorAtEnd
	}
	return l.prev.next.value, nil
}

// Insert adds v immediately before the PI. The PI stays on the element it
// was on, or at the end, so repeated inserts after End append in order.
func (l *CursorList[T]) Insert(v T) {
	n := &node[T]{value: v, next: l.prev.next}
	l.prev.next = n
	if n.next == nil {
		l.last = n
	}
	l.prev = n
	l.size++
}

// Remove unlinks the element at the PI and returns it. The PI moves to the
// element that followed it.
func (l *CursorList[T]) Remove() (T, error) {
	if l.IsEnd() {
		var zero T
		return zero, ErrCursorAtEnd
	}
	n := l.prev.next
	if n == l.last {
		l.last = l.prev
	}
	l.prev.next = n.next
	n.next = nil
	l.size--
	return n.value, nil
}

func (l *CursorList[T]) IsEmpty() bool {
	return l.first == l.last
}

func (l *CursorList[T]) Len() int {
	return l.size
}

// seek moves the PI from the start to the first element matching fn.
// It reports whether one was found; if not the PI is at the end.
func (l *CursorList[T]) seek(fn func(T) bool) bool {
	for l.prev = l.first; l.prev != l.last; l.prev = l.prev.next {
		if fn(l.prev.next.value) {
			return true
		}
	}
	return false
}

// All yields the elements in order without moving the PI.
func (l *CursorList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.first.next; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

func (l *CursorList[T]) ForEach(fn func(T)) {
	for cur := l.first.next; cur != nil; cur = cur.next {
		fn(cur.value)
	}
}

func (l *CursorList[T]) String() string {
	return format(l.first.next)
}
