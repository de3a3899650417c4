package ds

import "iter"

// List is a singly linked list addressed by zero-based position.
// Positional operations walk from the head and cost O(i).
type List[T any] struct {
	head *node[T]
	size int
}

func NewList[T any]() *List[T] {
	return &List[T]{}
}

// NewListFrom builds a list holding the elements of seq in order.
func NewListFrom[T any](seq iter.Seq[T]) *List[T] {
	l := NewList[T]()
	var tail *node[T]
	for v := range seq {
		n := &node[T]{value: v}
		if tail == nil {
			l.head = n
		} else {
			tail.next = n
		}
		tail = n
		l.size++
	}
	return l
}

// Insert places v at position i, shifting the element at i and all after it
// one position right. i may equal Len().
func (l *List[T]) Insert(v T, i int) error {
	if i < 0 || i > l.size {
		return indexError(i, l.size)
	}
	n := &node[T]{value: v}
	if i == 0 {
		n.next, l.head = l.head, n
	} else {
		prev := l.at(i - 1)
		n.next, prev.next = prev.next, n
	}
	l.size++
	return nil
}

// Append adds v after the last element.
func (l *List[T]) Append(v T) {
	// cannot fail: Len() is always a valid insert position
	_ = l.Insert(v, l.size)
}

// Remove unlinks the element at position i and returns it.
func (l *List[T]) Remove(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, indexError(i, l.size)
	}
	var n *node[T]
	if i == 0 {
		n = l.head
		l.head = n.next
	} else {
		prev := l.at(i - 1)
		n = prev.next
		prev.next = n.next
	}
	n.next = nil
	l.size--
	return n.value, nil
}

// Get returns the element at position i.
func (l *List[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, indexError(i, l.size)
	}
	return l.at(i).value, nil
}

// at walks to the node at position i, which must be in range.
func (l *List[T]) at(i int) *node[T] {
	cur := l.head
	for j := 0; j < i; j++ {
		cur = cur.next
	}
	return cur
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// All yields the elements in list order. The result must not be used while
// the list is being structurally modified.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

func (l *List[T]) ForEach(fn func(T)) {
	for cur := l.head; cur != nil; cur = cur.next {
		fn(cur.value)
	}
}

func (l *List[T]) String() string {
	return format(l.head)
}
