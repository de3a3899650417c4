package ds

import "iter"

// member is the value stored for every element of a Set.
type member struct{}

// Set is a hash set backed by a HashTable whose values carry no data.
type Set[E comparable] struct {
	table *HashTable[E, member]
}

// NewSet creates a set sized for estimatedSize elements.
func NewSet[E comparable](estimatedSize int, opts ...TableOption[E]) *Set[E] {
	return &Set[E]{
		table: NewHashTable[E, member](estimatedSize, opts...),
	}
}

// Add inserts e and reports whether it was not already present.
func (s *Set[E]) Add(e E) bool {
	_, existed := s.table.Put(e, member{})
	return !existed
}

// Remove deletes e and reports whether it was present.
func (s *Set[E]) Remove(e E) bool {
	_, existed := s.table.Remove(e)
	return existed
}

// Contains checks if e is in the set
func (s *Set[E]) Contains(e E) bool {
	return s.table.ContainsKey(e)
}

func (s *Set[E]) Len() int {
	return s.table.Len()
}

func (s *Set[E]) IsEmpty() bool {
	return s.table.IsEmpty()
}

// Elements returns a snapshot of the elements in bucket order. This is not
// insertion order.
func (s *Set[E]) Elements() *CursorList[E] {
	return s.table.Keys()
}

func (s *Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range s.table.All() {
			if !yield(e) {
				return
			}
		}
	}
}

func (s *Set[E]) ForEach(fn func(E)) {
	for e := range s.table.All() {
		fn(e)
	}
}

func (s *Set[E]) String() string {
	return s.Elements().String()
}
