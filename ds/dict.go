package ds

import (
	"fmt"
	"iter"
	"strings"
)

// Entry is a key/value pair held in a bucket.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

func (e *Entry[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Key, e.Value)
}

// TableOption configures a HashTable at construction.
type TableOption[K comparable] func(*tableOptions[K])

type tableOptions[K comparable] struct {
	hash Hasher[K]
}

// WithHasher replaces the default key hasher.
func WithHasher[K comparable](h Hasher[K]) TableOption[K] {
	return func(o *tableOptions[K]) {
		o.hash = h
	}
}

// HashTable is a separate-chaining hash table whose bucket count is fixed
// when it is created. The table never rehashes: once the number of entries
// passes the estimate it was sized for, chains simply get longer.
//
// Each bucket is a CursorList of entries; lookups scan the chain comparing
// keys with ==.
type HashTable[K comparable, V any] struct {
	buckets []*CursorList[*Entry[K, V]]
	size    int
	hash    Hasher[K]
}

// NewHashTable creates a table sized for estimatedSize entries: the bucket
// count is the smallest prime not below estimatedSize / LoadFactor.
func NewHashTable[K comparable, V any](estimatedSize int, opts ...TableOption[K]) *HashTable[K, V] {
	o := tableOptions[K]{hash: defaultHasher[K]()}
	for _, opt := range opts {
		opt(&o)
	}
	buckets := make([]*CursorList[*Entry[K, V]], capacityFor(estimatedSize))
	for i := range buckets {
		buckets[i] = NewCursorList[*Entry[K, V]]()
	}
	return &HashTable[K, V]{
		buckets: buckets,
		hash:    o.hash,
	}
}

func (h *HashTable[K, V]) hashIndex(key K) int {
	return int(h.hash(key) % uint64(len(h.buckets)))
}

// find positions the PI of key's bucket on its entry. If the key is absent
// the PI is left at the end of the bucket.
func (h *HashTable[K, V]) find(key K) (*CursorList[*Entry[K, V]], bool) {
	bucket := h.buckets[h.hashIndex(key)]
	found := bucket.seek(func(e *Entry[K, V]) bool {
		return e.Key == key
	})
	return bucket, found
}

// Get returns the value stored for key and whether it was present.
func (h *HashTable[K, V]) Get(key K) (V, bool) {
	bucket, found := h.find(key)
	if !found {
		var zero V
		return zero, false
	}
	e, _ := bucket.Get()
	return e.Value, true
}

func (h *HashTable[K, V]) ContainsKey(key K) bool {
	_, found := h.find(key)
	return found
}

// Put stores value under key. If the key was already present its value is
// replaced and the old one returned with true.
func (h *HashTable[K, V]) Put(key K, value V) (V, bool) {
	bucket, found := h.find(key)
	if found {
		e, _ := bucket.Get()
		old := e.Value
		e.Value = value
		return old, true
	}
	bucket.Insert(&Entry[K, V]{Key: key, Value: value})
	h.size++
	var zero V
	return zero, false
}

// Remove deletes key and returns the value it held.
func (h *HashTable[K, V]) Remove(key K) (V, bool) {
	bucket, found := h.find(key)
	if !found {
		var zero V
		return zero, false
	}
	e, _ := bucket.Remove()
	h.size--
	return e.Value, true
}

// ComputeIfAbsent calls fn only when key is absent and stores its result if
// fn reports ok. It returns the value now stored for key, if any.
func (h *HashTable[K, V]) ComputeIfAbsent(key K, fn func(K) (V, bool)) (V, bool) {
	if v, ok := h.Get(key); ok {
		return v, true
	}
	v, ok := fn(key)
	if !ok {
		var zero V
		return zero, false
	}
	h.Put(key, v)
	return v, true
}

// ComputeIfPresent calls fn only when key is present. If fn reports ok the
// value is replaced, otherwise the key is removed. It returns the value now
// stored for key, if any.
func (h *HashTable[K, V]) ComputeIfPresent(key K, fn func(K, V) (V, bool)) (V, bool) {
	cur, ok := h.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	v, ok := fn(key, cur)
	if !ok {
		h.Remove(key)
		var zero V
		return zero, false
	}
	h.Put(key, v)
	return v, true
}

// Keys returns a snapshot of the keys in bucket order, then chain order.
func (h *HashTable[K, V]) Keys() *CursorList[K] {
	keys := NewCursorList[K]()
	for k := range h.All() {
		keys.Insert(k)
	}
	keys.Start()
	return keys
}

// Values returns a snapshot of the values in the same order as Keys.
func (h *HashTable[K, V]) Values() *CursorList[V] {
	values := NewCursorList[V]()
	for _, v := range h.All() {
		values.Insert(v)
	}
	values.Start()
	return values
}

// All yields every entry in bucket order, then chain order. Lookups from
// inside the loop body are allowed; Put of a new key or Remove is not.
func (h *HashTable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range h.buckets {
			for e := range bucket.All() {
				if !yield(e.Key, e.Value) {
					return
				}
			}
		}
	}
}

func (h *HashTable[K, V]) ForEach(fn func(K, V)) {
	for k, v := range h.All() {
		fn(k, v)
	}
}

// Len returns the number of entries in the table.
func (h *HashTable[K, V]) Len() int {
	return h.size
}

// IsEmpty returns true if the table holds no entries.
func (h *HashTable[K, V]) IsEmpty() bool {
	return h.size == 0
}

// Capacity returns the bucket count, fixed at construction.
func (h *HashTable[K, V]) Capacity() int {
	return len(h.buckets)
}

func (h *HashTable[K, V]) LoadFactor() float64 {
	return float64(h.size) / float64(len(h.buckets))
}

// Collisions returns the length of the chain key hashes to, whether or not
// key itself is stored.
func (h *HashTable[K, V]) Collisions(key K) int {
	return h.buckets[h.hashIndex(key)].Len()
}

// String renders one "(key, value)" entry per line.
func (h *HashTable[K, V]) String() string {
	var b strings.Builder
	for _, bucket := range h.buckets {
		for e := range bucket.All() {
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// KeysWithValue returns the keys whose value equals v, in iteration order.
func KeysWithValue[K, V comparable](h *HashTable[K, V], v V) *CursorList[K] {
	keys := NewCursorList[K]()
	for k, val := range h.All() {
		if val == v {
			keys.Insert(k)
		}
	}
	keys.Start()
	return keys
}
