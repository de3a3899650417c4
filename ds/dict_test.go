package ds

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(k int) uint64 {
	return uint64(k)
}

func TestHashTablePutAndGet(t *testing.T) {
	ht := NewHashTable[string, int](3)
	_, replaced := ht.Put("a", 1)
	assert.False(t, replaced)
	ht.Put("b", 2)
	old, replaced := ht.Put("a", 3)
	assert.True(t, replaced)
	assert.Equal(t, 1, old)

	assert.Equal(t, 2, ht.Len())

	value, exists := ht.Get("a")
	assert.True(t, exists, "Key 'a' should exist")
	assert.Equal(t, 3, value)

	value, exists = ht.Get("b")
	assert.True(t, exists, "Key 'b' should exist")
	assert.Equal(t, 2, value)

	_, exists = ht.Get("c")
	assert.False(t, exists, "Key 'c' should not exist")
}

func TestHashTablePutTwiceKeepsSize(t *testing.T) {
	ht := NewHashTable[int, string](10)
	for i := 0; i < 20; i++ {
		ht.Put(i, "v1")
		size := ht.Len()
		old, replaced := ht.Put(i, "v2")
		assert.True(t, replaced)
		assert.Equal(t, "v1", old)
		assert.Equal(t, size, ht.Len())
		got, _ := ht.Get(i)
		assert.Equal(t, "v2", got)
	}
}

func TestHashTableRemove(t *testing.T) {
	ht := NewHashTable[string, int](10)
	ht.Put("one", 1)
	ht.Put("two", 2)

	v, removed := ht.Remove("one")
	assert.True(t, removed)
	assert.Equal(t, 1, v)
	assert.False(t, ht.ContainsKey("one"), "Expected key 'one' to be deleted")
	assert.Equal(t, 1, ht.Len())

	_, removed = ht.Remove("one")
	assert.False(t, removed)
	assert.Equal(t, 1, ht.Len())

	assert.True(t, ht.ContainsKey("two"))
}

func TestHashTableCapacity(t *testing.T) {
	for _, tc := range []struct {
		estimate int
		capacity int
	}{
		{-4, 2}, {0, 2}, {1, 2}, {2, 3}, {3, 5}, {10, 17}, {16, 23}, {100, 137},
	} {
		ht := NewHashTable[int, int](tc.estimate)
		assert.Equal(t, tc.capacity, ht.Capacity(), "estimate %d", tc.estimate)
	}
}

func TestHashTableNeverResizes(t *testing.T) {
	ht := NewHashTable[string, int](3)
	require.Equal(t, 5, ht.Capacity())

	for i := 0; i < 100; i++ {
		ht.Put(fmt.Sprintf("key%d", i), i)
	}
	assert.Equal(t, 5, ht.Capacity())
	assert.Equal(t, 100, ht.Len())
	assert.InDelta(t, 20.0, ht.LoadFactor(), 1e-9)

	value, exists := ht.Get("key50")
	assert.True(t, exists, "Key 'key50' should exist")
	assert.Equal(t, 50, value, "Value for key 'key50' should be 50")

	value, exists = ht.Get("key99")
	assert.True(t, exists, "Key 'key99' should exist")
	assert.Equal(t, 99, value, "Value for key 'key99' should be 99")
}

func TestHashTableIterationOrder(t *testing.T) {
	ht := NewHashTable[int, string](3, WithHasher(identity))
	for _, k := range []int{7, 2, 5, 0, 12} {
		ht.Put(k, fmt.Sprint("v", k))
	}

	// bucket 0 holds 5, 0; bucket 2 holds 7, 2, 12 in insertion order.
	assert.Equal(t, []int{5, 0, 7, 2, 12}, slices.Collect(ht.Keys().All()))
	assert.Equal(t, []string{"v5", "v0", "v7", "v2", "v12"}, slices.Collect(ht.Values().All()))

	var keys []int
	ht.ForEach(func(k int, _ string) { keys = append(keys, k) })
	assert.Equal(t, []int{5, 0, 7, 2, 12}, keys)

	assert.Equal(t, 3, ht.Collisions(17))
	assert.Equal(t, 2, ht.Collisions(10))
	assert.Equal(t, 0, ht.Collisions(1))

	assert.Equal(t, "(5, v5)\n(0, v0)\n(7, v7)\n(2, v2)\n(12, v12)\n", ht.String())
}

func TestHashTableRemoveMidChain(t *testing.T) {
	ht := NewHashTable[int, int](3, WithHasher(identity))
	for _, k := range []int{1, 6, 11} {
		ht.Put(k, k)
	}
	ht.Remove(6)
	ht.Put(16, 16)
	ht.Remove(16)
	ht.Put(21, 21)

	assert.Equal(t, []int{1, 11, 21}, slices.Collect(ht.Keys().All()))
}

func TestHashTableLookupInsideForEach(t *testing.T) {
	ht := NewHashTable[int, int](3, WithHasher(identity))
	for _, k := range []int{1, 6, 11} {
		ht.Put(k, k*10)
	}
	var visited []int
	ht.ForEach(func(k, v int) {
		got, ok := ht.Get(k)
		require.True(t, ok)
		require.Equal(t, v, got)
		visited = append(visited, k)
	})
	assert.Equal(t, []int{1, 6, 11}, visited)
}

func TestHashTableComputeIfAbsent(t *testing.T) {
	ht := NewHashTable[string, int](3)
	calls := 0
	fn := func(k string) (int, bool) {
		calls++
		return len(k), true
	}

	v, ok := ht.ComputeIfAbsent("abc", fn)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1, calls)

	v, ok = ht.ComputeIfAbsent("abc", fn)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1, calls, "fn must not run for a present key")

	_, ok = ht.ComputeIfAbsent("none", func(string) (int, bool) {
		calls++
		return 0, false
	})
	assert.False(t, ok)
	assert.Equal(t, 2, calls)
	assert.False(t, ht.ContainsKey("none"))
	assert.Equal(t, 1, ht.Len())
}

func TestHashTableComputeIfPresent(t *testing.T) {
	ht := NewHashTable[string, int](3)
	called := false
	_, ok := ht.ComputeIfPresent("x", func(string, int) (int, bool) {
		called = true
		return 0, true
	})
	assert.False(t, ok)
	assert.False(t, called)
	assert.False(t, ht.ContainsKey("x"))

	ht.Put("x", 1)
	v, ok := ht.ComputeIfPresent("x", func(_ string, v int) (int, bool) {
		return v + 1, true
	})
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	got, _ := ht.Get("x")
	assert.Equal(t, 2, got)

	_, ok = ht.ComputeIfPresent("x", func(string, int) (int, bool) {
		return 0, false
	})
	assert.False(t, ok)
	assert.False(t, ht.ContainsKey("x"))
	assert.True(t, ht.IsEmpty())
}

func TestHashTableZeroValueIsPresent(t *testing.T) {
	ht := NewHashTable[string, *int](3)
	ht.Put("nil", nil)
	v, ok := ht.Get("nil")
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, 1, ht.Len())
}

func TestKeysWithValue(t *testing.T) {
	ht := NewHashTable[int, string](3, WithHasher(identity))
	ht.Put(1, "odd")
	ht.Put(2, "even")
	ht.Put(3, "odd")
	ht.Put(4, "even")

	assert.Equal(t, []int{1, 3}, slices.Collect(KeysWithValue(ht, "odd").All()))
	assert.True(t, KeysWithValue(ht, "none").IsEmpty())
}

type point struct {
	X, Y int
}

func TestHashTableStructKeys(t *testing.T) {
	ht := NewHashTable[point, string](4)
	ht.Put(point{1, 2}, "a")
	ht.Put(point{2, 1}, "b")
	ht.Put(point{1, 2}, "c")

	assert.Equal(t, 2, ht.Len())
	v, ok := ht.Get(point{1, 2})
	assert.True(t, ok)
	assert.Equal(t, "c", v)
}

type book struct {
	Title string
}

func TestHashTablePointerKeySurvivesMutation(t *testing.T) {
	ht := NewHashTable[*book, int](16)
	b := &book{Title: "Dune"}
	other := &book{Title: "Dune"}
	ht.Put(b, 1)
	ht.Put(other, 2)
	require.Equal(t, 2, ht.Len(), "distinct pointers are distinct keys")

	b.Title = "Dune Messiah"
	v, ok := ht.Get(b)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, ht.ContainsKey(b))

	v, ok = ht.Remove(b)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.False(t, ht.ContainsKey(b))
	assert.Equal(t, 1, ht.Len())
}

func TestHashTableInterfaceKeys(t *testing.T) {
	ht := NewHashTable[any, string](8)
	b := &book{Title: "Emma"}
	ht.Put(b, "ptr")
	ht.Put("Emma", "str")
	ht.Put(point{1, 2}, "point")

	b.Title = "Persuasion"
	v, ok := ht.Get(b)
	assert.True(t, ok)
	assert.Equal(t, "ptr", v)
	v, _ = ht.Get("Emma")
	assert.Equal(t, "str", v)
	v, _ = ht.Get(point{1, 2})
	assert.Equal(t, "point", v)
}
