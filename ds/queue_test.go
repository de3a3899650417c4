package ds

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueue(t *testing.T) {
	q := NewQueue[int]()
	assert.True(t, q.IsEmpty())
	assert.Equal(t, DefaultQueueCapacity, q.Cap())
	assert.Equal(t, 8, NewQueueWithCapacity[int](8).Cap())
	assert.Equal(t, DefaultQueueCapacity, NewQueueWithCapacity[int](0).Cap())
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueueWithCapacity[int](4)
	for i := 0; i < 10; i++ {
		q.Add(i)
	}
	for i := 0; i < 10; i++ {
		first, err := q.First()
		require.NoError(t, err)
		assert.Equal(t, i, first)
		v, err := q.Remove()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.True(t, q.IsEmpty())
}

func TestQueueGrowth(t *testing.T) {
	q := NewQueue[int]()
	for i := 0; i <= 50; i++ {
		q.Add(i)
	}
	assert.Equal(t, 100, q.Cap())
	assert.Equal(t, 51, q.Len())

	for i := 0; i <= 50; i++ {
		v, err := q.Remove()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestQueueGrowthWhileWrapped(t *testing.T) {
	q := NewQueueWithCapacity[string](3)
	q.Add("a")
	q.Add("b")
	q.Add("c")
	q.Remove()
	q.Remove()
	q.Add("d")
	q.Add("e")
	// front is at index 2 and the contents wrap around the array end.
	require.Equal(t, 3, q.Cap())

	q.Add("f")
	assert.Equal(t, 6, q.Cap())
	assert.Equal(t, 0, q.front)
	assert.Equal(t, 4, q.rear)
	assert.Equal(t, []string{"c", "d", "e", "f"}, slices.Collect(q.All()))
	assert.Equal(t, "[c, d, e, f]", q.String())
}

func TestQueueRemoveClearsSlot(t *testing.T) {
	v := 1
	q := NewQueueWithCapacity[*int](2)
	q.Add(&v)
	_, err := q.Remove()
	require.NoError(t, err)
	assert.Nil(t, q.items[0])
}

func TestQueueEmptyErrors(t *testing.T) {
	q := NewQueue[int]()
	_, err := q.Remove()
	assert.ErrorIs(t, err, ErrEmptyQueue)
	assert.ErrorIs(t, err, ErrPrecondition)
	_, err = q.First()
	assert.ErrorIs(t, err, ErrEmptyQueue)
	assert.Equal(t, 0, q.Len())
}

func TestQueueContains(t *testing.T) {
	q := NewQueueWithCapacity[*int](2)
	v := 3
	assert.False(t, q.Contains(nil))
	q.Add(&v)
	q.Add(nil)
	assert.True(t, q.Contains(&v))
	assert.True(t, q.Contains(nil))

	q.Remove()
	assert.False(t, q.Contains(&v))
}

func TestQueueContainsOnlyLogicalWindow(t *testing.T) {
	q := NewQueueWithCapacity[int](4)
	q.Add(0)
	q.Add(7)
	q.Remove()
	q.Remove()
	// Vacant slots hold zero values that are not queued elements.
	assert.False(t, q.Contains(0))
	q.Add(0)
	assert.True(t, q.Contains(0))
}

func TestQueueForEach(t *testing.T) {
	q := NewQueue[int]()
	for i := 1; i <= 4; i++ {
		q.Add(i)
	}
	var seen []int
	q.ForEach(func(v int) { seen = append(seen, v) })
	assert.Equal(t, []int{1, 2, 3, 4}, seen)
	assert.Equal(t, seen, slices.Collect(q.All()))
}
