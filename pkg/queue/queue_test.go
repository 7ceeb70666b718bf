package queue

import (
	"container/heap"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	id       int
	priority float64
	index    int
}

func (t *testItem) Priority() float64  { return t.priority }
func (t *testItem) TieBreaker() int    { return t.id }
func (t *testItem) Index() int         { return t.index }
func (t *testItem) SetIndex(index int) { t.index = index }
func (t *testItem) String() string     { return fmt.Sprintf("%v:%v ", t.id, t.priority) }

func TestMinHeapOrder(t *testing.T) {
	items := []*testItem{
		{id: 0, priority: 5, index: -1},
		{id: 1, priority: 1, index: -1},
		{id: 2, priority: 3, index: -1},
	}
	h := NewMinHeap(items)
	h.Push(&testItem{id: 3, priority: 2, index: -1})

	order := make([]int, 0)
	for h.Len() > 0 {
		order = append(order, h.Pop().id)
	}
	assert.Equal(t, []int{1, 3, 2, 0}, order)
}

func TestMinHeapTieBreaker(t *testing.T) {
	h := NewMinHeap[*testItem](nil)
	for _, id := range []int{4, 2, 7, 0} {
		h.Push(&testItem{id: id, priority: 1, index: -1})
	}
	assert.Equal(t, 0, h.Peek().id)
	order := make([]int, 0)
	for h.Len() > 0 {
		order = append(order, h.Pop().id)
	}
	assert.Equal(t, []int{0, 2, 4, 7}, order)
}

func TestMinHeapUpdate(t *testing.T) {
	h := NewMinHeap[*testItem](nil)
	a := &testItem{id: 0, priority: 10, index: -1}
	b := &testItem{id: 1, priority: 5, index: -1}
	h.Push(a)
	h.Push(b)
	require.Equal(t, b, h.Peek())
	assert.True(t, h.Contains(a))

	a.priority = 1
	h.Update(a)
	assert.Equal(t, a, h.Peek())

	popped := h.Pop()
	assert.Equal(t, a, popped)
	assert.Equal(t, -1, popped.Index())
	assert.False(t, h.Contains(a))
	assert.True(t, h.Contains(b))
}

func TestMinHeapRemove(t *testing.T) {
	h := NewMinHeap[*testItem](nil)
	a := &testItem{id: 0, priority: 1, index: -1}
	b := &testItem{id: 1, priority: 2, index: -1}
	h.Push(a)
	h.Push(b)
	h.Remove(a.Index())
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, b, h.PeekAt(0))
	assert.Equal(t, "1:2 ", h.String())
	assert.Panics(t, func() { h.PeekAt(3) })
}

func TestItemQueue(t *testing.T) {
	pq := NewQueue(NewQueueItem(3, 2, -1))
	far := NewQueueItem(1, 7, 3)
	heap.Push(pq, far)
	heap.Push(pq, NewQueueItem(2, 2, 3))

	pq.Update(far, 0.5)
	assert.Equal(t, 1, heap.Pop(pq).(*Item).ItemId)
	// equal priorities, lower id first
	assert.Equal(t, 2, heap.Pop(pq).(*Item).ItemId)
	last := heap.Pop(pq).(*Item)
	assert.Equal(t, 3, last.ItemId)
	assert.Equal(t, -1, last.Index)
	assert.Equal(t, 0, pq.Len())
}
