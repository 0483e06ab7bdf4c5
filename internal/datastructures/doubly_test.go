package datastructures

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkDoublyInvariants walks the arena in both directions and verifies the
// link symmetry, the end markers and the size counter.
func checkDoublyInvariants[E any](t *testing.T, l *DoublyLinkedList[E]) {
	t.Helper()
	require.Equal(t, l.size, len(l.nodes)-len(l.free), "live slots")
	if l.size == 0 {
		require.Equal(t, nilHandle, l.head)
		require.Equal(t, nilHandle, l.tail)
		return
	}
	require.NotEqual(t, nilHandle, l.head)
	require.NotEqual(t, nilHandle, l.tail)
	require.False(t, l.node(l.head).hasPrevious())
	require.False(t, l.node(l.tail).hasNext())

	h, prev := l.head, nilHandle
	for i := 0; i < l.size; i++ {
		require.NotEqual(t, nilHandle, h, "forward walk ended at %d", i)
		require.Equal(t, prev, l.node(h).previous, "symmetry at %d", i)
		prev, h = h, l.node(h).next
	}
	require.Equal(t, nilHandle, h)
	require.Equal(t, l.tail, prev)

	h, next := l.tail, nilHandle
	for i := l.size - 1; i >= 0; i-- {
		require.NotEqual(t, nilHandle, h, "backward walk ended at %d", i)
		require.Equal(t, next, l.node(h).next, "symmetry at %d", i)
		next, h = h, l.node(h).previous
	}
	require.Equal(t, nilHandle, h)
	require.Equal(t, l.head, next)
}

func TestDoublyGetFromBothHalves(t *testing.T) {
	for _, size := range []int{1, 2, 9, 10} {
		t.Run(strconv.Itoa(size), func(t *testing.T) {
			l := NewDoublyLinkedList[int]()
			for i := 0; i < size; i++ {
				l.Add(i * 10)
			}

			probes := []int{0, size/2 - 1, size / 2, size - 1}
			for _, i := range probes {
				if i < 0 {
					continue
				}
				got, err := l.Get(i)
				require.NoError(t, err)
				assert.Equal(t, i*10, got, "index %d", i)
			}
			for i := 0; i < size; i++ {
				got, err := l.Get(i)
				require.NoError(t, err)
				assert.Equal(t, i*10, got)
			}
		})
	}
}

func TestDoublyNodeAtWalksFromNearestEnd(t *testing.T) {
	l := NewDoublyLinkedList[string]()
	for _, v := range []string{"a", "b", "c", "d", "e", "f"} {
		l.Add(v)
	}

	assert.Equal(t, l.head, l.nodeAt(0))
	assert.Equal(t, l.tail, l.nodeAt(5))
	assert.Equal(t, l.node(l.head).next, l.nodeAt(1))
	assert.Equal(t, l.node(l.tail).previous, l.nodeAt(4))
	// 3 is the first index served from the tail
	assert.Equal(t, l.node(l.node(l.tail).previous).previous, l.nodeAt(3))
	assert.Equal(t, "c", l.node(l.nodeAt(2)).data)
}

func TestDoublyInsertInBothHalves(t *testing.T) {
	l := NewDoublyLinkedList[string]()
	for _, v := range []string{"a", "b", "c", "d", "e", "f"} {
		l.Add(v)
	}

	require.NoError(t, l.Insert(1, "x"))
	require.NoError(t, l.Insert(6, "y"))
	assert.Equal(t, []string{"a", "x", "b", "c", "d", "e", "y", "f"}, l.Values())
	checkDoublyInvariants(t, l)
}

func TestDoublyReusesReleasedSlots(t *testing.T) {
	l := NewDoublyLinkedList[string]()
	l.Add("a")
	l.Add("b")
	l.Add("c")

	assert.True(t, l.Remove("b"))
	require.Len(t, l.free, 1)

	l.AddFirst("z")
	assert.Len(t, l.nodes, 3)
	assert.Empty(t, l.free)
	assert.Equal(t, []string{"z", "a", "c"}, l.Values())
	checkDoublyInvariants(t, l)
}

func TestDoublyReleasedSlotIsZeroed(t *testing.T) {
	l := NewDoublyLinkedList[*int]()
	v := 7
	l.Add(&v)
	l.Add(nil)

	h := l.head
	_, err := l.RemoveFirst()
	require.NoError(t, err)
	assert.Nil(t, l.nodes[h-1].data)
}

func TestDoublyClearDropsArena(t *testing.T) {
	l := NewDoublyLinkedList[int]()
	for i := 0; i < 100; i++ {
		l.Add(i)
	}
	_, err := l.RemoveAt(50)
	require.NoError(t, err)

	l.Clear()
	assert.Nil(t, l.nodes)
	assert.Nil(t, l.free)
	checkDoublyInvariants(t, l)

	l.Add(1)
	got, err := l.GetLast()
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	checkDoublyInvariants(t, l)
}

func TestDoublyCustomEquality(t *testing.T) {
	l := NewDoublyLinkedListFunc[string](strings.EqualFold)
	l.Add("Alpha")
	l.Add("Beta")

	assert.True(t, l.Contains("BETA"))
	assert.Equal(t, 0, l.IndexOf("alpha"))
	assert.True(t, l.Remove("alpha"))
	assert.Equal(t, []string{"Beta"}, l.Values())
}

func TestDoublyWithoutEqualityPanicsOnValueLookup(t *testing.T) {
	type point struct{ x, y []int }
	l := NewDoublyLinkedListFunc[point](nil)
	l.Add(point{})

	assert.Panics(t, func() { l.Remove(point{}) })
	assert.Panics(t, func() { l.Contains(point{}) })
	assert.Equal(t, 1, l.Size())
}
