package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeArena_ReuseReleasedSlot(t *testing.T) {
	arena := newNodeArena[int]()
	require.NotZero(t, arena.listID)

	a, b := arena.alloc(1), arena.alloc(2)
	require.Equal(t, int32(0), a)
	require.Equal(t, int32(1), b)
	ha := arena.handle(a)

	require.Equal(t, 1, arena.release(a))
	_, err := arena.resolve(ha)
	require.ErrorIs(t, err, ErrInvalidHandle)

	c := arena.alloc(3)
	require.Equal(t, a, c, "released slot is recycled")
	hc := arena.handle(c)
	require.NotEqual(t, ha, hc)

	idx, err := arena.resolve(hc)
	require.NoError(t, err)
	require.Equal(t, c, idx)

	t.Log("the old handle stays invalid after the slot is reused")
	_, err = arena.resolve(ha)
	require.ErrorIs(t, err, ErrInvalidHandle)
}

func TestNodeArena_Version(t *testing.T) {
	arena := newNodeArena[string]()
	ver := arena.ver
	idx := arena.alloc("x")
	require.Greater(t, arena.ver, ver)
	ver = arena.ver
	arena.release(idx)
	require.Greater(t, arena.ver, ver)
}

func TestHandle_ForeignList(t *testing.T) {
	for name, pair := range map[string][2]BasicLinkedList[int]{
		"singly": {NewSinglyLinkedList[int](), NewSinglyLinkedList[int]()},
		"doubly": {NewDoublyLinkedList[int](), NewDoublyLinkedList[int]()},
	} {
		t.Run(name, func(t *testing.T) {
			l1, l2 := pair[0], pair[1]
			h1 := l1.InsertAtLast(1)
			l2.InsertAtLast(1)

			_, err := l2.InsertAfter(h1, 2)
			require.ErrorIs(t, err, ErrInvalidHandle)
			require.Equal(t, []int{1}, values(t, l2))

			_, err = l2.Value(h1)
			require.ErrorIs(t, err, ErrInvalidHandle)
			_, err = l2.Next(h1)
			require.ErrorIs(t, err, ErrInvalidHandle)
			_, err = l2.Remove(h1)
			require.ErrorIs(t, err, ErrInvalidHandle)
			require.Equal(t, int64(1), l2.Len())
		})
	}
}

func TestHandle_Stale(t *testing.T) {
	for name, l := range newFilledLists(1, 2, 3) {
		t.Run(name, func(t *testing.T) {
			h, ok := l.Search(2)
			require.True(t, ok)
			require.True(t, l.DeleteItem(2))

			_, err := l.InsertAfter(h, 9)
			require.ErrorIs(t, err, ErrInvalidHandle)
			require.Equal(t, []int{1, 3}, values(t, l))

			t.Log("a new node in the same slot gets a fresh handle")
			fresh := l.InsertAtLast(4)
			require.Equal(t, h.idx, fresh.idx)
			_, err = l.Value(h)
			require.ErrorIs(t, err, ErrInvalidHandle)
			v, err := l.Value(fresh)
			require.NoError(t, err)
			require.Equal(t, 4, v)
		})
	}
}

func TestHandle_Nil(t *testing.T) {
	h := Handle{}
	require.True(t, h.IsNil())
	require.Equal(t, "handle(nil)", h.String())

	l := NewDoublyLinkedList[int]()
	h = l.InsertAtLast(1)
	require.False(t, h.IsNil())
	require.Contains(t, h.String(), ":0@0)")

	_, err := l.Value(Handle{})
	require.ErrorIs(t, err, ErrInvalidHandle)
	_, err = l.Prev(Handle{})
	require.ErrorIs(t, err, ErrInvalidHandle)
}
