package list

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFilledLists(vals ...int) map[string]BasicLinkedList[int] {
	lists := map[string]BasicLinkedList[int]{
		"singly": NewSinglyLinkedList[int](),
		"doubly": NewDoublyLinkedList[int](),
	}
	for _, l := range lists {
		for _, v := range vals {
			l.InsertAtLast(v)
		}
	}
	return lists
}

func TestIterator_RestartablePerCall(t *testing.T) {
	for name, l := range newFilledLists(1, 2, 3) {
		t.Run(name, func(t *testing.T) {
			for round := 0; round < 2; round++ {
				got := make([]int, 0, 3)
				itr := l.Iterator()
				for itr.Next() {
					got = append(got, itr.Value())
				}
				require.NoError(t, itr.Err())
				require.Equal(t, []int{1, 2, 3}, got)

				t.Log("an exhausted iterator stays exhausted")
				require.False(t, itr.Next())
				require.False(t, itr.Next())
				require.Equal(t, 0, itr.Value())
			}
		})
	}
}

func TestIterator_Empty(t *testing.T) {
	for name, l := range newFilledLists() {
		t.Run(name, func(t *testing.T) {
			itr := l.Iterator()
			require.False(t, itr.Next())
			require.NoError(t, itr.Err())
			for range l.All() {
				require.Fail(t, "empty list yields nothing")
			}
		})
	}
}

func TestIterator_ConcurrentModification(t *testing.T) {
	for name, l := range newFilledLists(1, 2, 3) {
		t.Run(name, func(t *testing.T) {
			itr := l.Iterator()
			require.True(t, itr.Next())
			require.Equal(t, 1, itr.Value())

			l.InsertAtLast(4)
			require.False(t, itr.Next())
			require.ErrorIs(t, itr.Err(), ErrConcurrentModification)
			require.False(t, itr.Next())

			t.Log("deletes invalidate as well")
			itr = l.Iterator()
			require.True(t, itr.Next())
			l.DeleteFirst()
			require.False(t, itr.Next())
			require.ErrorIs(t, itr.Err(), ErrConcurrentModification)

			t.Log("a failed delete is not a modification")
			itr = l.Iterator()
			require.False(t, l.DeleteItem(42))
			require.True(t, itr.Next())
			require.NoError(t, itr.Err())

			t.Log("a finished iteration is not affected")
			itr = l.Iterator()
			for itr.Next() {
			}
			l.InsertAtStart(0)
			require.False(t, itr.Next())
			require.NoError(t, itr.Err())
		})
	}
}

func TestIterator_AllPanicsOnModification(t *testing.T) {
	for name, l := range newFilledLists(1, 2, 3) {
		t.Run(name, func(t *testing.T) {
			require.Panics(t, func() {
				for v := range l.All() {
					l.InsertAtLast(v)
				}
			})
		})
	}
}

func TestIterator_AllBreak(t *testing.T) {
	for name, l := range newFilledLists(1, 2, 3) {
		t.Run(name, func(t *testing.T) {
			got := make([]int, 0, 2)
			for v := range l.All() {
				got = append(got, v)
				if v == 2 {
					break
				}
			}
			require.Equal(t, []int{1, 2}, got)
		})
	}
}

var errStop = errors.New("stop")

func TestForeach(t *testing.T) {
	for name, l := range newFilledLists(1, 2, 3) {
		t.Run(name, func(t *testing.T) {
			visited := make([]int64, 0, 2)
			err := l.Foreach(func(idx int64, v int) error {
				visited = append(visited, idx)
				if v == 2 {
					return errStop
				}
				return nil
			})
			require.ErrorIs(t, err, errStop)
			require.Equal(t, []int64{0, 1}, visited)

			require.NoError(t, l.Foreach(nil))

			err = l.Foreach(func(idx int64, v int) error {
				if idx == 0 {
					l.DeleteItem(v)
				}
				return nil
			})
			require.ErrorIs(t, err, ErrConcurrentModification)
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errStop }

func TestPrintList_WriterError(t *testing.T) {
	for name, l := range newFilledLists(1, 2) {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, l.PrintList(failingWriter{}), errStop)

			buf := &bytes.Buffer{}
			require.NoError(t, l.PrintList(buf))
			require.Equal(t, "1 2\n", buf.String())
		})
	}
}
