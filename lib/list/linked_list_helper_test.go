package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func values[T comparable](t *testing.T, l BasicLinkedList[T]) []T {
	t.Helper()
	res := make([]T, 0, l.Len())
	require.NoError(t, l.Foreach(func(_ int64, v T) error {
		res = append(res, v)
		return nil
	}))
	return res
}

// requireBackRefs walks the whole chain and checks that every node's
// back-reference points at the node visited before it.
func requireBackRefs[T comparable](t *testing.T, dl LinkedList[T]) {
	t.Helper()
	l := dl.(*doublyLinkedList[T])
	prev, count := nilIdx, int64(0)
	for iterator := l.head; iterator != nilIdx; iterator = l.arena.at(iterator).next {
		require.Equal(t, prev, l.arena.at(iterator).prev, "broken back-reference at slot %d", iterator)
		prev = iterator
		count++
	}
	require.Equal(t, l.Len(), count)
}
