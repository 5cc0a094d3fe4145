package list

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/benz9527/xlist/lib/infra"
)

// Iterator walks the chain one node per Next call.
// It fails fast: once the list is structurally modified, Next returns
// false and Err reports ErrConcurrentModification.
//
//	it := l.Iterator()
//	for it.Next() {
//		use(it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator[T comparable] struct {
	arena   *nodeArena[T]
	err     error
	ver     uint64
	cursor  int32
	reverse bool
	done    bool
	value   T
}

func newIterator[T comparable](arena *nodeArena[T], start int32, reverse bool) *Iterator[T] {
	return &Iterator[T]{
		arena:   arena,
		ver:     arena.ver,
		cursor:  start,
		reverse: reverse,
	}
}

// Next advances to the next value and reports whether there is one.
func (it *Iterator[T]) Next() bool {
	if it == nil || it.done {
		return false
	}
	if it.arena.ver != it.ver {
		it.err = infra.WrapErrorStackWithMessage(ErrConcurrentModification, "iterator is invalidated")
		it.finish()
		return false
	}
	if it.cursor == nilIdx {
		it.finish()
		return false
	}
	node := it.arena.at(it.cursor)
	it.value = node.value
	if it.reverse {
		it.cursor = node.prev
	} else {
		it.cursor = node.next
	}
	return true
}

func (it *Iterator[T]) finish() {
	var zero T
	it.value = zero
	it.cursor = nilIdx
	it.done = true
}

// Value returns the value loaded by the last successful Next.
func (it *Iterator[T]) Value() T {
	return it.value
}

// Err is nil when the iteration ended at the last node.
func (it *Iterator[T]) Err() error {
	if it == nil {
		return nil
	}
	return it.err
}

func seq[T comparable](newIt func() *Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := newIt()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
		if err := it.Err(); err != nil {
			panic(err)
		}
	}
}

func foreach[T comparable](it *Iterator[T], fn func(idx int64, v T) error) error {
	if fn == nil {
		return nil
	}
	for idx := int64(0); it.Next(); idx++ {
		if err := fn(idx, it.Value()); err != nil {
			return err
		}
	}
	return it.Err()
}

func printList[T comparable](w io.Writer, it *Iterator[T]) error {
	bw := bufio.NewWriter(w)
	for first := true; it.Next(); first = false {
		if !first {
			_ = bw.WriteByte(' ')
		}
		_, _ = fmt.Fprint(bw, it.Value())
	}
	if err := it.Err(); err != nil {
		return err
	}
	_ = bw.WriteByte('\n')
	return bw.Flush()
}
