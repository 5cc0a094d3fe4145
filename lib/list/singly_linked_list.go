package list

import (
	"io"
	"iter"
)

var _ BasicLinkedList[struct{}] = (*singlyLinkedList[struct{}])(nil) // Type check assertion

// singlyLinkedList keeps the head only, like the textbook version.
// Appending and removing the tail walk the whole chain.
type singlyLinkedList[T comparable] struct {
	arena *nodeArena[T]
	head  int32
	len   int64
}

func NewSinglyLinkedList[T comparable]() BasicLinkedList[T] {
	return &singlyLinkedList[T]{
		arena: newNodeArena[T](),
		head:  nilIdx,
	}
}

func (l *singlyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *singlyLinkedList[T]) IsEmpty() bool {
	return l.head == nilIdx
}

func (l *singlyLinkedList[T]) InsertAtStart(v T) Handle {
	idx := l.arena.alloc(v)
	l.arena.at(idx).next = l.head
	l.head = idx
	l.len++
	return l.arena.handle(idx)
}

func (l *singlyLinkedList[T]) tail() int32 {
	if l.head == nilIdx {
		return nilIdx
	}
	iterator := l.head
	for next := l.arena.at(iterator).next; next != nilIdx; next = l.arena.at(iterator).next {
		iterator = next
	}
	return iterator
}

func (l *singlyLinkedList[T]) InsertAtLast(v T) Handle {
	last := l.tail()
	idx := l.arena.alloc(v)
	if last == nilIdx {
		l.head = idx
	} else {
		l.arena.at(last).next = idx
	}
	l.len++
	return l.arena.handle(idx)
}

func (l *singlyLinkedList[T]) InsertAfter(at Handle, v T) (Handle, error) {
	if at.IsNil() {
		return Handle{}, nil
	}
	atIdx, err := l.arena.resolve(at)
	if err != nil {
		return Handle{}, err
	}
	idx := l.arena.alloc(v)
	atNode := l.arena.at(atIdx)
	l.arena.at(idx).next = atNode.next
	atNode.next = idx
	l.len++
	return l.arena.handle(idx), nil
}

func (l *singlyLinkedList[T]) search(v T) (prev, target int32) {
	prev = nilIdx
	for iterator := l.head; iterator != nilIdx; iterator = l.arena.at(iterator).next {
		if l.arena.at(iterator).value == v {
			return prev, iterator
		}
		prev = iterator
	}
	return nilIdx, nilIdx
}

func (l *singlyLinkedList[T]) Search(v T) (Handle, bool) {
	_, target := l.search(v)
	return l.arena.handle(target), target != nilIdx
}

func (l *singlyLinkedList[T]) Front() (Handle, bool) {
	return l.arena.handle(l.head), l.head != nilIdx
}

func (l *singlyLinkedList[T]) Next(h Handle) (Handle, error) {
	idx, err := l.arena.resolve(h)
	if err != nil {
		return Handle{}, err
	}
	return l.arena.handle(l.arena.at(idx).next), nil
}

func (l *singlyLinkedList[T]) Value(h Handle) (T, error) {
	idx, err := l.arena.resolve(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.arena.at(idx).value, nil
}

// unlink detaches target, prev is nilIdx if target is the head.
func (l *singlyLinkedList[T]) unlink(prev, target int32) T {
	next := l.arena.at(target).next
	if prev == nilIdx {
		l.head = next
	} else {
		l.arena.at(prev).next = next
	}
	l.len--
	return l.arena.release(target)
}

func (l *singlyLinkedList[T]) DeleteFirst() (T, bool) {
	if l.head == nilIdx {
		var zero T
		return zero, false
	}
	return l.unlink(nilIdx, l.head), true
}

func (l *singlyLinkedList[T]) DeleteLast() (T, bool) {
	if l.head == nilIdx {
		var zero T
		return zero, false
	}
	if l.arena.at(l.head).next == nilIdx {
		return l.unlink(nilIdx, l.head), true
	}
	// Stop at the second-to-last node to re-terminate the chain.
	prev := l.head
	for l.arena.at(l.arena.at(prev).next).next != nilIdx {
		prev = l.arena.at(prev).next
	}
	return l.unlink(prev, l.arena.at(prev).next), true
}

func (l *singlyLinkedList[T]) DeleteItem(v T) bool {
	prev, target := l.search(v)
	if target == nilIdx {
		return false
	}
	l.unlink(prev, target)
	return true
}

func (l *singlyLinkedList[T]) Remove(h Handle) (T, error) {
	idx, err := l.arena.resolve(h)
	if err != nil {
		var zero T
		return zero, err
	}
	prev := nilIdx
	for iterator := l.head; iterator != idx; iterator = l.arena.at(iterator).next {
		prev = iterator
	}
	return l.unlink(prev, idx), nil
}

func (l *singlyLinkedList[T]) Iterator() *Iterator[T] {
	return newIterator(l.arena, l.head, false)
}

func (l *singlyLinkedList[T]) All() iter.Seq[T] {
	return seq(l.Iterator)
}

func (l *singlyLinkedList[T]) Foreach(fn func(idx int64, v T) error) error {
	return foreach(l.Iterator(), fn)
}

func (l *singlyLinkedList[T]) PrintList(w io.Writer) error {
	return printList(w, l.Iterator())
}
