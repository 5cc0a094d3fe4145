package list

import (
	"io"
	"iter"
)

var _ LinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

// doublyLinkedList owns the forward chain through next, prev is a
// non-owning back-reference.
// For two adjacent nodes A -> B, B.prev is A and the head's prev is
// nilIdx. Every mutation restores it before returning.
type doublyLinkedList[T comparable] struct {
	arena *nodeArena[T]
	head  int32
	len   int64
}

func NewDoublyLinkedList[T comparable]() LinkedList[T] {
	return &doublyLinkedList[T]{
		arena: newNodeArena[T](),
		head:  nilIdx,
	}
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *doublyLinkedList[T]) IsEmpty() bool {
	return l.head == nilIdx
}

func (l *doublyLinkedList[T]) InsertAtStart(v T) Handle {
	idx := l.arena.alloc(v)
	l.arena.at(idx).next = l.head
	if l.head != nilIdx {
		l.arena.at(l.head).prev = idx
	}
	l.head = idx
	l.len++
	return l.arena.handle(idx)
}

func (l *doublyLinkedList[T]) tail() int32 {
	if l.head == nilIdx {
		return nilIdx
	}
	iterator := l.head
	for next := l.arena.at(iterator).next; next != nilIdx; next = l.arena.at(iterator).next {
		iterator = next
	}
	return iterator
}

func (l *doublyLinkedList[T]) InsertAtLast(v T) Handle {
	last := l.tail()
	idx := l.arena.alloc(v)
	l.arena.at(idx).prev = last
	if last == nilIdx {
		l.head = idx
	} else {
		l.arena.at(last).next = idx
	}
	l.len++
	return l.arena.handle(idx)
}

func (l *doublyLinkedList[T]) InsertAfter(at Handle, v T) (Handle, error) {
	if at.IsNil() {
		return Handle{}, nil
	}
	atIdx, err := l.arena.resolve(at)
	if err != nil {
		return Handle{}, err
	}
	idx := l.arena.alloc(v)
	newE, atE := l.arena.at(idx), l.arena.at(atIdx)
	newE.prev, newE.next = atIdx, atE.next
	if atE.next != nilIdx {
		l.arena.at(atE.next).prev = idx
	}
	atE.next = idx
	l.len++
	return l.arena.handle(idx), nil
}

func (l *doublyLinkedList[T]) search(v T) int32 {
	for iterator := l.head; iterator != nilIdx; iterator = l.arena.at(iterator).next {
		if l.arena.at(iterator).value == v {
			return iterator
		}
	}
	return nilIdx
}

func (l *doublyLinkedList[T]) Search(v T) (Handle, bool) {
	target := l.search(v)
	return l.arena.handle(target), target != nilIdx
}

func (l *doublyLinkedList[T]) Front() (Handle, bool) {
	return l.arena.handle(l.head), l.head != nilIdx
}

func (l *doublyLinkedList[T]) Next(h Handle) (Handle, error) {
	idx, err := l.arena.resolve(h)
	if err != nil {
		return Handle{}, err
	}
	return l.arena.handle(l.arena.at(idx).next), nil
}

func (l *doublyLinkedList[T]) Prev(h Handle) (Handle, error) {
	idx, err := l.arena.resolve(h)
	if err != nil {
		return Handle{}, err
	}
	return l.arena.handle(l.arena.at(idx).prev), nil
}

func (l *doublyLinkedList[T]) Value(h Handle) (T, error) {
	idx, err := l.arena.resolve(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.arena.at(idx).value, nil
}

// unlink relinks the neighbours of target through its back-reference.
func (l *doublyLinkedList[T]) unlink(target int32) T {
	e := l.arena.at(target)
	prev, next := e.prev, e.next
	if prev != nilIdx {
		l.arena.at(prev).next = next
	}
	if next != nilIdx {
		l.arena.at(next).prev = prev
	}
	if target == l.head {
		l.head = next
	}
	l.len--
	return l.arena.release(target)
}

func (l *doublyLinkedList[T]) DeleteFirst() (T, bool) {
	if l.head == nilIdx {
		var zero T
		return zero, false
	}
	return l.unlink(l.head), true
}

// DeleteLast walks to the tail once; the predecessor is taken from the
// tail's back-reference.
func (l *doublyLinkedList[T]) DeleteLast() (T, bool) {
	if l.head == nilIdx {
		var zero T
		return zero, false
	}
	return l.unlink(l.tail()), true
}

func (l *doublyLinkedList[T]) DeleteItem(v T) bool {
	target := l.search(v)
	if target == nilIdx {
		return false
	}
	l.unlink(target)
	return true
}

func (l *doublyLinkedList[T]) Remove(h Handle) (T, error) {
	idx, err := l.arena.resolve(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.unlink(idx), nil
}

func (l *doublyLinkedList[T]) Iterator() *Iterator[T] {
	return newIterator(l.arena, l.head, false)
}

func (l *doublyLinkedList[T]) ReverseIterator() *Iterator[T] {
	return newIterator(l.arena, l.tail(), true)
}

func (l *doublyLinkedList[T]) All() iter.Seq[T] {
	return seq(l.Iterator)
}

func (l *doublyLinkedList[T]) Backward() iter.Seq[T] {
	return seq(l.ReverseIterator)
}

func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, v T) error) error {
	return foreach(l.Iterator(), fn)
}

func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, v T) error) error {
	return foreach(l.ReverseIterator(), fn)
}

func (l *doublyLinkedList[T]) PrintList(w io.Writer) error {
	return printList(w, l.Iterator())
}
