package list

import (
	"errors"
	"io"
	"iter"
)

// Note that the linked lists are not thread safe.
// Callers sharing a list between goroutines have to synchronize by themselves.

var (
	ErrInvalidHandle          = errors.New("[linked-list] invalid node handle")
	ErrConcurrentModification = errors.New("[linked-list] list was modified during iteration")
)

// BasicLinkedList is the singly linked list interface.
type BasicLinkedList[T comparable] interface {
	Len() int64
	IsEmpty() bool
	// InsertAtStart inserts value v as the new head and returns its handle.
	InsertAtStart(v T) Handle
	// InsertAtLast walks to the tail and appends value v after it.
	InsertAtLast(v T) Handle
	// InsertAfter inserts value v immediately after the node referenced by at.
	// If at is the nil handle, the value v will not be inserted.
	// A handle not belonging to the list results in ErrInvalidHandle.
	InsertAfter(at Handle, v T) (Handle, error)
	// Search finds the first node (from head to tail) holding value v.
	Search(v T) (Handle, bool)
	// Front returns the handle of the head node.
	Front() (Handle, bool)
	// Next returns the handle of the node following h, the nil handle at the tail.
	Next(h Handle) (Handle, error)
	// Value returns the value held by the node referenced by h.
	Value(h Handle) (T, error)
	// DeleteFirst removes the head. It is a no-op for an empty list.
	DeleteFirst() (T, bool)
	// DeleteLast removes the tail. It is a no-op for an empty list.
	DeleteLast() (T, bool)
	// DeleteItem removes the first node holding value v.
	DeleteItem(v T) bool
	// Remove unlinks the node referenced by h and returns its value.
	Remove(h Handle) (T, error)
	// Iterator returns a fresh forward iterator positioned before the head.
	Iterator() *Iterator[T]
	// All is the range-over-func form of Iterator. It panics if the list
	// is structurally modified inside the loop body.
	All() iter.Seq[T]
	// Foreach traverses the list and executes function fn for each value.
	// If fn returns an error, the traversal stops and returns the error.
	Foreach(fn func(idx int64, v T) error) error
	// PrintList writes the values separated by spaces and ends with a newline.
	PrintList(w io.Writer) error
}

// LinkedList is the doubly linked list interface.
type LinkedList[T comparable] interface {
	BasicLinkedList[T]
	// Prev returns the handle of the node preceding h, the nil handle at the head.
	Prev(h Handle) (Handle, error)
	// ReverseIterator returns a fresh iterator walking from the tail to the head.
	ReverseIterator() *Iterator[T]
	// Backward is the range-over-func form of ReverseIterator.
	Backward() iter.Seq[T]
	// ReverseForeach iterates the list in reverse order, calling fn for each value.
	ReverseForeach(fn func(idx int64, v T) error) error
}
