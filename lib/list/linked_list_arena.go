package list

import (
	"github.com/samber/lo"

	"github.com/benz9527/xlist/lib/id"
	"github.com/benz9527/xlist/lib/infra"
)

// Every list draws its own identity, handles carry it to reject
// foreign nodes.
var listIDGen = lo.Must(id.MonotonicNonZeroID())

// nodeArena owns all nodes of one list. Links between nodes are slot
// indices, so there is no pointer cycle between a node and its
// predecessor. Released slots are recycled through the free list.
type nodeArena[T comparable] struct {
	nodes  []listNode[T]
	free   []int32
	listID uint64
	ver    uint64 // structural version, bumped by alloc and release
}

func newNodeArena[T comparable]() *nodeArena[T] {
	return &nodeArena[T]{
		listID: listIDGen.Number(),
	}
}

// alloc returns the slot of a detached node holding v.
// Pointers from at() must not be kept across alloc, the slice may grow.
func (a *nodeArena[T]) alloc(v T) int32 {
	a.ver++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		node := &a.nodes[idx]
		node.value = v
		node.next, node.prev = nilIdx, nilIdx
		node.inUse = true
		return idx
	}
	a.nodes = append(a.nodes, listNode[T]{
		next:  nilIdx,
		prev:  nilIdx,
		inUse: true,
		value: v,
	})
	return int32(len(a.nodes) - 1)
}

// release frees the slot and invalidates every handle pointing at it.
func (a *nodeArena[T]) release(idx int32) T {
	a.ver++
	node := &a.nodes[idx]
	v := node.value
	// avoid memory leaks
	var zero T
	node.value = zero
	node.next, node.prev = nilIdx, nilIdx
	node.inUse = false
	node.gen++
	a.free = append(a.free, idx)
	return v
}

func (a *nodeArena[T]) at(idx int32) *listNode[T] {
	return &a.nodes[idx]
}

func (a *nodeArena[T]) handle(idx int32) Handle {
	if idx == nilIdx {
		return Handle{}
	}
	return Handle{
		listID: a.listID,
		idx:    idx,
		gen:    a.nodes[idx].gen,
	}
}

// resolve validates h against this arena and returns its slot.
func (a *nodeArena[T]) resolve(h Handle) (int32, error) {
	if h.IsNil() {
		return nilIdx, infra.WrapErrorStackWithMessage(ErrInvalidHandle, "nil handle")
	}
	if h.listID != a.listID || h.idx < 0 || int(h.idx) >= len(a.nodes) {
		return nilIdx, infra.WrapErrorStackWithMessage(ErrInvalidHandle, h.String()+" does not belong to the list")
	}
	if node := &a.nodes[h.idx]; !node.inUse || node.gen != h.gen {
		return nilIdx, infra.WrapErrorStackWithMessage(ErrInvalidHandle, h.String()+" refers to a removed node")
	}
	return h.idx, nil
}
