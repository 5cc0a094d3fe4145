package list

import (
	"strconv"
)

// nilIdx is the "none" link.
const nilIdx int32 = -1

type listNode[T comparable] struct {
	next, prev int32 // prev is only maintained by the doubly linked list
	gen        uint32 // wraps after 2^32 reuses of one slot, a stale handle from that far back resolves again
	inUse      bool
	value      T // It should be placed at the end of the struct to avoid taking too much padding.
}

// Handle identifies a node of one list.
// The zero Handle refers to no node.
// A Handle turns invalid once its node is removed, even if the
// underlying slot is reused by a later insertion.
type Handle struct {
	listID uint64
	idx    int32
	gen    uint32
}

func (h Handle) IsNil() bool {
	return h.listID == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "handle(nil)"
	}
	return "handle(" + strconv.FormatUint(h.listID, 10) + ":" +
		strconv.FormatInt(int64(h.idx), 10) + "@" +
		strconv.FormatUint(uint64(h.gen), 10) + ")"
}
