package atomic

import "unsafe"

// Node is the intrusive link every queue element embeds. The queue
// never allocates or wraps nodes: the caller owns storage for Node[T]
// (typically as the first field of a larger caller type, so that
// "the byte immediately following the tagged pointer is user-owned"
// per spec §3 holds by construction), and is responsible for giving
// it to ElementInit exactly once before the first Enqueue.
type Node[T any] struct {
	next  Cell[Node[T]]
	Value T
}

// ElementInit prepares a freshly allocated node for its first
// enqueue. It must be called exactly once per node, before the node
// is ever passed to Enqueue/EnqueueChain, and the node must be
// 16-byte aligned.
func ElementInit[T any](n *Node[T]) {
	requireAligned("ElementInit", unsafe.Pointer(n))
	n.next.init(nil, 0)
}

// Link sets n's successor in a chain being assembled for
// EnqueueChain. It must only be called before n is reachable from any
// queue (i.e. while the caller is privately building the chain), and
// n must already have been through ElementInit. The chain's last node
// must be left unlinked (its next stays nil) as the terminator.
func (n *Node[T]) Link(next *Node[T]) {
	n.next.init(next, n.next.Load().Ctr)
}

// ReleaseFunc is invoked exactly once per enqueued node, once both the
// dequeuer has advanced past it and the caller has released it (or,
// for the initial dummy, once the dequeuer alone has advanced past
// it — see reclaim.go). arg is the opaque value passed to Init.
type ReleaseFunc[T any] func(arg any, n *Node[T])
