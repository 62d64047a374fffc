package atomic

import "unsafe"

// Enqueue appends a single node to the tail of the queue and returns
// the current upper-bound length (spec §4.3, §4.5). node must be
// 16-byte aligned, must have been through ElementInit, and must not
// currently have its reclamation handshake bit set. Enqueue never
// fails: the queue is unbounded.
func (q *Queue[T]) Enqueue(node *Node[T]) int64 {
	return q.EnqueueChain(node, node)
}

// EnqueueChain appends a null-terminated chain of nodes, first
// through last (inclusive, last.next must already be nil), as a
// single logical operation and returns the resulting upper-bound
// length. Every node in the chain must satisfy Enqueue's
// preconditions.
func (q *Queue[T]) EnqueueChain(first, last *Node[T]) int64 {
	requireAligned("Queue.EnqueueChain", unsafe.Pointer(first))
	requireAligned("Queue.EnqueueChain", unsafe.Pointer(last))

	count := uint64(0)
	for n := first; n != nil; n = n.next.Load().Ptr {
		requireAligned("Queue.EnqueueChain", unsafe.Pointer(n))
		if n.next.Load().Ctr&handshakeBit != 0 {
			panic(&PreconditionError{Op: "Queue.EnqueueChain", Msg: "node's reclamation handshake bit is already set"})
		}
		count++
		if n == last {
			break
		}
	}

	var observedTail *TP[Node[T]]
	for {
		t := q.tail.Load()
		n := t.Ptr.next.Load()

		if t != q.tail.Load() {
			continue
		}

		if n.Ptr == nil {
			// We are at the true tail: stamp the new chain's last
			// node with the tail's current counter before linking it
			// in, so a (nil, 0) -> (first, 1) race is distinguishable
			// from any other producer's identical-looking attempt
			// (spec §4.3 step 3a).
			last.next.init(nil, t.Ctr)
			if t.Ptr.next.CAS(n, first, 1) {
				observedTail = t
				break
			}
		} else {
			// Tail is lagging behind the true last node; help it
			// along and retry from the top (spec §4.3 step 4).
			q.tail.CAS(t, n.Ptr, 1)
		}
	}

	// Try to swing tail to the node we just linked in; ignore the
	// outcome; some other producer or consumer may already have
	// helped it along (spec §4.3 step 5).
	q.tail.CAS(observedTail, last, count)
	return int64(q.tail.Load().Ctr - q.head.Load().Ctr)
}
