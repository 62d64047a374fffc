package atomic

// Dequeue removes and returns the node at the front of the queue.
// ok is false if the queue was observed empty; this is a normal
// result, not an error (spec §7). Dequeue never blocks.
//
// The returned node becomes the queue's new dummy: its payload is now
// visible to the caller, but the queue still holds the node in its
// internal chain as the sentinel until the next successful Dequeue
// advances past it (spec §3, "Lifecycle of a node", step 3).
func (q *Queue[T]) Dequeue() (node *Node[T], ok bool) {
	for {
		h := q.head.Load()
		t := q.tail.Load()
		n := h.Ptr.next.Load()

		if h != q.head.Load() {
			continue
		}

		if n.Ptr == nil {
			return nil, false
		}

		if h.Ptr == t.Ptr {
			// Tail is lagging; help it advance and retry (spec §4.4
			// step 4).
			q.tail.CAS(t, n.Ptr, 1)
			continue
		}

		if q.head.CAS(h, n.Ptr, 1) {
			q.releaseOldDummy(h.Ptr)
			return n.Ptr, true
		}
	}
}

// releaseOldDummy performs the dequeuer's half of the reclamation
// handshake (spec §4.4): flip old's handshake bit, and if the user's
// element-release half already flipped it first, run the release
// callback now. Otherwise leave reclamation to ElementRelease.
func (q *Queue[T]) releaseOldDummy(old *Node[T]) {
	if toggleHandshake(&old.next) {
		q.release(q.releaseArg, old)
	}
}
