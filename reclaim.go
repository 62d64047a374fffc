package atomic

// ElementRelease declares that the caller is done reading node's
// payload after a successful Dequeue. It must be called exactly once
// per dequeued node (never on the node last returned to Free, and
// never on a node the caller never received from Dequeue).
//
// This is the other half of the reclamation handshake started by
// Dequeue (spec §4.4): both sides flip the same bit on node's next
// cell, and whichever of the two flips observes the bit already set
// is the one that runs the release callback. The two events — the
// dequeuer advancing past a node, and the caller declaring it done —
// can happen in either order; exactly one of the two callers below
// (this one, or the dequeuer in queue_dequeue.go) performs the
// callback, never both, never neither.
func (q *Queue[T]) ElementRelease(node *Node[T]) {
	if toggleHandshake(&node.next) {
		q.release(q.releaseArg, node)
	}
}
