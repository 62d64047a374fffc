package atomic

// Empty reports whether the queue was observed to have no elements
// beyond the dummy. This is advisory: it reads head, then
// head.Ptr.next, without re-verifying head hasn't moved in between, so
// a concurrent Dequeue can invalidate the answer before the caller
// observes it (spec §4.5, §9).
func (q *Queue[T]) Empty() bool {
	h := q.head.Load()
	return h.Ptr.next.Load().Ptr == nil
}

// Queued returns tail.Ctr - head.Ctr, an upper bound on the number of
// elements currently in the queue (spec §4.5). It can overstate the
// true length: a producer's tail-advance CAS can lag its next-link
// CAS, so the difference counts successful CAS updates on each side,
// not live nodes directly.
func (q *Queue[T]) Queued() int64 {
	return int64(q.tail.Load().Ctr - q.head.Load().Ctr)
}
