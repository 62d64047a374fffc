package atomic

import (
	"sync/atomic"
	"unsafe"
)

// Queue is a lock-free multi-producer/multi-consumer FIFO (spec §3,
// "Queue root"). Its three concerns — the release-callback metadata,
// head, and tail — are laid out on separate cache lines: producers
// write tail, consumers write head, and the callback metadata is
// read-mostly. Collapsing that separation is, per spec §3, "the
// dominant performance failure."
//
// A Queue must not be copied after Init.
type Queue[T any] struct {
	release    ReleaseFunc[T]
	releaseArg any
	capHint    int64 // advisory only; see SetCapacityHint
	_          cellPad

	head Cell[Node[T]]
	_    cellPad

	tail Cell[Node[T]]
	_    cellPad
}

// Init prepares an empty queue. dummy becomes the queue's sentinel
// head node; it is never handed back to a caller as a dequeued value.
// Both q and dummy must be 16-byte aligned, and dummy must already
// have been through ElementInit. release must be non-nil: it is the
// only way a node is ever reclaimed (spec §4.6, §6).
func (q *Queue[T]) Init(dummy *Node[T], release ReleaseFunc[T], arg any) {
	requireAligned("Queue.Init", unsafe.Pointer(q))
	requireAligned("Queue.Init", unsafe.Pointer(dummy))
	if release == nil {
		panic(&PreconditionError{Op: "Queue.Init", Msg: "release callback must not be nil"})
	}

	q.release = release
	q.releaseArg = arg

	// The initial dummy is never returned to a caller, so it only
	// needs the dequeuer's acknowledgement to be reclaimed: its
	// handshake bit starts pre-set (spec §4.4).
	dummy.next.init(nil, handshakeBit)

	q.head.init(dummy, 0)
	q.tail.init(dummy, 0)
}

// NewQueue allocates a 16-byte-aligned queue, allocates and
// ElementInits a dummy node for it, and initializes it in one step.
func NewQueue[T any](release ReleaseFunc[T], arg any) *Queue[T] {
	q := alignedAlloc[Queue[T]]()
	dummy := NewNode[T]()
	q.Init(dummy, release, arg)
	return q
}

// NewNode allocates a 16-byte-aligned, ElementInit'd node ready for
// Enqueue. The zero value of T is used as Value; set Value after
// construction.
func NewNode[T any]() *Node[T] {
	n := alignedAlloc[Node[T]]()
	ElementInit(n)
	return n
}

// Free drains every remaining node, invoking the release callback on
// each, then zeroes the queue. The caller must ensure no producer or
// consumer is concurrently active — Free performs no fencing against
// concurrent misuse, by design (spec §4.6, §9): quiescing traffic
// first (e.g. via sentinel shutdown messages) is the caller's job.
func (q *Queue[T]) Free() {
	for {
		h := q.head.Load()
		if h.Ptr == nil {
			break
		}
		n := h.Ptr.next.Load()
		if n.Ptr == nil {
			q.release(q.releaseArg, h.Ptr)
			break
		}
		q.release(q.releaseArg, h.Ptr)
		q.head.init(n.Ptr, h.Ctr+1)
	}
	q.head.init(nil, 0)
	q.tail.init(nil, 0)
	q.release = nil
	q.releaseArg = nil
}

// SetCapacityHint records an advisory upper bound a producer may wish
// to respect (spec §1: "an upper-bound hint is exposed but not
// enforced"). Enqueue never consults it and never rejects; it exists
// for callers — such as cmd/lfbench's backpressure loop — that want
// to self-throttle using Queued().
func (q *Queue[T]) SetCapacityHint(n int64) {
	atomic.StoreInt64(&q.capHint, n)
}

// CapacityHint returns the value last set by SetCapacityHint, or 0 if
// none was set.
func (q *Queue[T]) CapacityHint() int64 {
	return atomic.LoadInt64(&q.capHint)
}
