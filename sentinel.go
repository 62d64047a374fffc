package atomic

// NewSentinel allocates and initializes a distinct node suitable for
// use as a shutdown marker enqueued once per consumer, so that a
// producer requesting shutdown never needs to reuse the queue's
// initial dummy for a payload-carrying purpose (spec §9, "Open
// questions" — "the source's test fixture creates fresh sentinels
// rather than reusing the dummy"). The caller distinguishes a
// sentinel from a regular payload node however it likes (typically a
// dedicated Value, e.g. a zero value plus a side flag).
func NewSentinel[T any]() *Node[T] {
	return NewNode[T]()
}
