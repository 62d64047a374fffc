package atomic

// cacheLineSize is the assumed platform cache-line size used to pad
// the queue root so producers (writing tail), consumers (writing
// head), and the read-mostly release-callback metadata never share a
// line. Like gsingh-ds-go-lock-free-ring-buffer's node_based.go, this
// is a contract on false-sharing avoidance, not a guarantee tied to
// any specific architecture (spec §9, "Cache-line padding").
const cacheLineSize = 64

// cellPad is the padding needed after one Cell[T] field (one machine
// word, the size of the atomic.Pointer it wraps) to fill out a cache
// line.
type cellPad [cacheLineSize - 8]byte
