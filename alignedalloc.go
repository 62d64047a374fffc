package atomic

import "unsafe"

// alignedAlloc returns a zeroed, 16-byte-aligned *T. Go's allocator
// only guarantees a type's natural alignment (8 bytes for anything
// built from pointers and uint64s on every platform this package
// targets), so every constructor in this package that must hand back
// something satisfying the spec's 16-byte alignment precondition
// (root, dummy node, any node/stack-node a caller builds via these
// constructors) over-allocates and hands back an interior pointer at
// the next 16-byte boundary. The backing array is kept alive by that
// returned pointer for as long as anything reachable holds it — Go's
// garbage collector tracks interior pointers, not just slice/object
// headers.
//
// Callers that embed a Node[T]/StackNode[T]/Queue[T] inside their own
// struct and allocate that struct some other way are responsible for
// satisfying the alignment precondition themselves; requireAligned
// will catch it if they don't (spec §7, S7).
func alignedAlloc[T any]() *T {
	var zero T
	size := unsafe.Sizeof(zero)
	buf := make([]byte, size+alignment-1)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	offset := (alignment - addr%alignment) % alignment
	return (*T)(unsafe.Pointer(&buf[offset]))
}
