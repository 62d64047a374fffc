// Copyright 2022 MaoLongLong. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package atomic implements a lock-free multi-producer/multi-consumer
FIFO queue and a lock-free LIFO stack, both built on a tagged-pointer
compare-and-swap primitive that carries a monotonic counter alongside
every pointer update.

The queue follows the Michael-Scott non-blocking queue algorithm:

	https://www.cs.rochester.edu/research/synchronization/pseudocode/queues.html

extended with a two-party reclamation handshake between the dequeuer
and the caller, so that a dequeued node's payload can be read by the
caller before the node is returned for reuse via a caller-supplied
release callback. The queue and stack operations never allocate or
free node memory — nodes are intrusive, caller-owned values embedding a
Node[T]; NewNode, NewStackNode and NewSentinel are convenience
allocators for them.

Go has no 128-bit compare-and-swap instruction and gives no portable
control over 16-byte value alignment, so the tagged pointer is
rendered as an immutable (ptr, counter) box swapped atomically by
address via atomic.Pointer[T]; see Cell for the details. Every
mutation of a Cell advances its counter monotonically, which is the
whole of the ABA defense described by the algorithm above.

The stack is a simpler peer built on the same Cell primitive: a single
tagged head, with plain (untagged) next links on its nodes.

None of the types in this package do any I/O, take any lock, or block.
Dequeue on an empty queue returns immediately; callers that want to
wait poll it themselves.
*/
package atomic
