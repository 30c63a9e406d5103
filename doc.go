// Package collections provides a family of sixteen container types over fixed
// length byte elements: dynamic array, array backed deque/stack/queue, doubly
// linked list and its stack/queue wrappers, chained hash map/set, insertion
// ordered hash map/set, red-black tree map/set, binary heap priority queue,
// fixed capacity circular buffer and a linear scan flat set.
//
// Every stored element, key and value is an opaque byte slice of a fixed
// length declared at construction time. Containers copy bytes in on insert and
// copy bytes out on read, they never retain or hand out internal storage. All
// interpretation of element bytes goes through caller supplied hash, compare,
// equals and free functions (see package blobfunc for the function types and
// defaults for primitive encodings).
//
// Fallible operations return an error from package crt with a static
// descriptive message. Exhausted iterators report crt.IteratorExhausted, which
// is the normal loop termination signal and not a failure.
//
// The containers perform no internal locking. Concurrent access to the same
// container from multiple goroutines requires external synchronization.
package collections

// cloneOut - Returns a fresh copy of b so internal storage is never aliased to callers
func cloneOut(b []byte) (c []byte) {
	c = make([]byte, len(b))
	copy(c, b)

	return
}
