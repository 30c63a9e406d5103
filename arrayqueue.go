package collections

import (
	"github.com/gostonefire/collections/blobfunc"
)

// ArrayQueue - A FIFO queue of fixed length byte elements, a thin wrapper over
// ArrayDeque enqueueing at the back and dequeueing at the front.
type ArrayQueue struct {
	deque *ArrayDeque
}

// NewArrayQueue - Returns a pointer to a new ArrayQueue instance.
//   - elementLength is the fixed length of elements to store
//   - initialCapacity is the number of element slots to preallocate, 0 (zero) selects the default
//   - freeFunc is an optional destructor invoked when an element leaves the queue
//
// It returns:
//   - queue which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewArrayQueue(elementLength, initialCapacity int, freeFunc blobfunc.FreeFunc) (queue *ArrayQueue, err error) {
	deque, err := NewArrayDeque(elementLength, initialCapacity, freeFunc)
	if err != nil {
		return
	}

	queue = &ArrayQueue{deque: deque}

	return
}

// Enqueue - Places element at the back of the queue
func (Q *ArrayQueue) Enqueue(element []byte) (err error) {
	return Q.deque.PushBack(element)
}

// Dequeue - Removes and returns the front element.
//
// It returns:
//   - element is a copy of the removed element
//   - err is of type crt.EmptyContainer if the queue holds no elements
func (Q *ArrayQueue) Dequeue() (element []byte, err error) {
	return Q.deque.PopFront()
}

// Peek - Returns a copy of the front element without removing it.
//
// It returns:
//   - element is a copy of the front element
//   - err is of type crt.EmptyContainer if the queue holds no elements
func (Q *ArrayQueue) Peek() (element []byte, err error) {
	return Q.deque.PeekFront()
}

// Size - Returns the number of elements in the queue
func (Q *ArrayQueue) Size() int {
	return Q.deque.Size()
}

// IsEmpty - Returns whether the queue holds no elements
func (Q *ArrayQueue) IsEmpty() bool {
	return Q.deque.IsEmpty()
}

// ForEach - Invokes visit with a copy of every element from front to back
func (Q *ArrayQueue) ForEach(visit func(element []byte)) {
	Q.deque.ForEach(visit)
}

// Clear - Removes all elements while keeping the queue usable
func (Q *ArrayQueue) Clear() {
	Q.deque.Clear()
}

// Free - Releases all elements and the backing storage. The queue must not be
// used afterwards. Calling Free again is a no-op.
func (Q *ArrayQueue) Free() {
	Q.deque.Free()
}

// Iterator - Returns a cursor over the queue from front to back. The cursor
// supports removing the element last returned by Next.
func (Q *ArrayQueue) Iterator() *ArrayDequeIterator {
	return Q.deque.Iterator()
}
