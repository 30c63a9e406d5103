package collections

import (
	"github.com/gostonefire/collections/blobfunc"
)

// ListQueue - A FIFO queue of fixed length byte elements, a thin wrapper over
// LinkedList enqueueing at the tail and dequeueing at the head.
type ListQueue struct {
	list *LinkedList
}

// NewListQueue - Returns a pointer to a new ListQueue instance.
//   - elementLength is the fixed length of elements to store
//   - freeFunc is an optional destructor invoked when an element leaves the queue
//
// It returns:
//   - queue which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewListQueue(elementLength int, freeFunc blobfunc.FreeFunc) (queue *ListQueue, err error) {
	list, err := NewLinkedList(elementLength, nil, freeFunc)
	if err != nil {
		return
	}

	queue = &ListQueue{list: list}

	return
}

// Enqueue - Places element at the back of the queue
func (Q *ListQueue) Enqueue(element []byte) (err error) {
	return Q.list.AddLast(element)
}

// Dequeue - Removes and returns the front element.
//
// It returns:
//   - element is a copy of the removed element
//   - err is of type crt.EmptyContainer if the queue holds no elements
func (Q *ListQueue) Dequeue() (element []byte, err error) {
	return Q.list.RemoveFirst()
}

// Peek - Returns a copy of the front element without removing it.
//
// It returns:
//   - element is a copy of the front element
//   - err is of type crt.EmptyContainer if the queue holds no elements
func (Q *ListQueue) Peek() (element []byte, err error) {
	return Q.list.GetFirst()
}

// Size - Returns the number of elements in the queue
func (Q *ListQueue) Size() int {
	return Q.list.Size()
}

// IsEmpty - Returns whether the queue holds no elements
func (Q *ListQueue) IsEmpty() bool {
	return Q.list.IsEmpty()
}

// ForEach - Invokes visit with a copy of every element from front to back
func (Q *ListQueue) ForEach(visit func(element []byte)) {
	Q.list.ForEach(visit)
}

// Clear - Removes all elements while keeping the queue usable
func (Q *ListQueue) Clear() {
	Q.list.Clear()
}

// Free - Releases every node. The queue must not be used afterwards. Calling
// Free again is a no-op.
func (Q *ListQueue) Free() {
	Q.list.Free()
}

// Iterator - Returns a cursor over the queue from front to back. The cursor
// supports removing the element last returned by Next.
func (Q *ListQueue) Iterator() *LinkedListIterator {
	return Q.list.Iterator()
}
