package collections

import (
	"fmt"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
)

// PriorityQueue - A binary min heap of fixed length byte elements backed by a
// byte slab. The element that compares smallest per the configured comparator
// is always at the root and is the one returned by Pop and Peek.
type PriorityQueue struct {
	buf           []byte
	size          int
	elementLength int
	compareFunc   blobfunc.CompareFunc
	freeFunc      blobfunc.FreeFunc
	swapBuf       []byte
	modCount      uint64
	freed         bool
}

// NewPriorityQueue - Returns a pointer to a new PriorityQueue instance.
//   - elementLength is the fixed length of elements to store
//   - initialCapacity is the number of element slots to preallocate, 0 (zero) selects the default
//   - compareFunc is the total order over elements, it is mandatory
//   - freeFunc is an optional destructor invoked when an element leaves the queue
//
// It returns:
//   - queue which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewPriorityQueue(elementLength, initialCapacity int, compareFunc blobfunc.CompareFunc, freeFunc blobfunc.FreeFunc) (queue *PriorityQueue, err error) {
	// Check if the element length is valid
	if elementLength <= 0 {
		err = fmt.Errorf("element length must be a positive value higher than 0 (zero)")
		return
	}
	if initialCapacity < 0 {
		err = fmt.Errorf("initial capacity must not be negative")
		return
	}

	// Check that a comparator was given, there is no default for ordered containers
	if compareFunc == nil {
		err = fmt.Errorf("compare function is mandatory for priority queues")
		return
	}

	if initialCapacity == 0 {
		initialCapacity = DefaultArrayCapacity
	}

	queue = &PriorityQueue{
		buf:           make([]byte, elementLength*initialCapacity),
		elementLength: elementLength,
		compareFunc:   compareFunc,
		freeFunc:      freeFunc,
		swapBuf:       make([]byte, elementLength),
	}

	return
}

// Size - Returns the number of elements in the queue
func (Q *PriorityQueue) Size() int {
	return Q.size
}

// IsEmpty - Returns whether the queue holds no elements
func (Q *PriorityQueue) IsEmpty() bool {
	return Q.size == 0
}

// slot - Returns the in-slab byte window of heap slot i
func (Q *PriorityQueue) slot(i int) []byte {
	offset := i * Q.elementLength
	return Q.buf[offset : offset+Q.elementLength]
}

// Push - Adds element to the heap, sifting it up to its position.
//   - element is the bytes to store, it has to be of same length as given in call to NewPriorityQueue
func (Q *PriorityQueue) Push(element []byte) (err error) {
	if Q.freed {
		err = fmt.Errorf("queue has been freed")
		return
	}
	if len(element) != Q.elementLength {
		err = fmt.Errorf("wrong length of element, should be %d", Q.elementLength)
		return
	}

	Q.grow(Q.size + 1)
	copy(Q.slot(Q.size), element)
	Q.size++
	Q.siftUp(Q.size - 1)
	Q.modCount++

	return
}

// Pop - Removes and returns the smallest element per the comparator, moving the
// last heap slot to the root and sifting it down. The free callback is invoked
// after the returned copy is taken.
//
// It returns:
//   - element is a copy of the removed element
//   - err is of type crt.EmptyContainer if the queue holds no elements
func (Q *PriorityQueue) Pop() (element []byte, err error) {
	if Q.size == 0 {
		err = crt.EmptyContainer{}
		return
	}

	root := Q.slot(0)
	element = cloneOut(root)
	if Q.freeFunc != nil {
		Q.freeFunc(root)
	}
	Q.size--
	if Q.size > 0 {
		copy(root, Q.slot(Q.size))
		Q.siftDown(0)
	}
	Q.modCount++

	return
}

// Peek - Returns a copy of the smallest element without removing it.
//
// It returns:
//   - element is a copy of the root element
//   - err is of type crt.EmptyContainer if the queue holds no elements
func (Q *PriorityQueue) Peek() (element []byte, err error) {
	if Q.size == 0 {
		err = crt.EmptyContainer{}
		return
	}

	element = cloneOut(Q.slot(0))

	return
}

// ForEach - Invokes visit with a copy of every element in heap array order.
// Heap array order is the internal slot layout, explicitly not priority order.
func (Q *PriorityQueue) ForEach(visit func(element []byte)) {
	for i := 0; i < Q.size; i++ {
		visit(cloneOut(Q.slot(i)))
	}
}

// Clear - Removes all elements (invoking free callbacks) while keeping the
// queue usable and its capacity retained
func (Q *PriorityQueue) Clear() {
	if Q.freeFunc != nil {
		for i := 0; i < Q.size; i++ {
			Q.freeFunc(Q.slot(i))
		}
	}
	Q.size = 0
	Q.modCount++
}

// Free - Releases all elements and the backing slab. The queue must not be
// used afterwards. Calling Free again is a no-op.
func (Q *PriorityQueue) Free() {
	if Q.freed {
		return
	}

	Q.Clear()
	Q.buf = nil
	Q.swapBuf = nil
	Q.freed = true
}

// siftUp - Moves the element in slot i towards the root until its parent is
// not larger
func (Q *PriorityQueue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if Q.compareFunc(Q.slot(i), Q.slot(parent)) >= 0 {
			break
		}
		Q.swap(i, parent)
		i = parent
	}
}

// siftDown - Moves the element in slot i towards the leaves until no child is
// smaller
func (Q *PriorityQueue) siftDown(i int) {
	for {
		left := 2*i + 1
		if left >= Q.size {
			break
		}
		smallest := left
		if right := left + 1; right < Q.size && Q.compareFunc(Q.slot(right), Q.slot(left)) < 0 {
			smallest = right
		}
		if Q.compareFunc(Q.slot(smallest), Q.slot(i)) >= 0 {
			break
		}
		Q.swap(i, smallest)
		i = smallest
	}
}

// swap - Exchanges the contents of heap slots i and j through the scratch buffer
func (Q *PriorityQueue) swap(i, j int) {
	copy(Q.swapBuf, Q.slot(i))
	copy(Q.slot(i), Q.slot(j))
	copy(Q.slot(j), Q.swapBuf)
}

// grow - Ensures the slab holds at least needed element slots
func (Q *PriorityQueue) grow(needed int) {
	capacity := len(Q.buf) / Q.elementLength
	if needed <= capacity {
		return
	}

	for capacity < needed {
		capacity *= 2
	}
	newBuf := make([]byte, capacity*Q.elementLength)
	copy(newBuf, Q.buf[:Q.size*Q.elementLength])
	Q.buf = newBuf
}

// PriorityQueueIterator - Produces the elements of a PriorityQueue in heap
// array order, explicitly not priority order. The iterator is read only:
// removing mid heap would re-heapify and reorder elements the cursor has not
// yet produced, so no Remove operation is provided.
type PriorityQueueIterator struct {
	queue     *PriorityQueue
	nextIndex int
	modCount  uint64
}

// Iterator - Returns a cursor positioned at heap slot 0 (zero)
func (Q *PriorityQueue) Iterator() *PriorityQueueIterator {
	return &PriorityQueueIterator{
		queue:    Q,
		modCount: Q.modCount,
	}
}

// HasNext - Returns true if there are more elements to be fetched from a call to Next
func (I *PriorityQueueIterator) HasNext() bool {
	return I.nextIndex < I.queue.size
}

// Next - Returns a copy of the next element in heap array order.
//
// It returns:
//   - element is a copy of the produced element
//   - err is of type crt.IteratorExhausted when the sequence is consumed, or crt.StaleIterator if the queue was modified behind the iterator
func (I *PriorityQueueIterator) Next() (element []byte, err error) {
	if I.modCount != I.queue.modCount {
		err = crt.StaleIterator{}
		return
	}
	if I.nextIndex >= I.queue.size {
		err = crt.IteratorExhausted{}
		return
	}

	element = cloneOut(I.queue.slot(I.nextIndex))
	I.nextIndex++

	return
}
