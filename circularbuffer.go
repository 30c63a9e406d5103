package collections

import (
	"fmt"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
)

// CircularBuffer - A fixed capacity ring buffer of fixed length byte elements.
// The buffer never grows, writing into a full buffer fails with crt.BufferFull.
// Elements are consumed oldest first.
type CircularBuffer struct {
	buf           []byte
	head          int
	size          int
	capacity      int
	elementLength int
	freeFunc      blobfunc.FreeFunc
	modCount      uint64
	freed         bool
}

// NewCircularBuffer - Returns a pointer to a new CircularBuffer instance.
//   - elementLength is the fixed length of elements to store
//   - capacity is the fixed number of element slots, it has to be a positive value
//   - freeFunc is an optional destructor invoked when an element leaves the buffer
//
// It returns:
//   - buffer which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewCircularBuffer(elementLength, capacity int, freeFunc blobfunc.FreeFunc) (buffer *CircularBuffer, err error) {
	// Check if the element length is valid
	if elementLength <= 0 {
		err = fmt.Errorf("element length must be a positive value higher than 0 (zero)")
		return
	}

	// A ring without slots can never hold anything, reject it up front
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	buffer = &CircularBuffer{
		buf:           make([]byte, elementLength*capacity),
		capacity:      capacity,
		elementLength: elementLength,
		freeFunc:      freeFunc,
	}

	return
}

// Size - Returns the number of elements in the buffer
func (B *CircularBuffer) Size() int {
	return B.size
}

// Capacity - Returns the fixed number of element slots
func (B *CircularBuffer) Capacity() int {
	return B.capacity
}

// IsEmpty - Returns whether the buffer holds no elements
func (B *CircularBuffer) IsEmpty() bool {
	return B.size == 0
}

// IsFull - Returns whether every slot is occupied
func (B *CircularBuffer) IsFull() bool {
	return B.size == B.capacity
}

// slotAt - Returns the in-slab byte window of the element at logical position i,
// where position 0 (zero) is the oldest element
func (B *CircularBuffer) slotAt(i int) []byte {
	offset := ((B.head + i) % B.capacity) * B.elementLength
	return B.buf[offset : offset+B.elementLength]
}

// Enqueue - Appends element after the newest element.
//   - element is the bytes to store, it has to be of same length as given in call to NewCircularBuffer
//
// It returns:
//   - err is of type crt.BufferFull if every slot is occupied
func (B *CircularBuffer) Enqueue(element []byte) (err error) {
	if B.freed {
		err = fmt.Errorf("buffer has been freed")
		return
	}
	if len(element) != B.elementLength {
		err = fmt.Errorf("wrong length of element, should be %d", B.elementLength)
		return
	}
	if B.size == B.capacity {
		err = crt.BufferFull{}
		return
	}

	copy(B.slotAt(B.size), element)
	B.size++
	B.modCount++

	return
}

// Dequeue - Removes and returns the oldest element, invoking the free callback
// after the returned copy is taken.
//
// It returns:
//   - element is a copy of the removed element
//   - err is of type crt.EmptyContainer if the buffer holds no elements
func (B *CircularBuffer) Dequeue() (element []byte, err error) {
	if B.size == 0 {
		err = crt.EmptyContainer{}
		return
	}

	slot := B.slotAt(0)
	element = cloneOut(slot)
	if B.freeFunc != nil {
		B.freeFunc(slot)
	}
	B.head = (B.head + 1) % B.capacity
	B.size--
	B.modCount++

	return
}

// Peek - Returns a copy of the oldest element without removing it.
//
// It returns:
//   - element is a copy of the oldest element
//   - err is of type crt.EmptyContainer if the buffer holds no elements
func (B *CircularBuffer) Peek() (element []byte, err error) {
	if B.size == 0 {
		err = crt.EmptyContainer{}
		return
	}

	element = cloneOut(B.slotAt(0))

	return
}

// ForEach - Invokes visit with a copy of every element from oldest to newest
func (B *CircularBuffer) ForEach(visit func(element []byte)) {
	for i := 0; i < B.size; i++ {
		visit(cloneOut(B.slotAt(i)))
	}
}

// Clear - Removes all elements (invoking free callbacks) while keeping the
// buffer usable
func (B *CircularBuffer) Clear() {
	if B.freeFunc != nil {
		for i := 0; i < B.size; i++ {
			B.freeFunc(B.slotAt(i))
		}
	}
	B.head = 0
	B.size = 0
	B.modCount++
}

// Free - Releases all elements and the backing slab. The buffer must not be
// used afterwards. Calling Free again is a no-op.
func (B *CircularBuffer) Free() {
	if B.freed {
		return
	}

	B.Clear()
	B.buf = nil
	B.capacity = 0
	B.freed = true
}

// removeAt - Removes the element at logical position index, shifting subsequent
// elements one position towards the head
func (B *CircularBuffer) removeAt(index int) {
	if B.freeFunc != nil {
		B.freeFunc(B.slotAt(index))
	}
	for j := index; j < B.size-1; j++ {
		copy(B.slotAt(j), B.slotAt(j+1))
	}
	B.size--
	B.modCount++
}

// CircularBufferIterator - Produces the elements of a CircularBuffer from
// oldest to newest and supports removing the element last returned by Next.
type CircularBufferIterator struct {
	buffer    *CircularBuffer
	nextIndex int
	lastIndex int
	modCount  uint64
}

// Iterator - Returns a cursor positioned at the oldest element
func (B *CircularBuffer) Iterator() *CircularBufferIterator {
	return &CircularBufferIterator{
		buffer:    B,
		lastIndex: -1,
		modCount:  B.modCount,
	}
}

// HasNext - Returns true if there are more elements to be fetched from a call to Next
func (I *CircularBufferIterator) HasNext() bool {
	return I.nextIndex < I.buffer.size
}

// Next - Returns a copy of the next element and remembers it as last returned.
//
// It returns:
//   - element is a copy of the produced element
//   - err is of type crt.IteratorExhausted when the sequence is consumed, or crt.StaleIterator if the buffer was modified behind the iterator
func (I *CircularBufferIterator) Next() (element []byte, err error) {
	if I.modCount != I.buffer.modCount {
		err = crt.StaleIterator{}
		return
	}
	if I.nextIndex >= I.buffer.size {
		err = crt.IteratorExhausted{}
		return
	}

	element = cloneOut(I.buffer.slotAt(I.nextIndex))
	I.lastIndex = I.nextIndex
	I.nextIndex++

	return
}

// Remove - Erases the element last returned by Next from the buffer. The
// cursor position is pulled back one slot so the following Next does not skip
// an element.
//
// It returns:
//   - err is of type crt.IteratorState if Next has not been called since Iterator or since the previous Remove, or crt.StaleIterator if the buffer was modified behind the iterator
func (I *CircularBufferIterator) Remove() (err error) {
	if I.modCount != I.buffer.modCount {
		err = crt.StaleIterator{}
		return
	}
	if I.lastIndex < 0 {
		err = crt.IteratorState{}
		return
	}

	I.buffer.removeAt(I.lastIndex)
	I.nextIndex = I.lastIndex
	I.lastIndex = -1
	I.modCount = I.buffer.modCount

	return
}
