package collections

import (
	"fmt"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
)

// ArrayDeque - A double ended queue of fixed length byte elements backed by a
// circular byte slab. Capacity is kept a power of two so ring positions can be
// selected with a mask, growth doubles the slab and linearizes the ring.
type ArrayDeque struct {
	buf           []byte
	head          int
	size          int
	capacity      int
	elementLength int
	freeFunc      blobfunc.FreeFunc
	modCount      uint64
	freed         bool
}

// NewArrayDeque - Returns a pointer to a new ArrayDeque instance.
//   - elementLength is the fixed length of elements to store
//   - initialCapacity is the number of element slots to preallocate, rounded up to a power of two, 0 (zero) selects the default
//   - freeFunc is an optional destructor invoked when an element leaves the deque
//
// It returns:
//   - deque which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewArrayDeque(elementLength, initialCapacity int, freeFunc blobfunc.FreeFunc) (deque *ArrayDeque, err error) {
	// Check if the element length is valid
	if elementLength <= 0 {
		err = fmt.Errorf("element length must be a positive value higher than 0 (zero)")
		return
	}
	if initialCapacity < 0 {
		err = fmt.Errorf("initial capacity must not be negative")
		return
	}

	capacity := DefaultArrayCapacity
	for capacity < initialCapacity {
		capacity <<= 1
	}

	deque = &ArrayDeque{
		buf:           make([]byte, elementLength*capacity),
		capacity:      capacity,
		elementLength: elementLength,
		freeFunc:      freeFunc,
	}

	return
}

// Size - Returns the number of elements in the deque
func (D *ArrayDeque) Size() int {
	return D.size
}

// IsEmpty - Returns whether the deque holds no elements
func (D *ArrayDeque) IsEmpty() bool {
	return D.size == 0
}

// slotAt - Returns the in-slab byte window of the element at logical position i,
// where position 0 (zero) is the front
func (D *ArrayDeque) slotAt(i int) []byte {
	offset := ((D.head + i) & (D.capacity - 1)) * D.elementLength
	return D.buf[offset : offset+D.elementLength]
}

// checkElement - Validates element length and that the deque is still usable
func (D *ArrayDeque) checkElement(element []byte) (err error) {
	if D.freed {
		err = fmt.Errorf("deque has been freed")
		return
	}
	if len(element) != D.elementLength {
		err = fmt.Errorf("wrong length of element, should be %d", D.elementLength)
		return
	}

	return
}

// PushFront - Inserts element before the current front.
//   - element is the bytes to store, it has to be of same length as given in call to NewArrayDeque
func (D *ArrayDeque) PushFront(element []byte) (err error) {
	if err = D.checkElement(element); err != nil {
		return
	}

	D.grow()
	D.head = (D.head - 1) & (D.capacity - 1)
	copy(D.buf[D.head*D.elementLength:(D.head+1)*D.elementLength], element)
	D.size++
	D.modCount++

	return
}

// PushBack - Appends element after the current back.
//   - element is the bytes to store, it has to be of same length as given in call to NewArrayDeque
func (D *ArrayDeque) PushBack(element []byte) (err error) {
	if err = D.checkElement(element); err != nil {
		return
	}

	D.grow()
	copy(D.slotAt(D.size), element)
	D.size++
	D.modCount++

	return
}

// PopFront - Removes and returns the front element, invoking the free callback
// after the returned copy is taken.
//
// It returns:
//   - element is a copy of the removed element
//   - err is of type crt.EmptyContainer if the deque holds no elements
func (D *ArrayDeque) PopFront() (element []byte, err error) {
	if D.size == 0 {
		err = crt.EmptyContainer{}
		return
	}

	slot := D.slotAt(0)
	element = cloneOut(slot)
	if D.freeFunc != nil {
		D.freeFunc(slot)
	}
	D.head = (D.head + 1) & (D.capacity - 1)
	D.size--
	D.modCount++

	return
}

// PopBack - Removes and returns the back element, invoking the free callback
// after the returned copy is taken.
//
// It returns:
//   - element is a copy of the removed element
//   - err is of type crt.EmptyContainer if the deque holds no elements
func (D *ArrayDeque) PopBack() (element []byte, err error) {
	if D.size == 0 {
		err = crt.EmptyContainer{}
		return
	}

	slot := D.slotAt(D.size - 1)
	element = cloneOut(slot)
	if D.freeFunc != nil {
		D.freeFunc(slot)
	}
	D.size--
	D.modCount++

	return
}

// PeekFront - Returns a copy of the front element without removing it.
//
// It returns:
//   - element is a copy of the front element
//   - err is of type crt.EmptyContainer if the deque holds no elements
func (D *ArrayDeque) PeekFront() (element []byte, err error) {
	if D.size == 0 {
		err = crt.EmptyContainer{}
		return
	}

	element = cloneOut(D.slotAt(0))

	return
}

// PeekBack - Returns a copy of the back element without removing it.
//
// It returns:
//   - element is a copy of the back element
//   - err is of type crt.EmptyContainer if the deque holds no elements
func (D *ArrayDeque) PeekBack() (element []byte, err error) {
	if D.size == 0 {
		err = crt.EmptyContainer{}
		return
	}

	element = cloneOut(D.slotAt(D.size - 1))

	return
}

// Get - Returns a copy of the element at logical position index, where
// position 0 (zero) is the front.
//
// It returns:
//   - element is a copy of the stored bytes
//   - err is of type crt.OutOfBounds if index is outside the valid range
func (D *ArrayDeque) Get(index int) (element []byte, err error) {
	if index < 0 || index >= D.size {
		err = crt.OutOfBounds{}
		return
	}

	element = cloneOut(D.slotAt(index))

	return
}

// ForEach - Invokes visit with a copy of every element from front to back
func (D *ArrayDeque) ForEach(visit func(element []byte)) {
	for i := 0; i < D.size; i++ {
		visit(cloneOut(D.slotAt(i)))
	}
}

// Clear - Removes all elements (invoking free callbacks) while keeping the
// deque usable and its capacity retained
func (D *ArrayDeque) Clear() {
	if D.freeFunc != nil {
		for i := 0; i < D.size; i++ {
			D.freeFunc(D.slotAt(i))
		}
	}
	D.head = 0
	D.size = 0
	D.modCount++
}

// Free - Releases all elements and the backing slab. The deque must not be
// used afterwards. Calling Free again is a no-op.
func (D *ArrayDeque) Free() {
	if D.freed {
		return
	}

	D.Clear()
	D.buf = nil
	D.capacity = 0
	D.freed = true
}

// removeAt - Removes the element at logical position index, shifting subsequent
// elements one position towards the front
func (D *ArrayDeque) removeAt(index int) {
	if D.freeFunc != nil {
		D.freeFunc(D.slotAt(index))
	}
	for j := index; j < D.size-1; j++ {
		copy(D.slotAt(j), D.slotAt(j+1))
	}
	D.size--
	D.modCount++
}

// grow - Doubles the slab when the ring is full, linearizing elements so the
// front lands on slot 0 (zero)
func (D *ArrayDeque) grow() {
	if D.size < D.capacity {
		return
	}

	newCapacity := D.capacity * 2
	newBuf := make([]byte, newCapacity*D.elementLength)
	for i := 0; i < D.size; i++ {
		copy(newBuf[i*D.elementLength:(i+1)*D.elementLength], D.slotAt(i))
	}
	D.buf = newBuf
	D.capacity = newCapacity
	D.head = 0
}

// ArrayDequeIterator - Produces the elements of an ArrayDeque from front to
// back and supports removing the element last returned by Next.
type ArrayDequeIterator struct {
	deque     *ArrayDeque
	nextIndex int
	lastIndex int
	modCount  uint64
}

// Iterator - Returns a cursor positioned at the front element
func (D *ArrayDeque) Iterator() *ArrayDequeIterator {
	return &ArrayDequeIterator{
		deque:     D,
		lastIndex: -1,
		modCount:  D.modCount,
	}
}

// HasNext - Returns true if there are more elements to be fetched from a call to Next
func (I *ArrayDequeIterator) HasNext() bool {
	return I.nextIndex < I.deque.size
}

// Next - Returns a copy of the next element and remembers it as last returned.
//
// It returns:
//   - element is a copy of the produced element
//   - err is of type crt.IteratorExhausted when the sequence is consumed, or crt.StaleIterator if the deque was modified behind the iterator
func (I *ArrayDequeIterator) Next() (element []byte, err error) {
	if I.modCount != I.deque.modCount {
		err = crt.StaleIterator{}
		return
	}
	if I.nextIndex >= I.deque.size {
		err = crt.IteratorExhausted{}
		return
	}

	element = cloneOut(I.deque.slotAt(I.nextIndex))
	I.lastIndex = I.nextIndex
	I.nextIndex++

	return
}

// Remove - Erases the element last returned by Next from the deque. The cursor
// position is pulled back one slot so the following Next does not skip an element.
//
// It returns:
//   - err is of type crt.IteratorState if Next has not been called since Iterator or since the previous Remove, or crt.StaleIterator if the deque was modified behind the iterator
func (I *ArrayDequeIterator) Remove() (err error) {
	if I.modCount != I.deque.modCount {
		err = crt.StaleIterator{}
		return
	}
	if I.lastIndex < 0 {
		err = crt.IteratorState{}
		return
	}

	I.deque.removeAt(I.lastIndex)
	I.nextIndex = I.lastIndex
	I.lastIndex = -1
	I.modCount = I.deque.modCount

	return
}
