package collections

import (
	"fmt"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
)

// DefaultArrayCapacity - Number of element slots array backed containers start with
// when no initial capacity is given
const DefaultArrayCapacity = 16

// ArrayList - A dynamic array of fixed length byte elements backed by a single
// byte slab. Elements are addressed by slot index, growth doubles the slab.
type ArrayList struct {
	buf           []byte
	size          int
	elementLength int
	equalsFunc    blobfunc.EqualsFunc
	freeFunc      blobfunc.FreeFunc
	modCount      uint64
	freed         bool
}

// NewArrayList - Returns a pointer to a new ArrayList instance.
//   - elementLength is the fixed length of elements to store
//   - initialCapacity is the number of element slots to preallocate, 0 (zero) selects the default
//   - equalsFunc is the element equality function used by IndexOf and Contains, nil selects blobfunc.EqualsBytes
//   - freeFunc is an optional destructor invoked when an element leaves the list
//
// It returns:
//   - list which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewArrayList(elementLength, initialCapacity int, equalsFunc blobfunc.EqualsFunc, freeFunc blobfunc.FreeFunc) (list *ArrayList, err error) {
	// Check if the element length is valid
	if elementLength <= 0 {
		err = fmt.Errorf("element length must be a positive value higher than 0 (zero)")
		return
	}
	if initialCapacity < 0 {
		err = fmt.Errorf("initial capacity must not be negative")
		return
	}
	if initialCapacity == 0 {
		initialCapacity = DefaultArrayCapacity
	}
	if equalsFunc == nil {
		equalsFunc = blobfunc.EqualsBytes
	}

	list = &ArrayList{
		buf:           make([]byte, elementLength*initialCapacity),
		elementLength: elementLength,
		equalsFunc:    equalsFunc,
		freeFunc:      freeFunc,
	}

	return
}

// Size - Returns the number of elements in the list
func (L *ArrayList) Size() int {
	return L.size
}

// IsEmpty - Returns whether the list holds no elements
func (L *ArrayList) IsEmpty() bool {
	return L.size == 0
}

// slot - Returns the in-slab byte window of element slot i
func (L *ArrayList) slot(i int) []byte {
	offset := i * L.elementLength
	return L.buf[offset : offset+L.elementLength]
}

// checkElement - Validates element length and that the list is still usable
func (L *ArrayList) checkElement(element []byte) (err error) {
	if L.freed {
		err = fmt.Errorf("list has been freed")
		return
	}
	if len(element) != L.elementLength {
		err = fmt.Errorf("wrong length of element, should be %d", L.elementLength)
		return
	}

	return
}

// Add - Appends element at the end of the list, growing the slab if needed.
//   - element is the bytes to store, it has to be of same length as given in call to NewArrayList
func (L *ArrayList) Add(element []byte) (err error) {
	if err = L.checkElement(element); err != nil {
		return
	}

	L.grow(L.size + 1)
	copy(L.slot(L.size), element)
	L.size++
	L.modCount++

	return
}

// Insert - Inserts element at the given index, shifting subsequent elements one slot right.
//   - index is the slot to insert at, valid between 0 (zero) and Size inclusive
//   - element is the bytes to store, it has to be of same length as given in call to NewArrayList
//
// It returns:
//   - err is of type crt.OutOfBounds if index is outside the valid range
func (L *ArrayList) Insert(index int, element []byte) (err error) {
	if err = L.checkElement(element); err != nil {
		return
	}
	if index < 0 || index > L.size {
		err = crt.OutOfBounds{}
		return
	}

	L.grow(L.size + 1)
	copy(L.buf[(index+1)*L.elementLength:(L.size+1)*L.elementLength], L.buf[index*L.elementLength:L.size*L.elementLength])
	copy(L.slot(index), element)
	L.size++
	L.modCount++

	return
}

// Get - Returns a copy of the element at the given index.
//
// It returns:
//   - element is a copy of the stored bytes
//   - err is of type crt.OutOfBounds if index is outside the valid range
func (L *ArrayList) Get(index int) (element []byte, err error) {
	if index < 0 || index >= L.size {
		err = crt.OutOfBounds{}
		return
	}

	element = cloneOut(L.slot(index))

	return
}

// Set - Overwrites the element at the given index, invoking the free callback
// on the previous element.
//
// It returns:
//   - err is of type crt.OutOfBounds if index is outside the valid range
func (L *ArrayList) Set(index int, element []byte) (err error) {
	if err = L.checkElement(element); err != nil {
		return
	}
	if index < 0 || index >= L.size {
		err = crt.OutOfBounds{}
		return
	}

	if L.freeFunc != nil {
		L.freeFunc(L.slot(index))
	}
	copy(L.slot(index), element)

	return
}

// RemoveAt - Removes the element at the given index, shifting subsequent
// elements one slot left and invoking the free callback on the removed element.
//
// It returns:
//   - err is of type crt.OutOfBounds if index is outside the valid range
func (L *ArrayList) RemoveAt(index int) (err error) {
	if L.freed {
		err = fmt.Errorf("list has been freed")
		return
	}
	if index < 0 || index >= L.size {
		err = crt.OutOfBounds{}
		return
	}

	if L.freeFunc != nil {
		L.freeFunc(L.slot(index))
	}
	copy(L.buf[index*L.elementLength:], L.buf[(index+1)*L.elementLength:L.size*L.elementLength])
	L.size--
	L.modCount++

	return
}

// IndexOf - Returns the index of the first element equal to element, or -1 if not present
func (L *ArrayList) IndexOf(element []byte) int {
	for i := 0; i < L.size; i++ {
		if L.equalsFunc(L.slot(i), element) {
			return i
		}
	}

	return -1
}

// Contains - Returns whether an element equal to element is present
func (L *ArrayList) Contains(element []byte) bool {
	return L.IndexOf(element) >= 0
}

// ForEach - Invokes visit with a copy of every element in index order
func (L *ArrayList) ForEach(visit func(element []byte)) {
	for i := 0; i < L.size; i++ {
		visit(cloneOut(L.slot(i)))
	}
}

// Clear - Removes all elements (invoking free callbacks) while keeping the
// list usable and its capacity retained
func (L *ArrayList) Clear() {
	if L.freeFunc != nil {
		for i := 0; i < L.size; i++ {
			L.freeFunc(L.slot(i))
		}
	}
	L.size = 0
	L.modCount++
}

// Free - Releases all elements and the backing slab. The list must not be used
// afterwards. Calling Free again is a no-op.
func (L *ArrayList) Free() {
	if L.freed {
		return
	}

	L.Clear()
	L.buf = nil
	L.freed = true
}

// grow - Ensures the slab holds at least needed element slots
func (L *ArrayList) grow(needed int) {
	capacity := len(L.buf) / L.elementLength
	if needed <= capacity {
		return
	}

	for capacity < needed {
		capacity *= 2
	}
	newBuf := make([]byte, capacity*L.elementLength)
	copy(newBuf, L.buf[:L.size*L.elementLength])
	L.buf = newBuf
}

// ArrayListIterator - Produces the elements of an ArrayList in index order and
// supports removing the element last returned by Next.
type ArrayListIterator struct {
	list      *ArrayList
	nextIndex int
	lastIndex int
	modCount  uint64
}

// Iterator - Returns a cursor positioned at the first element
func (L *ArrayList) Iterator() *ArrayListIterator {
	return &ArrayListIterator{
		list:      L,
		lastIndex: -1,
		modCount:  L.modCount,
	}
}

// HasNext - Returns true if there are more elements to be fetched from a call to Next
func (I *ArrayListIterator) HasNext() bool {
	return I.nextIndex < I.list.size
}

// Next - Returns a copy of the next element and remembers it as last returned.
//
// It returns:
//   - element is a copy of the produced element
//   - err is of type crt.IteratorExhausted when the sequence is consumed, or crt.StaleIterator if the list was modified behind the iterator
func (I *ArrayListIterator) Next() (element []byte, err error) {
	if I.modCount != I.list.modCount {
		err = crt.StaleIterator{}
		return
	}
	if I.nextIndex >= I.list.size {
		err = crt.IteratorExhausted{}
		return
	}

	element = cloneOut(I.list.slot(I.nextIndex))
	I.lastIndex = I.nextIndex
	I.nextIndex++

	return
}

// Remove - Erases the element last returned by Next from the list. The cursor
// index is pulled back one slot so the following Next does not skip an element.
//
// It returns:
//   - err is of type crt.IteratorState if Next has not been called since Iterator or since the previous Remove, or crt.StaleIterator if the list was modified behind the iterator
func (I *ArrayListIterator) Remove() (err error) {
	if I.modCount != I.list.modCount {
		err = crt.StaleIterator{}
		return
	}
	if I.lastIndex < 0 {
		err = crt.IteratorState{}
		return
	}

	if err = I.list.RemoveAt(I.lastIndex); err != nil {
		return
	}
	I.nextIndex = I.lastIndex
	I.lastIndex = -1
	I.modCount = I.list.modCount

	return
}
