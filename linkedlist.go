package collections

import (
	"fmt"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
)

// listNode - One node in a doubly linked list. Each node owns its data bytes
// exclusively, prev and next are plain references.
type listNode struct {
	prev *listNode
	next *listNode
	data []byte
}

// LinkedList - A doubly linked list of fixed length byte elements with O(1)
// insertion and removal at both ends and O(1) unlink of a known node, which is
// what the iterator removal protocol builds on.
type LinkedList struct {
	head          *listNode
	tail          *listNode
	size          int
	elementLength int
	equalsFunc    blobfunc.EqualsFunc
	freeFunc      blobfunc.FreeFunc
	modCount      uint64
	freed         bool
}

// NewLinkedList - Returns a pointer to a new LinkedList instance.
//   - elementLength is the fixed length of elements to store
//   - equalsFunc is the element equality function used by Remove and Contains, nil selects blobfunc.EqualsBytes
//   - freeFunc is an optional destructor invoked when an element leaves the list
//
// It returns:
//   - list which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewLinkedList(elementLength int, equalsFunc blobfunc.EqualsFunc, freeFunc blobfunc.FreeFunc) (list *LinkedList, err error) {
	// Check if the element length is valid
	if elementLength <= 0 {
		err = fmt.Errorf("element length must be a positive value higher than 0 (zero)")
		return
	}
	if equalsFunc == nil {
		equalsFunc = blobfunc.EqualsBytes
	}

	list = &LinkedList{
		elementLength: elementLength,
		equalsFunc:    equalsFunc,
		freeFunc:      freeFunc,
	}

	return
}

// Size - Returns the number of elements in the list
func (L *LinkedList) Size() int {
	return L.size
}

// IsEmpty - Returns whether the list holds no elements
func (L *LinkedList) IsEmpty() bool {
	return L.size == 0
}

// checkElement - Validates element length and that the list is still usable
func (L *LinkedList) checkElement(element []byte) (err error) {
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

// AddFirst - Inserts element at the head of the list.
//   - element is the bytes to store, it has to be of same length as given in call to NewLinkedList
func (L *LinkedList) AddFirst(element []byte) (err error) {
	if err = L.checkElement(element); err != nil {
		return
	}

	node := &listNode{next: L.head, data: cloneOut(element)}
	if L.head != nil {
		L.head.prev = node
	} else {
		L.tail = node
	}
	L.head = node
	L.size++
	L.modCount++

	return
}

// AddLast - Appends element at the tail of the list.
//   - element is the bytes to store, it has to be of same length as given in call to NewLinkedList
func (L *LinkedList) AddLast(element []byte) (err error) {
	if err = L.checkElement(element); err != nil {
		return
	}

	node := &listNode{prev: L.tail, data: cloneOut(element)}
	if L.tail != nil {
		L.tail.next = node
	} else {
		L.head = node
	}
	L.tail = node
	L.size++
	L.modCount++

	return
}

// InsertAt - Inserts element before the node at the given index, with index
// equal to Size meaning append at the tail.
//
// It returns:
//   - err is of type crt.OutOfBounds if index is outside the valid range
func (L *LinkedList) InsertAt(index int, element []byte) (err error) {
	if err = L.checkElement(element); err != nil {
		return
	}
	if index < 0 || index > L.size {
		err = crt.OutOfBounds{}
		return
	}

	if index == 0 {
		return L.AddFirst(element)
	}
	if index == L.size {
		return L.AddLast(element)
	}

	at := L.nodeAt(index)
	node := &listNode{prev: at.prev, next: at, data: cloneOut(element)}
	at.prev.next = node
	at.prev = node
	L.size++
	L.modCount++

	return
}

// Get - Returns a copy of the element at the given index.
//
// It returns:
//   - element is a copy of the stored bytes
//   - err is of type crt.OutOfBounds if index is outside the valid range
func (L *LinkedList) Get(index int) (element []byte, err error) {
	if index < 0 || index >= L.size {
		err = crt.OutOfBounds{}
		return
	}

	element = cloneOut(L.nodeAt(index).data)

	return
}

// GetFirst - Returns a copy of the head element.
//
// It returns:
//   - element is a copy of the head element
//   - err is of type crt.EmptyContainer if the list holds no elements
func (L *LinkedList) GetFirst() (element []byte, err error) {
	if L.head == nil {
		err = crt.EmptyContainer{}
		return
	}

	element = cloneOut(L.head.data)

	return
}

// GetLast - Returns a copy of the tail element.
//
// It returns:
//   - element is a copy of the tail element
//   - err is of type crt.EmptyContainer if the list holds no elements
func (L *LinkedList) GetLast() (element []byte, err error) {
	if L.tail == nil {
		err = crt.EmptyContainer{}
		return
	}

	element = cloneOut(L.tail.data)

	return
}

// RemoveFirst - Removes and returns the head element, invoking the free
// callback after the returned copy is taken.
//
// It returns:
//   - element is a copy of the removed element
//   - err is of type crt.EmptyContainer if the list holds no elements
func (L *LinkedList) RemoveFirst() (element []byte, err error) {
	if L.head == nil {
		err = crt.EmptyContainer{}
		return
	}

	element = cloneOut(L.head.data)
	L.unlink(L.head)

	return
}

// RemoveLast - Removes and returns the tail element, invoking the free
// callback after the returned copy is taken.
//
// It returns:
//   - element is a copy of the removed element
//   - err is of type crt.EmptyContainer if the list holds no elements
func (L *LinkedList) RemoveLast() (element []byte, err error) {
	if L.tail == nil {
		err = crt.EmptyContainer{}
		return
	}

	element = cloneOut(L.tail.data)
	L.unlink(L.tail)

	return
}

// RemoveAt - Removes the element at the given index.
//
// It returns:
//   - err is of type crt.OutOfBounds if index is outside the valid range
func (L *LinkedList) RemoveAt(index int) (err error) {
	if L.freed {
		err = fmt.Errorf("list has been freed")
		return
	}
	if index < 0 || index >= L.size {
		err = crt.OutOfBounds{}
		return
	}

	L.unlink(L.nodeAt(index))

	return
}

// Remove - Removes the first element equal to element.
//
// It returns:
//   - err is of type crt.NotFound if no equal element is present
func (L *LinkedList) Remove(element []byte) (err error) {
	if L.freed {
		err = fmt.Errorf("list has been freed")
		return
	}

	for n := L.head; n != nil; n = n.next {
		if L.equalsFunc(n.data, element) {
			L.unlink(n)
			return
		}
	}

	err = crt.NotFound{}

	return
}

// Contains - Returns whether an element equal to element is present
func (L *LinkedList) Contains(element []byte) bool {
	for n := L.head; n != nil; n = n.next {
		if L.equalsFunc(n.data, element) {
			return true
		}
	}

	return false
}

// ForEach - Invokes visit with a copy of every element from head to tail
func (L *LinkedList) ForEach(visit func(element []byte)) {
	for n := L.head; n != nil; n = n.next {
		visit(cloneOut(n.data))
	}
}

// Clear - Removes all elements (invoking free callbacks) while keeping the
// list usable
func (L *LinkedList) Clear() {
	n := L.head
	for n != nil {
		next := n.next
		if L.freeFunc != nil {
			L.freeFunc(n.data)
		}
		n.prev = nil
		n.next = nil
		n = next
	}
	L.head = nil
	L.tail = nil
	L.size = 0
	L.modCount++
}

// Free - Releases every node. The list must not be used afterwards. Calling
// Free again is a no-op.
func (L *LinkedList) Free() {
	if L.freed {
		return
	}

	L.Clear()
	L.freed = true
}

// nodeAt - Returns the node at the given index, walking from the nearest end
func (L *LinkedList) nodeAt(index int) (node *listNode) {
	if index < L.size/2 {
		node = L.head
		for i := 0; i < index; i++ {
			node = node.next
		}
	} else {
		node = L.tail
		for i := L.size - 1; i > index; i-- {
			node = node.prev
		}
	}

	return
}

// unlink - Splices node out of the list and invokes the free callback
func (L *LinkedList) unlink(node *listNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		L.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		L.tail = node.prev
	}
	if L.freeFunc != nil {
		L.freeFunc(node.data)
	}
	node.prev = nil
	node.next = nil
	L.size--
	L.modCount++
}

// LinkedListIterator - Produces the elements of a LinkedList from head to tail
// and supports removing the element last returned by Next. Removal unlinks the
// single node last produced, the cursor already points past it so following
// Next calls are unaffected.
type LinkedListIterator struct {
	list     *LinkedList
	next     *listNode
	last     *listNode
	modCount uint64
}

// Iterator - Returns a cursor positioned at the head element
func (L *LinkedList) Iterator() *LinkedListIterator {
	return &LinkedListIterator{
		list:     L,
		next:     L.head,
		modCount: L.modCount,
	}
}

// HasNext - Returns true if there are more elements to be fetched from a call to Next
func (I *LinkedListIterator) HasNext() bool {
	return I.next != nil
}

// Next - Returns a copy of the next element and remembers its node as last returned.
//
// It returns:
//   - element is a copy of the produced element
//   - err is of type crt.IteratorExhausted when the sequence is consumed, or crt.StaleIterator if the list was modified behind the iterator
func (I *LinkedListIterator) Next() (element []byte, err error) {
	if I.modCount != I.list.modCount {
		err = crt.StaleIterator{}
		return
	}
	if I.next == nil {
		err = crt.IteratorExhausted{}
		return
	}

	element = cloneOut(I.next.data)
	I.last = I.next
	I.next = I.next.next

	return
}

// Remove - Unlinks the node last returned by Next from the list.
//
// It returns:
//   - err is of type crt.IteratorState if Next has not been called since Iterator or since the previous Remove, or crt.StaleIterator if the list was modified behind the iterator
func (I *LinkedListIterator) Remove() (err error) {
	if I.modCount != I.list.modCount {
		err = crt.StaleIterator{}
		return
	}
	if I.last == nil {
		err = crt.IteratorState{}
		return
	}

	I.list.unlink(I.last)
	I.last = nil
	I.modCount = I.list.modCount

	return
}
