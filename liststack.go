package collections

import (
	"github.com/gostonefire/collections/blobfunc"
)

// ListStack - A LIFO stack of fixed length byte elements, a thin wrapper over
// LinkedList pushing and popping at the head.
type ListStack struct {
	list *LinkedList
}

// NewListStack - Returns a pointer to a new ListStack instance.
//   - elementLength is the fixed length of elements to store
//   - freeFunc is an optional destructor invoked when an element leaves the stack
//
// It returns:
//   - stack which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewListStack(elementLength int, freeFunc blobfunc.FreeFunc) (stack *ListStack, err error) {
	list, err := NewLinkedList(elementLength, nil, freeFunc)
	if err != nil {
		return
	}

	stack = &ListStack{list: list}

	return
}

// Push - Places element on top of the stack
func (S *ListStack) Push(element []byte) (err error) {
	return S.list.AddFirst(element)
}

// Pop - Removes and returns the top element.
//
// It returns:
//   - element is a copy of the removed element
//   - err is of type crt.EmptyContainer if the stack holds no elements
func (S *ListStack) Pop() (element []byte, err error) {
	return S.list.RemoveFirst()
}

// Peek - Returns a copy of the top element without removing it.
//
// It returns:
//   - element is a copy of the top element
//   - err is of type crt.EmptyContainer if the stack holds no elements
func (S *ListStack) Peek() (element []byte, err error) {
	return S.list.GetFirst()
}

// Size - Returns the number of elements on the stack
func (S *ListStack) Size() int {
	return S.list.Size()
}

// IsEmpty - Returns whether the stack holds no elements
func (S *ListStack) IsEmpty() bool {
	return S.list.IsEmpty()
}

// ForEach - Invokes visit with a copy of every element from the top of the
// stack downwards
func (S *ListStack) ForEach(visit func(element []byte)) {
	S.list.ForEach(visit)
}

// Clear - Removes all elements while keeping the stack usable
func (S *ListStack) Clear() {
	S.list.Clear()
}

// Free - Releases every node. The stack must not be used afterwards. Calling
// Free again is a no-op.
func (S *ListStack) Free() {
	S.list.Free()
}

// Iterator - Returns a cursor over the stack from the top downwards. The
// cursor supports removing the element last returned by Next.
func (S *ListStack) Iterator() *LinkedListIterator {
	return S.list.Iterator()
}
