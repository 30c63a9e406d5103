package collections

import (
	"github.com/gostonefire/collections/blobfunc"
)

// ArrayStack - A LIFO stack of fixed length byte elements, a thin wrapper over
// ArrayDeque pushing and popping at the back.
type ArrayStack struct {
	deque *ArrayDeque
}

// NewArrayStack - Returns a pointer to a new ArrayStack instance.
//   - elementLength is the fixed length of elements to store
//   - initialCapacity is the number of element slots to preallocate, 0 (zero) selects the default
//   - freeFunc is an optional destructor invoked when an element leaves the stack
//
// It returns:
//   - stack which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewArrayStack(elementLength, initialCapacity int, freeFunc blobfunc.FreeFunc) (stack *ArrayStack, err error) {
	deque, err := NewArrayDeque(elementLength, initialCapacity, freeFunc)
	if err != nil {
		return
	}

	stack = &ArrayStack{deque: deque}

	return
}

// Push - Places element on top of the stack
func (S *ArrayStack) Push(element []byte) (err error) {
	return S.deque.PushBack(element)
}

// Pop - Removes and returns the top element.
//
// It returns:
//   - element is a copy of the removed element
//   - err is of type crt.EmptyContainer if the stack holds no elements
func (S *ArrayStack) Pop() (element []byte, err error) {
	return S.deque.PopBack()
}

// Peek - Returns a copy of the top element without removing it.
//
// It returns:
//   - element is a copy of the top element
//   - err is of type crt.EmptyContainer if the stack holds no elements
func (S *ArrayStack) Peek() (element []byte, err error) {
	return S.deque.PeekBack()
}

// Size - Returns the number of elements on the stack
func (S *ArrayStack) Size() int {
	return S.deque.Size()
}

// IsEmpty - Returns whether the stack holds no elements
func (S *ArrayStack) IsEmpty() bool {
	return S.deque.IsEmpty()
}

// ForEach - Invokes visit with a copy of every element in insertion order,
// i.e. from the bottom of the stack to the top
func (S *ArrayStack) ForEach(visit func(element []byte)) {
	S.deque.ForEach(visit)
}

// Clear - Removes all elements while keeping the stack usable
func (S *ArrayStack) Clear() {
	S.deque.Clear()
}

// Free - Releases all elements and the backing storage. The stack must not be
// used afterwards. Calling Free again is a no-op.
func (S *ArrayStack) Free() {
	S.deque.Free()
}

// Iterator - Returns a cursor over the stack in insertion order, bottom to top.
// The cursor supports removing the element last returned by Next.
func (S *ArrayStack) Iterator() *ArrayDequeIterator {
	return S.deque.Iterator()
}
