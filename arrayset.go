package collections

import (
	"fmt"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
)

// ArraySet - A flat set of fixed length byte elements backed by a byte slab.
// Membership is checked by linear scan with the configured equality function,
// which keeps it competitive for small sets without any hashing. Elements keep
// insertion order.
type ArraySet struct {
	list *ArrayList
}

// NewArraySet - Returns a pointer to a new ArraySet instance.
//   - elementLength is the fixed length of elements to store
//   - initialCapacity is the number of element slots to preallocate, 0 (zero) selects the default
//   - equalsFunc is the element equality function, nil selects blobfunc.EqualsBytes
//   - freeFunc is an optional destructor invoked when an element leaves the set
//
// It returns:
//   - set which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewArraySet(elementLength, initialCapacity int, equalsFunc blobfunc.EqualsFunc, freeFunc blobfunc.FreeFunc) (set *ArraySet, err error) {
	list, err := NewArrayList(elementLength, initialCapacity, equalsFunc, freeFunc)
	if err != nil {
		return
	}

	set = &ArraySet{list: list}

	return
}

// Insert - Adds element to the set.
//   - element is the bytes to store, it has to be of same length as given in call to NewArraySet
//
// It returns:
//   - err is of type crt.DuplicateKey if an equal element is already present
func (S *ArraySet) Insert(element []byte) (err error) {
	if err = S.list.checkElement(element); err != nil {
		return
	}
	if S.list.IndexOf(element) >= 0 {
		err = crt.DuplicateKey{}
		return
	}

	return S.list.Add(element)
}

// Contains - Returns whether an element equal to element is present
func (S *ArraySet) Contains(element []byte) bool {
	return S.list.Contains(element)
}

// Remove - Removes the element equal to element from the set.
//
// It returns:
//   - err is of type crt.NotFound if no equal element is present
func (S *ArraySet) Remove(element []byte) (err error) {
	if S.list.freed {
		err = fmt.Errorf("set has been freed")
		return
	}

	index := S.list.IndexOf(element)
	if index < 0 {
		err = crt.NotFound{}
		return
	}

	return S.list.RemoveAt(index)
}

// Size - Returns the number of elements in the set
func (S *ArraySet) Size() int {
	return S.list.Size()
}

// IsEmpty - Returns whether the set holds no elements
func (S *ArraySet) IsEmpty() bool {
	return S.list.IsEmpty()
}

// ForEach - Invokes visit with a copy of every element in insertion order
func (S *ArraySet) ForEach(visit func(element []byte)) {
	S.list.ForEach(visit)
}

// Clear - Removes all elements while keeping the set usable
func (S *ArraySet) Clear() {
	S.list.Clear()
}

// Free - Releases all elements and the backing storage. The set must not be
// used afterwards. Calling Free again is a no-op.
func (S *ArraySet) Free() {
	S.list.Free()
}

// Iterator - Returns a cursor over the set in insertion order. The cursor
// supports removing the element last returned by Next.
func (S *ArraySet) Iterator() *ArrayListIterator {
	return S.list.Iterator()
}
