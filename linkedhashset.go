package collections

import (
	"fmt"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
	"github.com/gostonefire/collections/internal/linkedhash"
)

// LinkedHashSetConf - Is a struct to be passed in the call to NewLinkedHashSet,
// field semantics are identical to HashSetConf.
type LinkedHashSetConf struct {
	KeyLength       int
	InitialCapacity int
	LoadFactor      float64
	HashFunc        blobfunc.HashFunc
	EqualsFunc      blobfunc.EqualsFunc
	FreeKey         blobfunc.FreeFunc
}

// LinkedHashSet - A set of fixed length byte keys with average O(1) hash
// lookup and iteration in insertion order, backed by the same dual structure
// as LinkedHashMap.
type LinkedHashSet struct {
	table    *linkedhash.Table
	modCount uint64
	freed    bool
}

// NewLinkedHashSet - Returns a pointer to a new LinkedHashSet instance.
//   - conf is a LinkedHashSetConf struct providing configuration affecting set creation and processing
//
// It returns:
//   - hashSet which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewLinkedHashSet(conf LinkedHashSetConf) (hashSet *LinkedHashSet, err error) {
	table, err := linkedhash.NewTable(linkedhash.Conf{
		KeyLength:       conf.KeyLength,
		InitialCapacity: conf.InitialCapacity,
		LoadFactor:      conf.LoadFactor,
		HashFunc:        conf.HashFunc,
		EqualsFunc:      conf.EqualsFunc,
		FreeKey:         conf.FreeKey,
	})
	if err != nil {
		return
	}

	hashSet = &LinkedHashSet{table: table}

	return
}

// Size - Returns the number of keys in the set
func (S *LinkedHashSet) Size() int {
	return S.table.Size()
}

// IsEmpty - Returns whether the set holds no keys
func (S *LinkedHashSet) IsEmpty() bool {
	return S.table.Size() == 0
}

// Capacity - Returns the current number of buckets
func (S *LinkedHashSet) Capacity() int {
	return S.table.Capacity()
}

// checkKey - Validates key length and that the set is still usable
func (S *LinkedHashSet) checkKey(key []byte) (err error) {
	if S.freed {
		err = fmt.Errorf("set has been freed")
		return
	}
	if len(key) != S.table.KeyLength() {
		err = fmt.Errorf("wrong length of key, should be %d", S.table.KeyLength())
		return
	}

	return
}

// Insert - Adds key to the set, appending it to the end of the insertion order.
//   - key is the bytes to store, it has to be of same length as given in call to NewLinkedHashSet
//
// It returns:
//   - err is of type crt.DuplicateKey if key is already present
func (S *LinkedHashSet) Insert(key []byte) (err error) {
	if err = S.checkKey(key); err != nil {
		return
	}

	if _, err = S.table.Put(key, nil, false); err != nil {
		return
	}
	S.modCount++

	return
}

// Contains - Returns whether key is present
func (S *LinkedHashSet) Contains(key []byte) bool {
	if S.freed || len(key) != S.table.KeyLength() {
		return false
	}

	_, err := S.table.Get(key)

	return err == nil
}

// Remove - Removes key from both the bucket chain and the order list, invoking
// the free callback on the removed key.
//
// It returns:
//   - err is of type crt.NotFound if key is not present
func (S *LinkedHashSet) Remove(key []byte) (err error) {
	if err = S.checkKey(key); err != nil {
		return
	}

	if err = S.table.Remove(key); err != nil {
		return
	}
	S.modCount++

	return
}

// GetFirst - Returns a copy of the first inserted key.
//
// It returns:
//   - key is a copy of the key at the head of the insertion order
//   - err is of type crt.EmptyContainer if the set holds no keys
func (S *LinkedHashSet) GetFirst() (key []byte, err error) {
	head := S.table.Head()
	if head == nil {
		err = crt.EmptyContainer{}
		return
	}

	key = cloneOut(head.Key)

	return
}

// GetLast - Returns a copy of the most recently inserted key.
//
// It returns:
//   - key is a copy of the key at the tail of the insertion order
//   - err is of type crt.EmptyContainer if the set holds no keys
func (S *LinkedHashSet) GetLast() (key []byte, err error) {
	tail := S.table.Tail()
	if tail == nil {
		err = crt.EmptyContainer{}
		return
	}

	key = cloneOut(tail.Key)

	return
}

// Keys - Returns a copy of every key in insertion order
func (S *LinkedHashSet) Keys() (keys [][]byte) {
	keys = make([][]byte, 0, S.table.Size())
	for n := S.table.Head(); n != nil; n = n.Next {
		keys = append(keys, cloneOut(n.Key))
	}

	return
}

// ForEach - Invokes visit with a copy of every key in insertion order
func (S *LinkedHashSet) ForEach(visit func(key []byte)) {
	for n := S.table.Head(); n != nil; n = n.Next {
		visit(cloneOut(n.Key))
	}
}

// Clear - Removes all keys (invoking free callbacks) while keeping the set
// usable and its bucket array retained
func (S *LinkedHashSet) Clear() {
	S.table.Clear()
	S.modCount++
}

// Free - Releases every node and the bucket array. The set must not be used
// afterwards. Calling Free again is a no-op.
func (S *LinkedHashSet) Free() {
	if S.freed {
		return
	}

	S.table.Clear()
	S.freed = true
}

// LinkedHashSetIterator - Produces the keys of a LinkedHashSet in insertion
// order and supports removing the key last returned by Next. Removal unlinks
// the key from both the bucket chain and the order list.
type LinkedHashSetIterator struct {
	hashSet  *LinkedHashSet
	node     *linkedhash.Node
	last     *linkedhash.Node
	modCount uint64
}

// Iterator - Returns a cursor positioned at the first inserted key
func (S *LinkedHashSet) Iterator() *LinkedHashSetIterator {
	return &LinkedHashSetIterator{
		hashSet:  S,
		node:     S.table.Head(),
		modCount: S.modCount,
	}
}

// HasNext - Returns true if there are more keys to be fetched from a call to Next
func (I *LinkedHashSetIterator) HasNext() bool {
	return I.node != nil
}

// Next - Returns a copy of the next key in insertion order and remembers it as
// last returned.
//
// It returns:
//   - key is a copy of the produced key
//   - err is of type crt.IteratorExhausted when the sequence is consumed, or crt.StaleIterator if the set was modified behind the iterator
func (I *LinkedHashSetIterator) Next() (key []byte, err error) {
	if I.modCount != I.hashSet.modCount {
		err = crt.StaleIterator{}
		return
	}
	if I.node == nil {
		err = crt.IteratorExhausted{}
		return
	}

	key = cloneOut(I.node.Key)
	I.last = I.node
	I.node = I.node.Next

	return
}

// Remove - Erases the key last returned by Next from both structures.
//
// It returns:
//   - err is of type crt.IteratorState if Next has not been called since Iterator or since the previous Remove, or crt.StaleIterator if the set was modified behind the iterator
func (I *LinkedHashSetIterator) Remove() (err error) {
	if I.modCount != I.hashSet.modCount {
		err = crt.StaleIterator{}
		return
	}
	if I.last == nil {
		err = crt.IteratorState{}
		return
	}

	if err = I.hashSet.table.Unlink(I.last); err != nil {
		return
	}
	I.last = nil
	I.hashSet.modCount++
	I.modCount = I.hashSet.modCount

	return
}
