package collections

import (
	"fmt"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
	"github.com/gostonefire/collections/internal/linkedhash"
)

// LinkedHashMapConf - Is a struct to be passed in the call to NewLinkedHashMap,
// field semantics are identical to HashMapConf.
type LinkedHashMapConf struct {
	KeyLength       int
	ValueLength     int
	InitialCapacity int
	LoadFactor      float64
	HashFunc        blobfunc.HashFunc
	EqualsFunc      blobfunc.EqualsFunc
	FreeKey         blobfunc.FreeFunc
	FreeValue       blobfunc.FreeFunc
}

// LinkedHashMap - A map from fixed length byte keys to fixed length byte
// values with average O(1) hash lookup and iteration in insertion order. Every
// entry is member of both a bucket chain and a doubly linked order list, and
// the two are updated together on every insert and removal.
type LinkedHashMap struct {
	table    *linkedhash.Table
	modCount uint64
	freed    bool
}

// NewLinkedHashMap - Returns a pointer to a new LinkedHashMap instance.
//   - conf is a LinkedHashMapConf struct providing configuration affecting map creation and processing
//
// It returns:
//   - hashMap which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewLinkedHashMap(conf LinkedHashMapConf) (hashMap *LinkedHashMap, err error) {
	// Check if the value length is valid, a map without values is a set
	if conf.ValueLength <= 0 {
		err = fmt.Errorf("value length must be a positive value higher than 0 (zero)")
		return
	}

	table, err := linkedhash.NewTable(linkedhash.Conf{
		KeyLength:       conf.KeyLength,
		ValueLength:     conf.ValueLength,
		InitialCapacity: conf.InitialCapacity,
		LoadFactor:      conf.LoadFactor,
		HashFunc:        conf.HashFunc,
		EqualsFunc:      conf.EqualsFunc,
		FreeKey:         conf.FreeKey,
		FreeValue:       conf.FreeValue,
	})
	if err != nil {
		return
	}

	hashMap = &LinkedHashMap{table: table}

	return
}

// Size - Returns the number of entries in the map
func (M *LinkedHashMap) Size() int {
	return M.table.Size()
}

// IsEmpty - Returns whether the map holds no entries
func (M *LinkedHashMap) IsEmpty() bool {
	return M.table.Size() == 0
}

// Capacity - Returns the current number of buckets
func (M *LinkedHashMap) Capacity() int {
	return M.table.Capacity()
}

// checkKey - Validates key length and that the map is still usable
func (M *LinkedHashMap) checkKey(key []byte) (err error) {
	if M.freed {
		err = fmt.Errorf("map has been freed")
		return
	}
	if len(key) != M.table.KeyLength() {
		err = fmt.Errorf("wrong length of key, should be %d", M.table.KeyLength())
		return
	}

	return
}

// Put - Inserts key with value, or updates the value of an existing entry in
// place. A genuinely new entry is appended to the end of the insertion order,
// an update leaves the entry's position untouched.
//   - key is the entry key, it has to be of same length as given in call to NewLinkedHashMap
//   - value is the entry value, it has to be of same length as given in call to NewLinkedHashMap
func (M *LinkedHashMap) Put(key, value []byte) (err error) {
	if err = M.checkKey(key); err != nil {
		return
	}
	if len(value) != M.table.ValueLength() {
		err = fmt.Errorf("wrong length of value, should be %d", M.table.ValueLength())
		return
	}

	inserted, err := M.table.Put(key, value, true)
	if err != nil {
		return
	}
	if inserted {
		M.modCount++
	}

	return
}

// Get - Returns a copy of the value stored under key.
//
// It returns:
//   - value is a copy of the stored value
//   - err is of type crt.NotFound if no entry matches key
func (M *LinkedHashMap) Get(key []byte) (value []byte, err error) {
	if err = M.checkKey(key); err != nil {
		return
	}

	node, err := M.table.Get(key)
	if err != nil {
		return
	}

	value = cloneOut(node.Value)

	return
}

// Contains - Returns whether an entry is stored under key
func (M *LinkedHashMap) Contains(key []byte) bool {
	if M.freed || len(key) != M.table.KeyLength() {
		return false
	}

	_, err := M.table.Get(key)

	return err == nil
}

// Remove - Removes the entry stored under key from both the bucket chain and
// the order list, invoking the free callbacks on the removed key and value.
//
// It returns:
//   - err is of type crt.NotFound if no entry matches key
func (M *LinkedHashMap) Remove(key []byte) (err error) {
	if err = M.checkKey(key); err != nil {
		return
	}

	if err = M.table.Remove(key); err != nil {
		return
	}
	M.modCount++

	return
}

// GetFirst - Returns a copy of the first inserted entry.
//
// It returns:
//   - key and value are copies of the entry at the head of the insertion order
//   - err is of type crt.EmptyContainer if the map holds no entries
func (M *LinkedHashMap) GetFirst() (key, value []byte, err error) {
	head := M.table.Head()
	if head == nil {
		err = crt.EmptyContainer{}
		return
	}

	key = cloneOut(head.Key)
	value = cloneOut(head.Value)

	return
}

// GetLast - Returns a copy of the most recently inserted entry.
//
// It returns:
//   - key and value are copies of the entry at the tail of the insertion order
//   - err is of type crt.EmptyContainer if the map holds no entries
func (M *LinkedHashMap) GetLast() (key, value []byte, err error) {
	tail := M.table.Tail()
	if tail == nil {
		err = crt.EmptyContainer{}
		return
	}

	key = cloneOut(tail.Key)
	value = cloneOut(tail.Value)

	return
}

// Keys - Returns a copy of every key in insertion order
func (M *LinkedHashMap) Keys() (keys [][]byte) {
	keys = make([][]byte, 0, M.table.Size())
	for n := M.table.Head(); n != nil; n = n.Next {
		keys = append(keys, cloneOut(n.Key))
	}

	return
}

// Values - Returns a copy of every value in insertion order
func (M *LinkedHashMap) Values() (values [][]byte) {
	values = make([][]byte, 0, M.table.Size())
	for n := M.table.Head(); n != nil; n = n.Next {
		values = append(values, cloneOut(n.Value))
	}

	return
}

// ForEach - Invokes visit with a copy of every key and value in insertion order
func (M *LinkedHashMap) ForEach(visit func(key, value []byte)) {
	for n := M.table.Head(); n != nil; n = n.Next {
		visit(cloneOut(n.Key), cloneOut(n.Value))
	}
}

// Clear - Removes all entries (invoking free callbacks) while keeping the map
// usable and its bucket array retained
func (M *LinkedHashMap) Clear() {
	M.table.Clear()
	M.modCount++
}

// Free - Releases every node and the bucket array. The map must not be used
// afterwards. Calling Free again is a no-op.
func (M *LinkedHashMap) Free() {
	if M.freed {
		return
	}

	M.table.Clear()
	M.freed = true
}

// LinkedHashMapIterator - Produces the entries of a LinkedHashMap in insertion
// order and supports removing the entry last returned by Next. Removal unlinks
// the entry from both the bucket chain and the order list.
type LinkedHashMapIterator struct {
	hashMap  *LinkedHashMap
	node     *linkedhash.Node
	last     *linkedhash.Node
	modCount uint64
}

// Iterator - Returns a cursor positioned at the first inserted entry
func (M *LinkedHashMap) Iterator() *LinkedHashMapIterator {
	return &LinkedHashMapIterator{
		hashMap:  M,
		node:     M.table.Head(),
		modCount: M.modCount,
	}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next
func (I *LinkedHashMapIterator) HasNext() bool {
	return I.node != nil
}

// Next - Returns a copy of the next key and value in insertion order and
// remembers the entry as last returned.
//
// It returns:
//   - key and value are copies of the produced entry
//   - err is of type crt.IteratorExhausted when the sequence is consumed, or crt.StaleIterator if the map was modified behind the iterator
func (I *LinkedHashMapIterator) Next() (key, value []byte, err error) {
	if I.modCount != I.hashMap.modCount {
		err = crt.StaleIterator{}
		return
	}
	if I.node == nil {
		err = crt.IteratorExhausted{}
		return
	}

	key = cloneOut(I.node.Key)
	value = cloneOut(I.node.Value)
	I.last = I.node
	I.node = I.node.Next

	return
}

// Remove - Erases the entry last returned by Next from both structures.
//
// It returns:
//   - err is of type crt.IteratorState if Next has not been called since Iterator or since the previous Remove, or crt.StaleIterator if the map was modified behind the iterator
func (I *LinkedHashMapIterator) Remove() (err error) {
	if I.modCount != I.hashMap.modCount {
		err = crt.StaleIterator{}
		return
	}
	if I.last == nil {
		err = crt.IteratorState{}
		return
	}

	if err = I.hashMap.table.Unlink(I.last); err != nil {
		return
	}
	I.last = nil
	I.hashMap.modCount++
	I.modCount = I.hashMap.modCount

	return
}
