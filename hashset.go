package collections

import (
	"errors"
	"fmt"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
	"github.com/gostonefire/collections/internal/chainhash"
)

// HashSetConf - Is a struct to be passed in the call to NewHashSet and contains
// configuration that affects table geometry and key handling.
//   - KeyLength is the fixed length of keys to store
//   - InitialCapacity is the requested number of buckets, rounded up to a power of two (minimum 16), 0 (zero) selects the minimum
//   - LoadFactor is the size/capacity ratio that triggers a doubling rehash, 0 (zero) selects the default 0.75
//   - HashFunc is the hash function to use, nil selects blobfunc.HashBytes
//   - EqualsFunc is the key equality function to use, nil selects blobfunc.EqualsBytes
//   - FreeKey is an optional destructor invoked when a key leaves the set
type HashSetConf struct {
	KeyLength       int
	InitialCapacity int
	LoadFactor      float64
	HashFunc        blobfunc.HashFunc
	EqualsFunc      blobfunc.EqualsFunc
	FreeKey         blobfunc.FreeFunc
}

// HashSet - An unordered set of fixed length byte keys, backed by an open
// chaining hash table with average O(1) operations.
type HashSet struct {
	table    *chainhash.Table
	conf     HashSetConf
	modCount uint64
	freed    bool
}

// NewHashSet - Returns a pointer to a new HashSet instance.
//   - conf is a HashSetConf struct providing configuration affecting set creation and processing
//
// It returns:
//   - hashSet which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewHashSet(conf HashSetConf) (hashSet *HashSet, err error) {
	table, err := chainhash.NewTable(chainhash.Conf{
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

	hashSet = &HashSet{table: table, conf: conf}

	return
}

// Size - Returns the number of keys in the set
func (S *HashSet) Size() int {
	return S.table.Size()
}

// IsEmpty - Returns whether the set holds no keys
func (S *HashSet) IsEmpty() bool {
	return S.table.Size() == 0
}

// Capacity - Returns the current number of buckets
func (S *HashSet) Capacity() int {
	return S.table.Capacity()
}

// checkKey - Validates key length and that the set is still usable
func (S *HashSet) checkKey(key []byte) (err error) {
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

// Insert - Adds key to the set. Exceeding the load factor triggers a doubling
// rehash that preserves every stored key.
//   - key is the bytes to store, it has to be of same length as given in call to NewHashSet
//
// It returns:
//   - err is of type crt.DuplicateKey if key is already present
func (S *HashSet) Insert(key []byte) (err error) {
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
func (S *HashSet) Contains(key []byte) bool {
	if S.freed || len(key) != S.table.KeyLength() {
		return false
	}

	_, err := S.table.Get(key)

	return err == nil
}

// Remove - Removes key from the set, invoking the free callback on the removed key.
//
// It returns:
//   - err is of type crt.NotFound if key is not present
func (S *HashSet) Remove(key []byte) (err error) {
	if err = S.checkKey(key); err != nil {
		return
	}

	if err = S.table.Remove(key); err != nil {
		return
	}
	S.modCount++

	return
}

// Keys - Returns a copy of every key in bucket then chain order
func (S *HashSet) Keys() (keys [][]byte) {
	keys = make([][]byte, 0, S.table.Size())
	for no, n := S.table.First(); n != nil; no, n = S.table.Next(no, n) {
		keys = append(keys, cloneOut(n.Key))
	}

	return
}

// ForEach - Invokes visit with a copy of every key in bucket then chain order
func (S *HashSet) ForEach(visit func(key []byte)) {
	for no, n := S.table.First(); n != nil; no, n = S.table.Next(no, n) {
		visit(cloneOut(n.Key))
	}
}

// Union - Returns a new set holding every key present in this set or in other.
// The result is created with this set's configuration but no free callback,
// since key ownership stays with the operand sets.
func (S *HashSet) Union(other *HashSet) (result *HashSet, err error) {
	result, err = S.emptyLike(S.table.Size() + other.table.Size())
	if err != nil {
		return
	}

	for no, n := S.table.First(); n != nil; no, n = S.table.Next(no, n) {
		if _, err = result.table.Put(n.Key, nil, false); err != nil {
			return
		}
	}
	for no, n := other.table.First(); n != nil; no, n = other.table.Next(no, n) {
		if _, e := result.table.Put(n.Key, nil, false); e != nil && !errors.Is(e, crt.DuplicateKey{}) {
			err = e
			return
		}
	}

	return
}

// Intersection - Returns a new set holding every key present in both this set
// and other.
func (S *HashSet) Intersection(other *HashSet) (result *HashSet, err error) {
	result, err = S.emptyLike(S.table.Size())
	if err != nil {
		return
	}

	for no, n := S.table.First(); n != nil; no, n = S.table.Next(no, n) {
		if other.Contains(n.Key) {
			if _, err = result.table.Put(n.Key, nil, false); err != nil {
				return
			}
		}
	}

	return
}

// Difference - Returns a new set holding every key present in this set but not
// in other.
func (S *HashSet) Difference(other *HashSet) (result *HashSet, err error) {
	result, err = S.emptyLike(S.table.Size())
	if err != nil {
		return
	}

	for no, n := S.table.First(); n != nil; no, n = S.table.Next(no, n) {
		if !other.Contains(n.Key) {
			if _, err = result.table.Put(n.Key, nil, false); err != nil {
				return
			}
		}
	}

	return
}

// emptyLike - Returns a new empty set with this set's hashing configuration
// but no free callback
func (S *HashSet) emptyLike(capacity int) (result *HashSet, err error) {
	conf := S.conf
	conf.InitialCapacity = capacity
	conf.FreeKey = nil

	return NewHashSet(conf)
}

// Clear - Removes all keys (invoking free callbacks) while keeping the set
// usable and its bucket array retained
func (S *HashSet) Clear() {
	S.table.Clear()
	S.modCount++
}

// Free - Releases every chain node and the bucket array. The set must not be
// used afterwards. Calling Free again is a no-op.
func (S *HashSet) Free() {
	if S.freed {
		return
	}

	S.table.Clear()
	S.freed = true
}

// HashSetIterator - Produces the keys of a HashSet in bucket then chain order
// and supports removing the key last returned by Next. The order is an
// artifact of hashing and not to be relied upon.
type HashSetIterator struct {
	hashSet  *HashSet
	bucketNo int
	node     *chainhash.Node
	last     *chainhash.Node
	modCount uint64
}

// Iterator - Returns a cursor positioned at the first key in bucket order
func (S *HashSet) Iterator() *HashSetIterator {
	no, n := S.table.First()

	return &HashSetIterator{
		hashSet:  S,
		bucketNo: no,
		node:     n,
		modCount: S.modCount,
	}
}

// HasNext - Returns true if there are more keys to be fetched from a call to Next
func (I *HashSetIterator) HasNext() bool {
	return I.node != nil
}

// Next - Returns a copy of the next key and remembers it as last returned.
//
// It returns:
//   - key is a copy of the produced key
//   - err is of type crt.IteratorExhausted when the sequence is consumed, or crt.StaleIterator if the set was modified behind the iterator
func (I *HashSetIterator) Next() (key []byte, err error) {
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
	I.bucketNo, I.node = I.hashSet.table.Next(I.bucketNo, I.node)

	return
}

// Remove - Erases the key last returned by Next from the set.
//
// It returns:
//   - err is of type crt.IteratorState if Next has not been called since Iterator or since the previous Remove, or crt.StaleIterator if the set was modified behind the iterator
func (I *HashSetIterator) Remove() (err error) {
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
