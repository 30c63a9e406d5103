package collections

import (
	"fmt"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
	"github.com/gostonefire/collections/internal/chainhash"
)

// HashMapConf - Is a struct to be passed in the call to NewHashMap and contains
// configuration that affects table geometry and key handling.
//   - KeyLength is the fixed length of keys to store
//   - ValueLength is the fixed length of values to store
//   - InitialCapacity is the requested number of buckets, rounded up to a power of two (minimum 16), 0 (zero) selects the minimum
//   - LoadFactor is the size/capacity ratio that triggers a doubling rehash, 0 (zero) selects the default 0.75
//   - HashFunc is the hash function to use, nil selects blobfunc.HashBytes
//   - EqualsFunc is the key equality function to use, nil selects blobfunc.EqualsBytes
//   - FreeKey and FreeValue are optional destructors invoked when an entry leaves the map
type HashMapConf struct {
	KeyLength       int
	ValueLength     int
	InitialCapacity int
	LoadFactor      float64
	HashFunc        blobfunc.HashFunc
	EqualsFunc      blobfunc.EqualsFunc
	FreeKey         blobfunc.FreeFunc
	FreeValue       blobfunc.FreeFunc
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Entries is the total number of entries stored
//   - Buckets is the current number of buckets
//   - LongestChain is the length of the longest bucket chain
//   - BucketDistribution is the number of entries stored in each bucket
type HashMapStat struct {
	Entries            int
	Buckets            int
	LongestChain       int
	BucketDistribution []int
}

// HashMap - An unordered map from fixed length byte keys to fixed length byte
// values, backed by an open chaining hash table with average O(1) operations.
type HashMap struct {
	table    *chainhash.Table
	modCount uint64
	freed    bool
}

// NewHashMap - Returns a pointer to a new HashMap instance.
//   - conf is a HashMapConf struct providing configuration affecting map creation and processing
//
// It returns:
//   - hashMap which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewHashMap(conf HashMapConf) (hashMap *HashMap, err error) {
	// Check if the value length is valid, a map without values is a set
	if conf.ValueLength <= 0 {
		err = fmt.Errorf("value length must be a positive value higher than 0 (zero)")
		return
	}

	table, err := chainhash.NewTable(chainhash.Conf{
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

	hashMap = &HashMap{table: table}

	return
}

// Size - Returns the number of entries in the map
func (M *HashMap) Size() int {
	return M.table.Size()
}

// IsEmpty - Returns whether the map holds no entries
func (M *HashMap) IsEmpty() bool {
	return M.table.Size() == 0
}

// Capacity - Returns the current number of buckets
func (M *HashMap) Capacity() int {
	return M.table.Capacity()
}

// checkKey - Validates key length and that the map is still usable
func (M *HashMap) checkKey(key []byte) (err error) {
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
// place. Exceeding the load factor triggers a doubling rehash that preserves
// every stored entry.
//   - key is the entry key, it has to be of same length as given in call to NewHashMap
//   - value is the entry value, it has to be of same length as given in call to NewHashMap
func (M *HashMap) Put(key, value []byte) (err error) {
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
func (M *HashMap) Get(key []byte) (value []byte, err error) {
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
func (M *HashMap) Contains(key []byte) bool {
	if M.freed || len(key) != M.table.KeyLength() {
		return false
	}

	_, err := M.table.Get(key)

	return err == nil
}

// Remove - Removes the entry stored under key, invoking the free callbacks on
// the removed key and value.
//
// It returns:
//   - err is of type crt.NotFound if no entry matches key
func (M *HashMap) Remove(key []byte) (err error) {
	if err = M.checkKey(key); err != nil {
		return
	}

	if err = M.table.Remove(key); err != nil {
		return
	}
	M.modCount++

	return
}

// Keys - Returns a copy of every key in bucket then chain order
func (M *HashMap) Keys() (keys [][]byte) {
	keys = make([][]byte, 0, M.table.Size())
	for no, n := M.table.First(); n != nil; no, n = M.table.Next(no, n) {
		keys = append(keys, cloneOut(n.Key))
	}

	return
}

// Values - Returns a copy of every value in bucket then chain order
func (M *HashMap) Values() (values [][]byte) {
	values = make([][]byte, 0, M.table.Size())
	for no, n := M.table.First(); n != nil; no, n = M.table.Next(no, n) {
		values = append(values, cloneOut(n.Value))
	}

	return
}

// ForEach - Invokes visit with a copy of every key and value in bucket then chain order
func (M *HashMap) ForEach(visit func(key, value []byte)) {
	for no, n := M.table.First(); n != nil; no, n = M.table.Next(no, n) {
		visit(cloneOut(n.Key), cloneOut(n.Value))
	}
}

// Stat - Produces a HashMapStat struct with bucket usage information.
//   - includeDistribution set to true will include a slice with number of entries per bucket, false will set BucketDistribution to nil
func (M *HashMap) Stat(includeDistribution bool) (stat HashMapStat) {
	stat = HashMapStat{
		Entries:      M.table.Size(),
		Buckets:      M.table.Capacity(),
		LongestChain: M.table.LongestChain(),
	}
	if includeDistribution {
		stat.BucketDistribution = M.table.Distribution()
	}

	return
}

// Clear - Removes all entries (invoking free callbacks) while keeping the map
// usable and its bucket array retained
func (M *HashMap) Clear() {
	M.table.Clear()
	M.modCount++
}

// Free - Releases every chain node and the bucket array. The map must not be
// used afterwards. Calling Free again is a no-op.
func (M *HashMap) Free() {
	if M.freed {
		return
	}

	M.table.Clear()
	M.freed = true
}

// HashMapIterator - Produces the entries of a HashMap in bucket then chain
// order and supports removing the entry last returned by Next. The order is an
// artifact of hashing and not to be relied upon.
type HashMapIterator struct {
	hashMap  *HashMap
	bucketNo int
	node     *chainhash.Node
	last     *chainhash.Node
	modCount uint64
}

// Iterator - Returns a cursor positioned at the first entry in bucket order
func (M *HashMap) Iterator() *HashMapIterator {
	no, n := M.table.First()

	return &HashMapIterator{
		hashMap:  M,
		bucketNo: no,
		node:     n,
		modCount: M.modCount,
	}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next
func (I *HashMapIterator) HasNext() bool {
	return I.node != nil
}

// Next - Returns a copy of the next key and value and remembers the entry as
// last returned.
//
// It returns:
//   - key and value are copies of the produced entry
//   - err is of type crt.IteratorExhausted when the sequence is consumed, or crt.StaleIterator if the map was modified behind the iterator
func (I *HashMapIterator) Next() (key, value []byte, err error) {
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
	I.bucketNo, I.node = I.hashMap.table.Next(I.bucketNo, I.node)

	return
}

// Remove - Erases the entry last returned by Next from the map. The entry's
// bucket is located through its cached hash and the node unlinked from its
// chain, the cursor already points past it so following Next calls are
// unaffected.
//
// It returns:
//   - err is of type crt.IteratorState if Next has not been called since Iterator or since the previous Remove, or crt.StaleIterator if the map was modified behind the iterator
func (I *HashMapIterator) Remove() (err error) {
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
