package chainhash

import (
	"fmt"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
)

// MinimumCapacity - The smallest number of buckets a table is ever created with
const MinimumCapacity = 16

// DefaultLoadFactor - The size/capacity ratio above which the bucket array is doubled
const DefaultLoadFactor = 0.75

// Node - One record in a bucket chain.
// The node exclusively owns the node referenced through Next, and it owns the
// key and value byte slices it stores. Key and Value are never aliased to
// caller memory, they are copied in on insert.
type Node struct {
	Next  *Node
	Hash  uint32
	Key   []byte
	Value []byte
}

// Conf - Is a struct to be passed in the call to NewTable and contains configuration
// that affects table geometry and key handling.
//   - KeyLength is the fixed length of keys to store
//   - ValueLength is the fixed length of values to store, zero for set-like use
//   - InitialCapacity is the requested number of buckets, rounded up to a power of two (minimum 16)
//   - LoadFactor is the size/capacity ratio that triggers a doubling rehash, zero selects the default 0.75
//   - HashFunc is the hash function to use, nil selects blobfunc.HashBytes
//   - EqualsFunc is the key equality function to use, nil selects blobfunc.EqualsBytes
//   - FreeKey and FreeValue are optional destructors invoked when an element leaves the table
type Conf struct {
	KeyLength       int
	ValueLength     int
	InitialCapacity int
	LoadFactor      float64
	HashFunc        blobfunc.HashFunc
	EqualsFunc      blobfunc.EqualsFunc
	FreeKey         blobfunc.FreeFunc
	FreeValue       blobfunc.FreeFunc
}

// Table - An open chaining hash table over fixed length byte records.
// Bucket selection is hash & (capacity-1), hence capacity is kept a power of two
// at all times (initial round up and doubling growth both preserve it).
type Table struct {
	buckets     []*Node
	size        int
	keyLength   int
	valueLength int
	loadFactor  float64
	hashFunc    blobfunc.HashFunc
	equalsFunc  blobfunc.EqualsFunc
	freeKey     blobfunc.FreeFunc
	freeValue   blobfunc.FreeFunc
}

// RoundUpPow2 - Rounds v up to the nearest power of two, with a floor of min
func RoundUpPow2(v, min int) int {
	c := min
	for c < v {
		c <<= 1
	}

	return c
}

// NewTable - Returns a pointer to a new Table instance.
//   - conf is a Conf struct providing configuration affecting table creation and processing
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewTable(conf Conf) (table *Table, err error) {
	// Check if the key length is valid
	if conf.KeyLength <= 0 {
		err = fmt.Errorf("key length must be a positive value higher than 0 (zero)")
		return
	}

	// Check if the value length is valid
	if conf.ValueLength < 0 {
		err = fmt.Errorf("value length must not be negative")
		return
	}

	capacity := RoundUpPow2(conf.InitialCapacity, MinimumCapacity)

	loadFactor := conf.LoadFactor
	if loadFactor == 0 {
		loadFactor = DefaultLoadFactor
	}
	if loadFactor < 0 || loadFactor >= 1 {
		err = fmt.Errorf("load factor must be higher than 0 (zero) and lower than 1")
		return
	}

	hashFunc := conf.HashFunc
	if hashFunc == nil {
		hashFunc = blobfunc.HashBytes
	}
	equalsFunc := conf.EqualsFunc
	if equalsFunc == nil {
		equalsFunc = blobfunc.EqualsBytes
	}

	table = &Table{
		buckets:     make([]*Node, capacity),
		keyLength:   conf.KeyLength,
		valueLength: conf.ValueLength,
		loadFactor:  loadFactor,
		hashFunc:    hashFunc,
		equalsFunc:  equalsFunc,
		freeKey:     conf.FreeKey,
		freeValue:   conf.FreeValue,
	}

	return
}

// Size - Returns the number of live records in the table
func (T *Table) Size() int {
	return T.size
}

// Capacity - Returns the current number of buckets
func (T *Table) Capacity() int {
	return len(T.buckets)
}

// KeyLength - Returns the fixed key length
func (T *Table) KeyLength() int {
	return T.keyLength
}

// ValueLength - Returns the fixed value length
func (T *Table) ValueLength() int {
	return T.valueLength
}

// HashKey - Returns the hash value the table would use for key
func (T *Table) HashKey(key []byte) uint32 {
	return T.hashFunc(key)
}

// bucketNo - Selects the bucket for a hash value using the power of two mask
func (T *Table) bucketNo(hash uint32) int {
	return int(hash) & (len(T.buckets) - 1)
}

// Get - Returns the node holding key.
//
// It returns:
//   - node is the matching chain node, to be treated as read only by callers outside the iterator protocol
//   - err is of type crt.NotFound if no record matches key
func (T *Table) Get(key []byte) (node *Node, err error) {
	hash := T.hashFunc(key)

	for n := T.buckets[T.bucketNo(hash)]; n != nil; n = n.Next {
		if n.Hash == hash && T.equalsFunc(n.Key, key) {
			node = n
			return
		}
	}

	err = crt.NotFound{}

	return
}

// Put - Inserts key with value, or updates the value of an existing record.
// A new node is prepended to its bucket chain, hence order within a bucket is
// insertion reversed and not to be relied upon. If the insert pushes
// size/capacity above the load factor the table is rehashed at double capacity.
//   - key is the record key, already validated to be of the configured key length
//   - value is the record value, may be nil when the table is used set-like
//   - overwrite selects between map semantics (true, update in place) and set semantics (false, reject)
//
// It returns:
//   - inserted is true if a new record was created, false if an existing one was updated
//   - err is of type crt.DuplicateKey if overwrite is false and key is already present
func (T *Table) Put(key, value []byte, overwrite bool) (inserted bool, err error) {
	hash := T.hashFunc(key)
	no := T.bucketNo(hash)

	for n := T.buckets[no]; n != nil; n = n.Next {
		if n.Hash == hash && T.equalsFunc(n.Key, key) {
			if !overwrite {
				err = crt.DuplicateKey{}
				return
			}
			if T.freeValue != nil && T.valueLength > 0 {
				T.freeValue(n.Value)
			}
			n.Value = cloneBytes(value)
			return
		}
	}

	node := &Node{
		Next:  T.buckets[no],
		Hash:  hash,
		Key:   cloneBytes(key),
		Value: cloneBytes(value),
	}
	T.buckets[no] = node
	T.size++
	inserted = true

	if float64(T.size)/float64(len(T.buckets)) > T.loadFactor {
		T.rehash()
	}

	return
}

// Remove - Unlinks the record matching key from its bucket chain and invokes the
// free callbacks on the removed key and value.
//
// It returns:
//   - err is of type crt.NotFound if no record matches key
func (T *Table) Remove(key []byte) (err error) {
	hash := T.hashFunc(key)

	for np := &T.buckets[T.bucketNo(hash)]; *np != nil; np = &(*np).Next {
		n := *np
		if n.Hash == hash && T.equalsFunc(n.Key, key) {
			*np = n.Next
			T.releaseNode(n)
			T.size--
			return
		}
	}

	err = crt.NotFound{}

	return
}

// Unlink - Removes the given node from the table.
// The node's bucket is located through its cached hash, the chain is walked
// comparing node identity, hence the node must still be live in this table.
// Used by the iterator protocol to erase the last returned element.
//
// It returns:
//   - err is of type crt.NotFound if the node is not linked in the table
func (T *Table) Unlink(node *Node) (err error) {
	for np := &T.buckets[T.bucketNo(node.Hash)]; *np != nil; np = &(*np).Next {
		if *np == node {
			*np = node.Next
			T.releaseNode(node)
			T.size--
			return
		}
	}

	err = crt.NotFound{}

	return
}

// First - Returns the first node in bucket then chain order, or nil if the table is empty.
//
// It returns:
//   - bucketNo is the bucket holding the node
//   - node is the first node
func (T *Table) First() (bucketNo int, node *Node) {
	for no, n := range T.buckets {
		if n != nil {
			bucketNo = no
			node = n
			return
		}
	}

	bucketNo = -1

	return
}

// Next - Returns the node following node in bucket then chain order, or nil when exhausted.
//   - bucketNo is the bucket holding node, as previously returned by First or Next
//   - node is the node to advance from
func (T *Table) Next(bucketNo int, node *Node) (nextBucketNo int, next *Node) {
	if node != nil && node.Next != nil {
		nextBucketNo = bucketNo
		next = node.Next
		return
	}

	for no := bucketNo + 1; no < len(T.buckets); no++ {
		if T.buckets[no] != nil {
			nextBucketNo = no
			next = T.buckets[no]
			return
		}
	}

	nextBucketNo = -1

	return
}

// Clear - Frees every chain node (invoking free callbacks) and resets all buckets.
// Capacity is retained.
func (T *Table) Clear() {
	for no := range T.buckets {
		n := T.buckets[no]
		for n != nil {
			next := n.Next
			T.releaseNode(n)
			n = next
		}
		T.buckets[no] = nil
	}

	T.size = 0
}

// LongestChain - Returns the length of the longest bucket chain, for statistics
func (T *Table) LongestChain() (longest int) {
	for _, n := range T.buckets {
		length := 0
		for ; n != nil; n = n.Next {
			length++
		}
		if length > longest {
			longest = length
		}
	}

	return
}

// Distribution - Returns the number of records per bucket, for statistics
func (T *Table) Distribution() (distribution []int) {
	distribution = make([]int, len(T.buckets))
	for no, n := range T.buckets {
		for ; n != nil; n = n.Next {
			distribution[no]++
		}
	}

	return
}

// rehash - Doubles the bucket array and re-threads every existing node into its
// new bucket. No record data is copied, only chain pointers are relinked. The
// new array is fully populated before it replaces the old one.
func (T *Table) rehash() {
	newBuckets := make([]*Node, len(T.buckets)*2)
	mask := uint32(len(newBuckets) - 1)

	for _, n := range T.buckets {
		for n != nil {
			next := n.Next
			no := int(n.Hash & mask)
			n.Next = newBuckets[no]
			newBuckets[no] = n
			n = next
		}
	}

	T.buckets = newBuckets
}

// releaseNode - Invokes the free callbacks for a node leaving the table
func (T *Table) releaseNode(n *Node) {
	if T.freeKey != nil {
		T.freeKey(n.Key)
	}
	if T.freeValue != nil && T.valueLength > 0 {
		T.freeValue(n.Value)
	}
	n.Next = nil
}

// cloneBytes - Returns a fresh copy of b, or nil if b is nil
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)

	return c
}
