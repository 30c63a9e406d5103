package linkedhash

import (
	"fmt"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
	"github.com/gostonefire/collections/internal/chainhash"
)

// Node - One record in the table, member of two independent structures at once:
// the singly linked bucket chain it hashes into (ChainNext) and the doubly
// linked order list threading every live node in insertion order (Prev/Next).
// A node must never be linked into one structure without the other.
type Node struct {
	ChainNext *Node
	Prev      *Node
	Next      *Node
	Hash      uint32
	Key       []byte
	Value     []byte
}

// Conf - Is a struct to be passed in the call to NewTable, field semantics are
// identical to chainhash.Conf.
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

// Table - An open chaining hash table over fixed length byte records that
// additionally preserves insertion order through a second doubly linked list
// anchored by head and tail. Bucket selection is hash & (capacity-1) with
// capacity kept a power of two, exactly as in chainhash.Table. A rehash only
// rebuilds the bucket chains, the order list does not depend on bucket count
// and is left untouched.
type Table struct {
	buckets     []*Node
	head        *Node
	tail        *Node
	size        int
	keyLength   int
	valueLength int
	loadFactor  float64
	hashFunc    blobfunc.HashFunc
	equalsFunc  blobfunc.EqualsFunc
	freeKey     blobfunc.FreeFunc
	freeValue   blobfunc.FreeFunc
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

	capacity := chainhash.RoundUpPow2(conf.InitialCapacity, chainhash.MinimumCapacity)

	loadFactor := conf.LoadFactor
	if loadFactor == 0 {
		loadFactor = chainhash.DefaultLoadFactor
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

// Head - Returns the first node in insertion order, or nil if the table is empty
func (T *Table) Head() *Node {
	return T.head
}

// Tail - Returns the last node in insertion order, or nil if the table is empty
func (T *Table) Tail() *Node {
	return T.tail
}

// bucketNo - Selects the bucket for a hash value using the power of two mask
func (T *Table) bucketNo(hash uint32) int {
	return int(hash) & (len(T.buckets) - 1)
}

// Get - Returns the node holding key, located through its bucket chain.
//
// It returns:
//   - node is the matching node
//   - err is of type crt.NotFound if no record matches key
func (T *Table) Get(key []byte) (node *Node, err error) {
	hash := T.hashFunc(key)

	for n := T.buckets[T.bucketNo(hash)]; n != nil; n = n.ChainNext {
		if n.Hash == hash && T.equalsFunc(n.Key, key) {
			node = n
			return
		}
	}

	err = crt.NotFound{}

	return
}

// Put - Inserts key with value, or updates the value of an existing record.
// A genuinely new node is linked into both structures before the operation
// completes: prepended to its bucket chain and appended to the tail of the
// order list. Updating an existing record touches neither structure, hence
// insertion order is defined by first insertion.
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

	for n := T.buckets[no]; n != nil; n = n.ChainNext {
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
		ChainNext: T.buckets[no],
		Hash:      hash,
		Key:       cloneBytes(key),
		Value:     cloneBytes(value),
	}

	// Link into the bucket chain and append to the order list
	T.buckets[no] = node
	node.Prev = T.tail
	if T.tail != nil {
		T.tail.Next = node
	} else {
		T.head = node
	}
	T.tail = node

	T.size++
	inserted = true

	if float64(T.size)/float64(len(T.buckets)) > T.loadFactor {
		T.rehash()
	}

	return
}

// Remove - Removes the record matching key from both structures and invokes the
// free callbacks on the removed key and value.
//
// It returns:
//   - err is of type crt.NotFound if no record matches key
func (T *Table) Remove(key []byte) (err error) {
	hash := T.hashFunc(key)

	for np := &T.buckets[T.bucketNo(hash)]; *np != nil; np = &(*np).ChainNext {
		n := *np
		if n.Hash == hash && T.equalsFunc(n.Key, key) {
			*np = n.ChainNext
			T.spliceOrderList(n)
			T.releaseNode(n)
			T.size--
			return
		}
	}

	err = crt.NotFound{}

	return
}

// Unlink - Removes the given node from both structures.
// The node's bucket is located through its cached hash. Used by the iterator
// protocol to erase the last returned element.
//
// It returns:
//   - err is of type crt.NotFound if the node is not linked in the table
func (T *Table) Unlink(node *Node) (err error) {
	for np := &T.buckets[T.bucketNo(node.Hash)]; *np != nil; np = &(*np).ChainNext {
		if *np == node {
			*np = node.ChainNext
			T.spliceOrderList(node)
			T.releaseNode(node)
			T.size--
			return
		}
	}

	err = crt.NotFound{}

	return
}

// Clear - Frees every node (invoking free callbacks) and resets both structures.
// Capacity is retained.
func (T *Table) Clear() {
	n := T.head
	for n != nil {
		next := n.Next
		T.releaseNode(n)
		n = next
	}

	for no := range T.buckets {
		T.buckets[no] = nil
	}
	T.head = nil
	T.tail = nil
	T.size = 0
}

// rehash - Doubles the bucket array and re-threads every node into its new
// bucket chain by walking the order list. The order list itself is untouched.
func (T *Table) rehash() {
	newBuckets := make([]*Node, len(T.buckets)*2)
	mask := uint32(len(newBuckets) - 1)

	for n := T.head; n != nil; n = n.Next {
		no := int(n.Hash & mask)
		n.ChainNext = newBuckets[no]
		newBuckets[no] = n
	}

	T.buckets = newBuckets
}

// spliceOrderList - Unlinks a node from the order list, updating head/tail anchors
func (T *Table) spliceOrderList(n *Node) {
	if n.Prev != nil {
		n.Prev.Next = n.Next
	} else {
		T.head = n.Next
	}
	if n.Next != nil {
		n.Next.Prev = n.Prev
	} else {
		T.tail = n.Prev
	}
	n.Prev = nil
	n.Next = nil
}

// releaseNode - Invokes the free callbacks for a node leaving the table
func (T *Table) releaseNode(n *Node) {
	if T.freeKey != nil {
		T.freeKey(n.Key)
	}
	if T.freeValue != nil && T.valueLength > 0 {
		T.freeValue(n.Value)
	}
	n.ChainNext = nil
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
