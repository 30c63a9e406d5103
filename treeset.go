package collections

import (
	"fmt"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
	"github.com/gostonefire/collections/internal/rbtree"
)

// TreeSetConf - Is a struct to be passed in the call to NewTreeSet and contains
// configuration that affects key handling.
//   - KeyLength is the fixed length of keys to store
//   - CompareFunc is the total order over keys, it is mandatory
//   - FreeKey is an optional destructor invoked when a key leaves the set
type TreeSetConf struct {
	KeyLength   int
	CompareFunc blobfunc.CompareFunc
	FreeKey     blobfunc.FreeFunc
}

// TreeSet - A set of fixed length byte keys kept in strict sorted order by a
// red-black tree, with O(log n) worst case insert, lookup and removal.
type TreeSet struct {
	tree     *rbtree.Tree
	modCount uint64
	freed    bool
}

// NewTreeSet - Returns a pointer to a new TreeSet instance.
//   - conf is a TreeSetConf struct providing configuration affecting set creation and processing
//
// It returns:
//   - treeSet which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewTreeSet(conf TreeSetConf) (treeSet *TreeSet, err error) {
	tree, err := rbtree.NewTree(rbtree.Conf{
		KeyLength:   conf.KeyLength,
		CompareFunc: conf.CompareFunc,
		FreeKey:     conf.FreeKey,
	})
	if err != nil {
		return
	}

	treeSet = &TreeSet{tree: tree}

	return
}

// Size - Returns the number of keys in the set
func (S *TreeSet) Size() int {
	return S.tree.Size()
}

// IsEmpty - Returns whether the set holds no keys
func (S *TreeSet) IsEmpty() bool {
	return S.tree.Size() == 0
}

// checkKey - Validates key length and that the set is still usable
func (S *TreeSet) checkKey(key []byte) (err error) {
	if S.freed {
		err = fmt.Errorf("set has been freed")
		return
	}
	if len(key) != S.tree.KeyLength() {
		err = fmt.Errorf("wrong length of key, should be %d", S.tree.KeyLength())
		return
	}

	return
}

// Insert - Adds key to the set at its sorted position. Equal comparing keys
// are treated as the same key and rejected.
//   - key is the bytes to store, it has to be of same length as given in call to NewTreeSet
//
// It returns:
//   - err is of type crt.DuplicateKey if an equal comparing key is already present
func (S *TreeSet) Insert(key []byte) (err error) {
	if err = S.checkKey(key); err != nil {
		return
	}

	if _, err = S.tree.Put(key, nil, false); err != nil {
		return
	}
	S.modCount++

	return
}

// Contains - Returns whether key is present
func (S *TreeSet) Contains(key []byte) bool {
	if S.freed || len(key) != S.tree.KeyLength() {
		return false
	}

	_, err := S.tree.Get(key)

	return err == nil
}

// Remove - Removes key from the set, rebalancing the tree and invoking the
// free callback on the removed key.
//
// It returns:
//   - err is of type crt.NotFound if key is not present
func (S *TreeSet) Remove(key []byte) (err error) {
	if err = S.checkKey(key); err != nil {
		return
	}

	if err = S.tree.Remove(key); err != nil {
		return
	}
	S.modCount++

	return
}

// GetMin - Returns a copy of the smallest key.
//
// It returns:
//   - key is a copy of the smallest key
//   - err is of type crt.EmptyContainer if the set holds no keys
func (S *TreeSet) GetMin() (key []byte, err error) {
	node, err := S.tree.Min()
	if err != nil {
		return
	}

	key = cloneOut(node.Key)

	return
}

// GetMax - Returns a copy of the largest key.
//
// It returns:
//   - key is a copy of the largest key
//   - err is of type crt.EmptyContainer if the set holds no keys
func (S *TreeSet) GetMax() (key []byte, err error) {
	node, err := S.tree.Max()
	if err != nil {
		return
	}

	key = cloneOut(node.Key)

	return
}

// Keys - Returns a copy of every key in ascending comparator order
func (S *TreeSet) Keys() (keys [][]byte) {
	keys = make([][]byte, 0, S.tree.Size())
	for n := S.tree.First(); n != nil; n = rbtree.Successor(n) {
		keys = append(keys, cloneOut(n.Key))
	}

	return
}

// ForEach - Invokes visit with a copy of every key in ascending comparator order
func (S *TreeSet) ForEach(visit func(key []byte)) {
	for n := S.tree.First(); n != nil; n = rbtree.Successor(n) {
		visit(cloneOut(n.Key))
	}
}

// Clear - Removes all keys (invoking free callbacks) while keeping the set usable
func (S *TreeSet) Clear() {
	S.tree.Clear()
	S.modCount++
}

// Free - Releases every node in post order. The set must not be used
// afterwards. Calling Free again is a no-op.
func (S *TreeSet) Free() {
	if S.freed {
		return
	}

	S.tree.Clear()
	S.freed = true
}

// TreeSetIterator - Produces the keys of a TreeSet in ascending comparator
// order. Tree iterators are read only producers of sorted order, no Remove
// operation is provided. Use TreeSet.Remove between iterations instead.
type TreeSetIterator struct {
	treeSet  *TreeSet
	node     *rbtree.Node
	modCount uint64
}

// Iterator - Returns a cursor positioned at the smallest key
func (S *TreeSet) Iterator() *TreeSetIterator {
	return &TreeSetIterator{
		treeSet:  S,
		node:     S.tree.First(),
		modCount: S.modCount,
	}
}

// HasNext - Returns true if there are more keys to be fetched from a call to Next
func (I *TreeSetIterator) HasNext() bool {
	return I.node != nil
}

// Next - Returns a copy of the next key in ascending comparator order.
//
// It returns:
//   - key is a copy of the produced key
//   - err is of type crt.IteratorExhausted when the sequence is consumed, or crt.StaleIterator if the set was modified behind the iterator
func (I *TreeSetIterator) Next() (key []byte, err error) {
	if I.modCount != I.treeSet.modCount {
		err = crt.StaleIterator{}
		return
	}
	if I.node == nil {
		err = crt.IteratorExhausted{}
		return
	}

	key = cloneOut(I.node.Key)
	I.node = rbtree.Successor(I.node)

	return
}
