package collections

import (
	"fmt"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
	"github.com/gostonefire/collections/internal/rbtree"
)

// TreeMapConf - Is a struct to be passed in the call to NewTreeMap and contains
// configuration that affects key handling.
//   - KeyLength is the fixed length of keys to store
//   - ValueLength is the fixed length of values to store
//   - CompareFunc is the total order over keys, it is mandatory
//   - FreeKey and FreeValue are optional destructors invoked when an entry leaves the map
type TreeMapConf struct {
	KeyLength   int
	ValueLength int
	CompareFunc blobfunc.CompareFunc
	FreeKey     blobfunc.FreeFunc
	FreeValue   blobfunc.FreeFunc
}

// TreeMap - A map from fixed length byte keys to fixed length byte values kept
// in strict sorted order by a red-black tree, with O(log n) worst case insert,
// lookup and removal.
type TreeMap struct {
	tree     *rbtree.Tree
	modCount uint64
	freed    bool
}

// NewTreeMap - Returns a pointer to a new TreeMap instance.
//   - conf is a TreeMapConf struct providing configuration affecting map creation and processing
//
// It returns:
//   - treeMap which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewTreeMap(conf TreeMapConf) (treeMap *TreeMap, err error) {
	// Check if the value length is valid, a map without values is a set
	if conf.ValueLength <= 0 {
		err = fmt.Errorf("value length must be a positive value higher than 0 (zero)")
		return
	}

	tree, err := rbtree.NewTree(rbtree.Conf{
		KeyLength:   conf.KeyLength,
		ValueLength: conf.ValueLength,
		CompareFunc: conf.CompareFunc,
		FreeKey:     conf.FreeKey,
		FreeValue:   conf.FreeValue,
	})
	if err != nil {
		return
	}

	treeMap = &TreeMap{tree: tree}

	return
}

// Size - Returns the number of entries in the map
func (M *TreeMap) Size() int {
	return M.tree.Size()
}

// IsEmpty - Returns whether the map holds no entries
func (M *TreeMap) IsEmpty() bool {
	return M.tree.Size() == 0
}

// checkKey - Validates key length and that the map is still usable
func (M *TreeMap) checkKey(key []byte) (err error) {
	if M.freed {
		err = fmt.Errorf("map has been freed")
		return
	}
	if len(key) != M.tree.KeyLength() {
		err = fmt.Errorf("wrong length of key, should be %d", M.tree.KeyLength())
		return
	}

	return
}

// Put - Inserts key with value at its sorted position, or updates the value of
// an existing entry in place. Equal comparing keys are treated as the same key.
//   - key is the entry key, it has to be of same length as given in call to NewTreeMap
//   - value is the entry value, it has to be of same length as given in call to NewTreeMap
func (M *TreeMap) Put(key, value []byte) (err error) {
	if err = M.checkKey(key); err != nil {
		return
	}
	if len(value) != M.tree.ValueLength() {
		err = fmt.Errorf("wrong length of value, should be %d", M.tree.ValueLength())
		return
	}

	inserted, err := M.tree.Put(key, value, true)
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
func (M *TreeMap) Get(key []byte) (value []byte, err error) {
	if err = M.checkKey(key); err != nil {
		return
	}

	node, err := M.tree.Get(key)
	if err != nil {
		return
	}

	value = cloneOut(node.Value)

	return
}

// Contains - Returns whether an entry is stored under key
func (M *TreeMap) Contains(key []byte) bool {
	if M.freed || len(key) != M.tree.KeyLength() {
		return false
	}

	_, err := M.tree.Get(key)

	return err == nil
}

// Remove - Removes the entry stored under key, rebalancing the tree and
// invoking the free callbacks on the removed key and value.
//
// It returns:
//   - err is of type crt.NotFound if no entry matches key
func (M *TreeMap) Remove(key []byte) (err error) {
	if err = M.checkKey(key); err != nil {
		return
	}

	if err = M.tree.Remove(key); err != nil {
		return
	}
	M.modCount++

	return
}

// GetMin - Returns a copy of the entry with the smallest key.
//
// It returns:
//   - key and value are copies of the smallest entry
//   - err is of type crt.EmptyContainer if the map holds no entries
func (M *TreeMap) GetMin() (key, value []byte, err error) {
	node, err := M.tree.Min()
	if err != nil {
		return
	}

	key = cloneOut(node.Key)
	value = cloneOut(node.Value)

	return
}

// GetMax - Returns a copy of the entry with the largest key.
//
// It returns:
//   - key and value are copies of the largest entry
//   - err is of type crt.EmptyContainer if the map holds no entries
func (M *TreeMap) GetMax() (key, value []byte, err error) {
	node, err := M.tree.Max()
	if err != nil {
		return
	}

	key = cloneOut(node.Key)
	value = cloneOut(node.Value)

	return
}

// Keys - Returns a copy of every key in ascending comparator order
func (M *TreeMap) Keys() (keys [][]byte) {
	keys = make([][]byte, 0, M.tree.Size())
	for n := M.tree.First(); n != nil; n = rbtree.Successor(n) {
		keys = append(keys, cloneOut(n.Key))
	}

	return
}

// Values - Returns a copy of every value in ascending key order
func (M *TreeMap) Values() (values [][]byte) {
	values = make([][]byte, 0, M.tree.Size())
	for n := M.tree.First(); n != nil; n = rbtree.Successor(n) {
		values = append(values, cloneOut(n.Value))
	}

	return
}

// ForEach - Invokes visit with a copy of every key and value in ascending key order
func (M *TreeMap) ForEach(visit func(key, value []byte)) {
	for n := M.tree.First(); n != nil; n = rbtree.Successor(n) {
		visit(cloneOut(n.Key), cloneOut(n.Value))
	}
}

// Clear - Removes all entries (invoking free callbacks) while keeping the map usable
func (M *TreeMap) Clear() {
	M.tree.Clear()
	M.modCount++
}

// Free - Releases every node in post order. The map must not be used
// afterwards. Calling Free again is a no-op.
func (M *TreeMap) Free() {
	if M.freed {
		return
	}

	M.tree.Clear()
	M.freed = true
}

// TreeMapIterator - Produces the entries of a TreeMap in ascending key order.
// Tree iterators are read only producers of sorted order, no Remove operation
// is provided. Use TreeMap.Remove between iterations instead.
type TreeMapIterator struct {
	treeMap  *TreeMap
	node     *rbtree.Node
	modCount uint64
}

// Iterator - Returns a cursor positioned at the smallest entry
func (M *TreeMap) Iterator() *TreeMapIterator {
	return &TreeMapIterator{
		treeMap:  M,
		node:     M.tree.First(),
		modCount: M.modCount,
	}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next
func (I *TreeMapIterator) HasNext() bool {
	return I.node != nil
}

// Next - Returns a copy of the next key and value in ascending key order.
//
// It returns:
//   - key and value are copies of the produced entry
//   - err is of type crt.IteratorExhausted when the sequence is consumed, or crt.StaleIterator if the map was modified behind the iterator
func (I *TreeMapIterator) Next() (key, value []byte, err error) {
	if I.modCount != I.treeMap.modCount {
		err = crt.StaleIterator{}
		return
	}
	if I.node == nil {
		err = crt.IteratorExhausted{}
		return
	}

	key = cloneOut(I.node.Key)
	value = cloneOut(I.node.Value)
	I.node = rbtree.Successor(I.node)

	return
}
