package rbtree

import (
	"fmt"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
)

// Red - Color of a node that may not have a red child
const Red uint8 = 0

// Black - Color of a node that counts towards black height
const Black uint8 = 1

// Node - One node in the tree.
// Left and Right are owning edges, Parent is a plain back reference used for
// rotation, fixup and in-order traversal, never for deallocation.
type Node struct {
	Left   *Node
	Right  *Node
	Parent *Node
	Color  uint8
	Key    []byte
	Value  []byte
}

// Conf - Is a struct to be passed in the call to NewTree and contains configuration
// that affects key handling.
//   - KeyLength is the fixed length of keys to store
//   - ValueLength is the fixed length of values to store, zero for set-like use
//   - CompareFunc is the total order over keys, it is mandatory
//   - FreeKey and FreeValue are optional destructors invoked when an element leaves the tree
type Conf struct {
	KeyLength   int
	ValueLength int
	CompareFunc blobfunc.CompareFunc
	FreeKey     blobfunc.FreeFunc
	FreeValue   blobfunc.FreeFunc
}

// Tree - A red-black tree over fixed length byte records.
// After every public mutation the tree satisfies: the root is black, no red
// node has a red child, every path from a node down to a nil leaf passes the
// same number of black nodes, and in-order traversal follows the configured
// comparator strictly ascending with no duplicate keys.
type Tree struct {
	root        *Node
	size        int
	keyLength   int
	valueLength int
	compareFunc blobfunc.CompareFunc
	freeKey     blobfunc.FreeFunc
	freeValue   blobfunc.FreeFunc
}

// NewTree - Returns a pointer to a new Tree instance.
//   - conf is a Conf struct providing configuration affecting tree creation and processing
//
// It returns:
//   - tree which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewTree(conf Conf) (tree *Tree, err error) {
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

	// Check that a comparator was given, there is no default for ordered containers
	if conf.CompareFunc == nil {
		err = fmt.Errorf("compare function is mandatory for tree containers")
		return
	}

	tree = &Tree{
		keyLength:   conf.KeyLength,
		valueLength: conf.ValueLength,
		compareFunc: conf.CompareFunc,
		freeKey:     conf.FreeKey,
		freeValue:   conf.FreeValue,
	}

	return
}

// Size - Returns the number of live records in the tree
func (T *Tree) Size() int {
	return T.size
}

// KeyLength - Returns the fixed key length
func (T *Tree) KeyLength() int {
	return T.keyLength
}

// ValueLength - Returns the fixed value length
func (T *Tree) ValueLength() int {
	return T.valueLength
}

// Get - Returns the node holding key through standard binary search.
//
// It returns:
//   - node is the matching node
//   - err is of type crt.NotFound if no record matches key
func (T *Tree) Get(key []byte) (node *Node, err error) {
	n := T.root
	for n != nil {
		c := T.compareFunc(key, n.Key)
		if c == 0 {
			node = n
			return
		}
		if c < 0 {
			n = n.Left
		} else {
			n = n.Right
		}
	}

	err = crt.NotFound{}

	return
}

// Put - Inserts key with value at its sorted position, or updates the value of
// an existing record. A new node is linked in red and the insert fixup restores
// the color invariants, forcing the root black at the end.
//   - key is the record key, already validated to be of the configured key length
//   - value is the record value, may be nil when the tree is used set-like
//   - overwrite selects between map semantics (true, update in place) and set semantics (false, reject)
//
// It returns:
//   - inserted is true if a new record was created, false if an existing one was updated
//   - err is of type crt.DuplicateKey if overwrite is false and key is already present
func (T *Tree) Put(key, value []byte, overwrite bool) (inserted bool, err error) {
	var parent *Node
	n := T.root
	c := 0
	for n != nil {
		parent = n
		c = T.compareFunc(key, n.Key)
		if c == 0 {
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
		if c < 0 {
			n = n.Left
		} else {
			n = n.Right
		}
	}

	node := &Node{
		Parent: parent,
		Color:  Red,
		Key:    cloneBytes(key),
		Value:  cloneBytes(value),
	}
	if parent == nil {
		T.root = node
	} else if c < 0 {
		parent.Left = node
	} else {
		parent.Right = node
	}

	T.size++
	inserted = true
	T.insertFixup(node)

	return
}

// Remove - Removes the record matching key, restoring the black height invariant
// when a black node was spliced out of the tree. The free callbacks are invoked
// on the removed key and value.
//
// It returns:
//   - err is of type crt.NotFound if no record matches key
func (T *Tree) Remove(key []byte) (err error) {
	z, err := T.Get(key)
	if err != nil {
		return
	}

	T.removeNode(z)

	return
}

// transplant - Replaces the subtree rooted at u with the subtree rooted at v
// in u's parent, v may be nil
func (T *Tree) transplant(u, v *Node) {
	if u.Parent == nil {
		T.root = v
	} else if u == u.Parent.Left {
		u.Parent.Left = v
	} else {
		u.Parent.Right = v
	}
	if v != nil {
		v.Parent = u.Parent
	}
}

// removeNode - Splices z out of the tree using transplant, pulling up the
// in-order successor when z has two children
func (T *Tree) removeNode(z *Node) {
	y := z
	yOriginalColor := y.Color

	var x *Node
	var xParent *Node

	if z.Left == nil {
		x = z.Right
		xParent = z.Parent
		T.transplant(z, z.Right)
	} else if z.Right == nil {
		x = z.Left
		xParent = z.Parent
		T.transplant(z, z.Left)
	} else {
		y = minNode(z.Right)
		yOriginalColor = y.Color
		x = y.Right
		if y.Parent == z {
			xParent = y
		} else {
			xParent = y.Parent
			T.transplant(y, y.Right)
			y.Right = z.Right
			y.Right.Parent = y
		}
		T.transplant(z, y)
		y.Left = z.Left
		y.Left.Parent = y
		y.Color = z.Color
	}

	if T.freeKey != nil {
		T.freeKey(z.Key)
	}
	if T.freeValue != nil && T.valueLength > 0 {
		T.freeValue(z.Value)
	}
	z.Left = nil
	z.Right = nil
	z.Parent = nil
	T.size--

	if yOriginalColor == Black {
		T.deleteFixup(x, xParent)
	}
}

// Min - Returns the node with the smallest key.
//
// It returns:
//   - node is the leftmost node
//   - err is of type crt.EmptyContainer if the tree holds no records
func (T *Tree) Min() (node *Node, err error) {
	if T.root == nil {
		err = crt.EmptyContainer{}
		return
	}

	node = minNode(T.root)

	return
}

// Max - Returns the node with the largest key.
//
// It returns:
//   - node is the rightmost node
//   - err is of type crt.EmptyContainer if the tree holds no records
func (T *Tree) Max() (node *Node, err error) {
	if T.root == nil {
		err = crt.EmptyContainer{}
		return
	}

	node = T.root
	for node.Right != nil {
		node = node.Right
	}

	return
}

// First - Returns the first node in sorted order, or nil if the tree is empty
func (T *Tree) First() *Node {
	if T.root == nil {
		return nil
	}

	return minNode(T.root)
}

// Successor - Returns the in-order successor of n, or nil when n is the last node
func Successor(n *Node) *Node {
	if n.Right != nil {
		return minNode(n.Right)
	}

	p := n.Parent
	for p != nil && n == p.Right {
		n = p
		p = p.Parent
	}

	return p
}

// Clear - Frees every node in post order (invoking free callbacks) and resets
// the tree to empty
func (T *Tree) Clear() {
	T.freeSubtree(T.root)
	T.root = nil
	T.size = 0
}

// freeSubtree - Post order traversal releasing every node under n
func (T *Tree) freeSubtree(n *Node) {
	if n == nil {
		return
	}

	T.freeSubtree(n.Left)
	T.freeSubtree(n.Right)

	if T.freeKey != nil {
		T.freeKey(n.Key)
	}
	if T.freeValue != nil && T.valueLength > 0 {
		T.freeValue(n.Value)
	}
	n.Left = nil
	n.Right = nil
	n.Parent = nil
}

// rotateLeft - Rotates the subtree rooted at x to the left.
// Rotations reshape the tree only, in-order traversal order is preserved exactly.
func (T *Tree) rotateLeft(x *Node) {
	y := x.Right
	x.Right = y.Left
	if y.Left != nil {
		y.Left.Parent = x
	}
	y.Parent = x.Parent
	if x.Parent == nil {
		T.root = y
	} else if x == x.Parent.Left {
		x.Parent.Left = y
	} else {
		x.Parent.Right = y
	}
	y.Left = x
	x.Parent = y
}

// rotateRight - Rotates the subtree rooted at x to the right
func (T *Tree) rotateRight(x *Node) {
	y := x.Left
	x.Left = y.Right
	if y.Right != nil {
		y.Right.Parent = x
	}
	y.Parent = x.Parent
	if x.Parent == nil {
		T.root = y
	} else if x == x.Parent.Right {
		x.Parent.Right = y
	} else {
		x.Parent.Left = y
	}
	y.Right = x
	x.Parent = y
}

// insertFixup - Restores the color invariants after linking in the red node z.
// While z's parent is red: a red uncle means recolor and move up two levels, a
// black or absent uncle means rotate z outside if needed, then recolor parent
// and grandparent and rotate the grandparent. The root is forced black at the end.
func (T *Tree) insertFixup(z *Node) {
	for z != T.root && z.Parent.Color == Red {
		if z.Parent == z.Parent.Parent.Left {
			y := z.Parent.Parent.Right
			if y != nil && y.Color == Red {
				z.Parent.Color = Black
				y.Color = Black
				z.Parent.Parent.Color = Red
				z = z.Parent.Parent
			} else {
				if z == z.Parent.Right {
					z = z.Parent
					T.rotateLeft(z)
				}
				z.Parent.Color = Black
				z.Parent.Parent.Color = Red
				T.rotateRight(z.Parent.Parent)
			}
		} else {
			y := z.Parent.Parent.Left
			if y != nil && y.Color == Red {
				z.Parent.Color = Black
				y.Color = Black
				z.Parent.Parent.Color = Red
				z = z.Parent.Parent
			} else {
				if z == z.Parent.Left {
					z = z.Parent
					T.rotateRight(z)
				}
				z.Parent.Color = Black
				z.Parent.Parent.Color = Red
				T.rotateLeft(z.Parent.Parent)
			}
		}
	}

	T.root.Color = Black
}

// deleteFixup - Restores the black height invariant after a black node was
// removed. x is the node that took the removed node's place and may be nil (an
// absent black leaf), parent is its parent and tracks the position while x is nil.
func (T *Tree) deleteFixup(x, parent *Node) {
	for x != T.root && isBlack(x) {
		if x == parent.Left {
			w := parent.Right
			if w.Color == Red {
				w.Color = Black
				parent.Color = Red
				T.rotateLeft(parent)
				w = parent.Right
			}
			if isBlack(w.Left) && isBlack(w.Right) {
				w.Color = Red
				x = parent
				parent = x.Parent
			} else {
				if isBlack(w.Right) {
					w.Left.Color = Black
					w.Color = Red
					T.rotateRight(w)
					w = parent.Right
				}
				w.Color = parent.Color
				parent.Color = Black
				w.Right.Color = Black
				T.rotateLeft(parent)
				x = T.root
				parent = nil
			}
		} else {
			w := parent.Left
			if w.Color == Red {
				w.Color = Black
				parent.Color = Red
				T.rotateRight(parent)
				w = parent.Left
			}
			if isBlack(w.Right) && isBlack(w.Left) {
				w.Color = Red
				x = parent
				parent = x.Parent
			} else {
				if isBlack(w.Left) {
					w.Right.Color = Black
					w.Color = Red
					T.rotateLeft(w)
					w = parent.Left
				}
				w.Color = parent.Color
				parent.Color = Black
				w.Left.Color = Black
				T.rotateRight(parent)
				x = T.root
				parent = nil
			}
		}
	}

	if x != nil {
		x.Color = Black
	}
}

// isBlack - A nil node is an absent leaf and counts as black
func isBlack(n *Node) bool {
	return n == nil || n.Color == Black
}

// minNode - Returns the leftmost node of the subtree rooted at n
func minNode(n *Node) *Node {
	for n.Left != nil {
		n = n.Left
	}

	return n
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
