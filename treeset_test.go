package collections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
)

func newIntTreeSet(t *testing.T) *TreeSet {
	treeSet, err := NewTreeSet(TreeSetConf{KeyLength: 4, CompareFunc: blobfunc.CompareInt32})
	require.NoError(t, err, "creates tree set")

	return treeSet
}

func TestTreeSet_InsertRemove(t *testing.T) {
	t.Run("rejects duplicates and keeps sorted order after removal", func(t *testing.T) {
		// Prepare
		treeSet := newIntTreeSet(t)

		// Execute
		duplicates := 0
		for _, k := range []int32{5, 3, 8, 3, 1, 5, 9} {
			if err := treeSet.Insert(blobfunc.Int32Bytes(k)); err != nil {
				assert.True(t, errors.Is(err, crt.DuplicateKey{}), "duplicate rejected")
				duplicates++
			}
		}

		// Check
		assert.Equal(t, 2, duplicates, "two duplicates rejected")
		assert.Equal(t, 5, treeSet.Size(), "five distinct keys")

		err := treeSet.Remove(blobfunc.Int32Bytes(5))
		assert.NoError(t, err, "removes key")

		var got []int32
		treeSet.ForEach(func(key []byte) {
			got = append(got, blobfunc.BytesInt32(key))
		})
		assert.Equal(t, []int32{1, 3, 8, 9}, got, "remaining keys in sorted order")
	})

	t.Run("fails removing a missing key", func(t *testing.T) {
		// Prepare
		treeSet := newIntTreeSet(t)

		// Execute
		err := treeSet.Remove(blobfunc.Int32Bytes(42))

		// Check
		assert.True(t, errors.Is(err, crt.NotFound{}), "missing key reported")
	})
}

func TestTreeSet_MinMax(t *testing.T) {
	t.Run("returns extremes per the comparator", func(t *testing.T) {
		// Prepare
		treeSet := newIntTreeSet(t)
		for _, k := range []int32{7, 2, 9, 4} {
			err := treeSet.Insert(blobfunc.Int32Bytes(k))
			require.NoError(t, err, "inserts key")
		}

		// Execute
		minKey, errMin := treeSet.GetMin()
		maxKey, errMax := treeSet.GetMax()

		// Check
		assert.NoError(t, errMin, "min found")
		assert.NoError(t, errMax, "max found")
		assert.Equal(t, int32(2), blobfunc.BytesInt32(minKey), "correct min")
		assert.Equal(t, int32(9), blobfunc.BytesInt32(maxKey), "correct max")
	})

	t.Run("fails on empty set", func(t *testing.T) {
		// Prepare
		treeSet := newIntTreeSet(t)

		// Execute
		_, errMin := treeSet.GetMin()
		_, errMax := treeSet.GetMax()

		// Check
		assert.True(t, errors.Is(errMin, crt.EmptyContainer{}), "empty set min reported")
		assert.True(t, errors.Is(errMax, crt.EmptyContainer{}), "empty set max reported")
	})
}

func TestTreeSetIterator(t *testing.T) {
	t.Run("produces keys in ascending order and exhausts", func(t *testing.T) {
		// Prepare
		treeSet := newIntTreeSet(t)
		for _, k := range []int32{30, 10, 20} {
			err := treeSet.Insert(blobfunc.Int32Bytes(k))
			require.NoError(t, err, "inserts key")
		}

		// Execute
		var got []int32
		iter := treeSet.Iterator()
		for iter.HasNext() {
			key, err := iter.Next()
			require.NoError(t, err, "produces next key")
			got = append(got, blobfunc.BytesInt32(key))
		}

		// Check
		assert.Equal(t, []int32{10, 20, 30}, got, "keys in ascending order")

		_, err := iter.Next()
		assert.True(t, errors.Is(err, crt.IteratorExhausted{}), "exhaustion reported")
	})

	t.Run("fails after a modification behind the iterator", func(t *testing.T) {
		// Prepare
		treeSet := newIntTreeSet(t)
		for _, k := range []int32{1, 2, 3} {
			err := treeSet.Insert(blobfunc.Int32Bytes(k))
			require.NoError(t, err, "inserts key")
		}

		iter := treeSet.Iterator()
		_, err := iter.Next()
		require.NoError(t, err, "produces first key")

		// Execute
		err = treeSet.Insert(blobfunc.Int32Bytes(4))
		require.NoError(t, err, "inserts key behind the iterator")

		_, err = iter.Next()

		// Check
		assert.True(t, errors.Is(err, crt.StaleIterator{}), "stale iterator reported")
	})
}

func TestTreeSet_Clear(t *testing.T) {
	t.Run("empties the set but keeps it usable", func(t *testing.T) {
		// Prepare
		treeSet := newIntTreeSet(t)
		for _, k := range []int32{1, 2, 3} {
			err := treeSet.Insert(blobfunc.Int32Bytes(k))
			require.NoError(t, err, "inserts key")
		}

		// Execute
		treeSet.Clear()

		// Check
		assert.True(t, treeSet.IsEmpty(), "set is empty")

		err := treeSet.Insert(blobfunc.Int32Bytes(7))
		assert.NoError(t, err, "set usable after clear")
		assert.True(t, treeSet.Contains(blobfunc.Int32Bytes(7)), "new key present")
	})
}
